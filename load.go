package main

import (
	"github.com/goccy/go-yaml"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Config is everything tweakable without recompiling. The durations drive
// the scheduler; the capture fields are developer tooling.
type Config struct {
	SceneDuration      float64 `yaml:"SceneDuration"`
	TransitionDuration float64 `yaml:"TransitionDuration"`
	ProgressStep       float64 `yaml:"ProgressStep"`
	StartScene         int     `yaml:"StartScene"`
	RecordToFile       bool    `yaml:"RecordToFile"`
	RecordingFile      string  `yaml:"RecordingFile"`
	ShowDevHud         bool    `yaml:"ShowDevHud"`
}

func LoadYAML(fsys FS, path string, out any) {
	data, err := fsys.ReadFile(path)
	Check(err)
	err = yaml.Unmarshal(data, out)
	Check(err)
}

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading the config
	// while an editor is still writing it, which matters for the dev-mode
	// hot reload. When reading from the embedded filesystem we want to
	// crash immediately instead, e.g. in the browser we want an error in
	// the developer console rather than a silent retry loop.
	previousVal := CheckCrashes
	if g.embedded {
		CheckCrashes = true
	} else {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	validateConfig(&g.Config)
	g.UpdateWindowSize()

	// The HUD font. gofont ships with the binary, so no asset files.
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)
	g.hudFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

// validateConfig clamps config values the scheduler cannot work with. A
// hostile config is not a threat model here, but a typo in a duration
// should not hang the crossfade forever.
func validateConfig(c *Config) {
	if c.SceneDuration <= 0 {
		c.SceneDuration = 10
	}
	if c.TransitionDuration <= 0 {
		c.TransitionDuration = 2.5
	}
	if c.ProgressStep <= 0 || c.ProgressStep > 1 {
		c.ProgressStep = 0.025
	}
	if c.StartScene < 0 || c.StartScene >= SceneCount {
		c.StartScene = 0
	}
}
