package main

// Scenario is a scripted session for tests: run the scheduler for a number
// of ticks and fire manual scene jumps at specific ticks. Scenarios live in
// YAML so a reported glitch can be turned into a regression case without
// writing code.
type Scenario struct {
	Ticks  int64           `yaml:"Ticks"`
	Events []ScenarioEvent `yaml:"Events"`
}

type ScenarioEvent struct {
	Tick  int64 `yaml:"Tick"`
	Scene int   `yaml:"Scene"`
}

func LoadScenario(fsys FS, path string) (sc Scenario) {
	LoadYAML(fsys, path, &sc)
	return
}

// Run drives a fresh scheduler through the scenario at the real tick rate
// and returns the resulting capture. Events are matched by tick index, so
// two runs of the same scenario produce identical captures.
func (sc *Scenario) Run(cfg Config) Capture {
	s := NewScheduler(SceneCount, cfg)
	capture := NewCapture(cfg)
	for tick := int64(0); tick < sc.Ticks; tick++ {
		for _, ev := range sc.Events {
			if ev.Tick == tick {
				s.JumpToScene(ev.Scene)
			}
		}
		s.Step(tickSeconds)
		capture.Append(s)
	}
	s.Shutdown()
	return capture
}
