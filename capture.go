package main

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// CaptureVersion is the version of the byte representation of the Capture
// structure. If the structure changes such that serializing it produces
// different bytes, CaptureVersion must change as well. A build can replay
// any capture with a matching CaptureVersion.
const CaptureVersion = 1

// CaptureFrame is one tick of scheduler output in a serialization-friendly
// form: fixed-size fields only, see Serialize.
type CaptureFrame struct {
	CurrentScene  int64
	PreviousScene int64
	Transitioning int64
	Progress      float64
	Frame         int64
}

// Capture records the scheduler's externally visible state on every tick of
// a session. The visualizer is a deterministic function of its ticks, so a
// capture pins the exact experience a viewer had: if a crash or a visual
// glitch is reported, the capture replays it. This is developer tooling;
// the visualizer itself never reads captures at runtime.
type Capture struct {
	CaptureVersion int64
	ReleaseVersion int64
	Id             uuid.UUID
	SceneDuration  float64
	TransitionTime float64
	History        []CaptureFrame
}

func NewCapture(cfg Config) (c Capture) {
	c.CaptureVersion = CaptureVersion
	c.ReleaseVersion = ReleaseVersion
	c.Id = uuid.New()
	c.SceneDuration = cfg.SceneDuration
	c.TransitionTime = cfg.TransitionDuration
	return
}

// Append records the scheduler's state for the tick that just ran.
func (c *Capture) Append(s *Scheduler) {
	st := s.State()
	frame := CaptureFrame{
		CurrentScene:  int64(st.CurrentScene),
		PreviousScene: int64(st.PreviousScene),
		Progress:      st.Progress,
		Frame:         int64(s.Frame()),
	}
	if st.Transitioning {
		frame.Transitioning = 1
	}
	c.History = append(c.History, frame)
}

func (c *Capture) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, c.CaptureVersion)
	Serialize(buf, c.ReleaseVersion)
	Serialize(buf, c.Id)
	Serialize(buf, c.SceneDuration)
	Serialize(buf, c.TransitionTime)
	SerializeSlice(buf, c.History)
	return Zip(buf.Bytes())
}

func DeserializeCapture(data []byte) (c Capture) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &c.CaptureVersion)
	if c.CaptureVersion != CaptureVersion {
		Check(fmt.Errorf("can't deserialize this capture - we are at "+
			"CaptureVersion %d and the capture was recorded with "+
			"CaptureVersion %d", CaptureVersion, c.CaptureVersion))
	}
	Deserialize(buf, &c.ReleaseVersion)
	Deserialize(buf, &c.Id)
	Deserialize(buf, &c.SceneDuration)
	Deserialize(buf, &c.TransitionTime)
	DeserializeSlice(buf, &c.History)
	return
}
