package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is the scheduler state as perceived from the outside: the
// fields a viewer's experience depends on. If two schedulers produce the
// same StateBytes on every tick they are "the same", even if the internals
// were refactored. That is the contract the regression id checks.
func StateBytes(s *Scheduler) []byte {
	st := s.State()
	buf := new(bytes.Buffer)
	Serialize(buf, int64(st.CurrentScene))
	Serialize(buf, int64(st.PreviousScene))
	Serialize(buf, st.Transitioning)
	Serialize(buf, st.Progress)
	Serialize(buf, int64(s.Frame()))
	return buf.Bytes()
}

// RegressionId uniquely identifies a scenario's behavior: a hash over the
// scheduler state at every tick of the run. It is meant to be used this
// way:
// - Compute the RegressionId for a scenario.
// - Refactor the scheduler.
// - Compute the RegressionId for the same scenario again.
// - If it hasn't changed, the refactoring did not alter what a viewer
// would have seen at any tick.
func RegressionId(sc *Scenario, cfg Config) string {
	hash := sha256.New()
	s := NewScheduler(SceneCount, cfg)
	hash.Write(StateBytes(s))
	for tick := int64(0); tick < sc.Ticks; tick++ {
		for _, ev := range sc.Events {
			if ev.Tick == tick {
				s.JumpToScene(ev.Scene)
			}
		}
		s.Step(tickSeconds)
		hash.Write(StateBytes(s))
	}
	s.Shutdown()
	return hex.EncodeToString(hash.Sum(nil))
}
