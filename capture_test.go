package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_SerializeRoundtrip(t *testing.T) {
	sc := Scenario{Ticks: 700, Events: []ScenarioEvent{{Tick: 30, Scene: 2}}}
	capture := sc.Run(testConfig())
	require.Equal(t, 700, len(capture.History))

	back := DeserializeCapture(capture.Serialize())
	assert.Equal(t, capture.Id, back.Id)
	assert.Equal(t, capture.SceneDuration, back.SceneDuration)
	assert.Equal(t, capture.History, back.History)
}

func TestCapture_RecordsTheJump(t *testing.T) {
	sc := Scenario{Ticks: 100, Events: []ScenarioEvent{{Tick: 30, Scene: 4}}}
	capture := sc.Run(testConfig())

	// Before the jump: steady on scene 0.
	assert.Equal(t, int64(0), capture.History[29].CurrentScene)
	assert.Equal(t, int64(0), capture.History[29].Transitioning)

	// After the jump: fading 0 -> 4.
	assert.Equal(t, int64(4), capture.History[30].CurrentScene)
	assert.Equal(t, int64(0), capture.History[30].PreviousScene)
	assert.Equal(t, int64(1), capture.History[30].Transitioning)
}

func TestRegressionId_DeterministicAcrossRuns(t *testing.T) {
	fsys := os.DirFS(".").(FS)
	sc := LoadScenario(fsys, "data/scenario-cycle.yaml")
	require.Equal(t, int64(45000), sc.Ticks)

	id1 := RegressionId(&sc, testConfig())
	id2 := RegressionId(&sc, testConfig())
	assert.Equal(t, id1, id2)
}

func TestRegressionId_SensitiveToEvents(t *testing.T) {
	base := Scenario{Ticks: 2000}
	jumped := Scenario{Ticks: 2000,
		Events: []ScenarioEvent{{Tick: 100, Scene: 2}}}

	assert.NotEqual(t,
		RegressionId(&base, testConfig()),
		RegressionId(&jumped, testConfig()))
}

func TestRegressionId_SensitiveToConfig(t *testing.T) {
	sc := Scenario{Ticks: 2000}
	slow := testConfig()
	fast := testConfig()
	fast.SceneDuration = 5

	assert.NotEqual(t,
		RegressionId(&sc, slow),
		RegressionId(&sc, fast))
}

func BenchmarkScenario(b *testing.B) {
	sc := Scenario{Ticks: 45000, Events: []ScenarioEvent{{Tick: 200, Scene: 3}}}
	for b.Loop() {
		sc.Run(testConfig())
	}
}
