package main

// AnimationClock is the single shared time value driving every generator
// and the scheduler. It holds elapsed seconds since startup, advanced once
// per tick, and keeps no history. One writer (the Gui update loop), many
// readers; within one tick everything reads the same value, so a frame is
// computed against one consistent time.
//
// The clock is derived from the tick count, not from the wall clock, so a
// run is a deterministic function of the number of ticks executed. This is
// what makes scenario captures reproducible.
type AnimationClock struct {
	elapsed float64
}

// Step advances the clock. dt must be non-negative; elapsed time is
// monotonically non-decreasing for the lifetime of the session.
func (c *AnimationClock) Step(dt float64) {
	Assert(dt >= 0)
	c.elapsed += dt
}

func (c *AnimationClock) Elapsed() float64 {
	return c.elapsed
}
