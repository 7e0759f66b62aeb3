package renderer

import "time"

// RenderStats summarizes a finished render.
type RenderStats struct {
	Width       int
	Height      int
	Samples     int
	Workers     int
	PrimaryRays int64 // one jittered camera ray per pixel per sample
	RowsMerged  int
	Elapsed     time.Duration
	SampleTimes []time.Duration
}

// RaysPerSecond returns the primary ray throughput over the whole
// render, or zero before any time has elapsed.
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Elapsed.Seconds()
}

// AverageSampleTime returns the mean wall-clock duration of one
// sample pass.
func (s RenderStats) AverageSampleTime() time.Duration {
	if len(s.SampleTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.SampleTimes {
		total += d
	}
	return total / time.Duration(len(s.SampleTimes))
}
