package renderer

import "time"

// ProgressSink receives progress while a render runs. Progress ticks
// arrive at most every 250 ms with the per-sample row count;
// SampleDone fires once after every completed sample pass.
type ProgressSink interface {
	Progress(sample, totalSamples, rowsDone, totalRows int)
	SampleDone(sample, totalSamples int, elapsed time.Duration)
}

type nopSink struct{}

func (nopSink) Progress(sample, totalSamples, rowsDone, totalRows int) {}

func (nopSink) SampleDone(sample, totalSamples int, elapsed time.Duration) {}

// LogSink reports progress through the renderer logger: row ticks at
// debug, completed samples at info.
type LogSink struct{}

func (LogSink) Progress(sample, totalSamples, rowsDone, totalRows int) {
	logger.Debugf("sample %d/%d: %d/%d rows", sample, totalSamples, rowsDone, totalRows)
}

func (LogSink) SampleDone(sample, totalSamples int, elapsed time.Duration) {
	logger.Infof("sample %d/%d done in %v", sample, totalSamples, elapsed)
}
