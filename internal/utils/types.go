package utils

const MB = 1024 * 1024

// Result is the outcome of one benchmark run of a tool, or the
// per-tool summary produced by aggregation. Instances are never
// mutated after creation; aggregation builds a new one.
type Result struct {
	Tool           string
	Success        bool
	ElapsedSeconds float64
	SizeBytes      int64
	Error          string
	// IterTimes holds the elapsed time of each successful iteration.
	// Only set on aggregated results.
	IterTimes []float64
}

// SpeedMBps derives the transfer speed in MB/s. Zero whenever the
// elapsed time is not positive, so it never divides by zero.
func (r Result) SpeedMBps() float64 {
	if r.ElapsedSeconds <= 0 {
		return 0
	}
	return float64(r.SizeBytes) / MB / r.ElapsedSeconds
}

// RawOutcome tags a single run result with the tool and iteration
// that produced it. The scheduler emits exactly one per (tool,
// iteration) pair.
type RawOutcome struct {
	Tool      string
	Iteration int
	Result    Result
}
