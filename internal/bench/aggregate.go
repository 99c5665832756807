package bench

import (
	"github.com/o1x3/surge-bench/internal/tools"
	"github.com/o1x3/surge-bench/internal/utils"
)

// Aggregate collapses the ordered run results for one tool into a
// single summary. Pure function: averages elapsed time over
// successful runs, takes the size from the first successful run, and
// preserves the successful per-iteration times in order. With no
// successful run it reports failure carrying the last run's error.
func Aggregate(name string, runs []utils.Result) utils.Result {
	var successes []utils.Result
	for _, r := range runs {
		if r.Success {
			successes = append(successes, r)
		}
	}
	if len(successes) == 0 {
		errMsg := "no runs"
		if len(runs) > 0 {
			errMsg = runs[len(runs)-1].Error
		}
		return utils.Result{Tool: name, Success: false, Error: errMsg}
	}
	times := make([]float64, 0, len(successes))
	var total float64
	for _, r := range successes {
		times = append(times, r.ElapsedSeconds)
		total += r.ElapsedSeconds
	}
	return utils.Result{
		Tool:           name,
		Success:        true,
		ElapsedSeconds: total / float64(len(times)),
		SizeBytes:      successes[0].SizeBytes,
		IterTimes:      times,
	}
}

// AggregateAll groups the raw outcomes by tool and aggregates each
// group, preserving the schedule order of the plan.
func AggregateAll(plan []tools.Tool, raw []utils.RawOutcome) []utils.Result {
	byTool := make(map[string][]utils.Result)
	for _, o := range raw {
		byTool[o.Tool] = append(byTool[o.Tool], o.Result)
	}
	results := make([]utils.Result, 0, len(plan))
	for _, t := range plan {
		results = append(results, Aggregate(t.Name(), byTool[t.Name()]))
	}
	return results
}
