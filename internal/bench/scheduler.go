package bench

import (
	"fmt"
	"time"

	"github.com/o1x3/surge-bench/internal/output"
	"github.com/o1x3/surge-bench/internal/tools"
	"github.com/o1x3/surge-bench/internal/utils"
)

// DefaultCooldown is the pause between consecutive runs, so one
// tool's teardown does not skew the next tool's measurement.
const DefaultCooldown = 500 * time.Millisecond

// Plan resolves which tools run this session. With an empty requested
// set, every ready candidate runs; otherwise exactly the requested
// ones that are ready. Candidates that were considered but failed
// their readiness check are recorded as failure results right here,
// so the final report covers every tool without a second bookkeeping
// pass.
func Plan(candidates []tools.Tool, requested map[string]bool, env *tools.Env) ([]tools.Tool, []utils.Result) {
	log := utils.GetLogger("scheduler")
	specific := len(requested) > 0
	var plan []tools.Tool
	var skipped []utils.Result
	for _, t := range candidates {
		if specific && !requested[t.Name()] {
			continue
		}
		if err := t.Setup(env); err != nil {
			log.Debug().Str("op", "bench/plan").Str("tool", t.Name()).Err(err).Msg("tool not ready")
			output.PrintWarning(fmt.Sprintf("  %s %s: %v", output.StyleSymbols["fail"], t.Name(), err))
			skipped = append(skipped, utils.Result{
				Tool:    t.Name(),
				Success: false,
				Error:   utils.Truncate(err.Error(), maxErrorLen),
			})
			continue
		}
		output.PrintSuccess(fmt.Sprintf("  %s %s ready", output.StyleSymbols["pass"], t.Name()))
		plan = append(plan, t)
	}
	return plan, skipped
}

// Run executes the interlaced measurement loop: for each iteration,
// every planned tool runs once in plan order, strictly sequentially,
// with a cooldown after each run. Interlacing spreads time-varying
// network conditions evenly across tools instead of confounding one
// tool with a particular time window. The returned slice holds
// exactly one outcome per (tool, iteration) pair and is not mutated
// afterwards.
func Run(plan []tools.Tool, env *tools.Env, url string, iterations int, timeout, cooldown time.Duration) []utils.RawOutcome {
	log := utils.GetLogger("scheduler")
	raw := make([]utils.RawOutcome, 0, len(plan)*iterations)
	for i := 1; i <= iterations; i++ {
		output.PrintInfo(fmt.Sprintf("\n  [ Iteration %d/%d ]", i, iterations))
		for _, t := range plan {
			output.PrintDetail(fmt.Sprintf("    Running %s...", t.Name()))
			res := RunOnce(t, env, url, timeout)
			raw = append(raw, utils.RawOutcome{Tool: t.Name(), Iteration: i, Result: res})
			if res.Success {
				output.PrintStream(fmt.Sprintf("      done in %.2fs", res.ElapsedSeconds))
			} else {
				output.PrintError("      failed")
				log.Debug().Str("op", "bench/run").Str("tool", t.Name()).Str("error", res.Error).Msg("run failed")
			}
			time.Sleep(cooldown)
		}
	}
	return raw
}
