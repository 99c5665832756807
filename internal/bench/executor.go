package bench

import (
	"regexp"
	"strconv"
	"time"

	"github.com/o1x3/surge-bench/internal/tools"
	"github.com/o1x3/surge-bench/internal/utils"
)

// DefaultTimeout bounds a single tool run.
const DefaultTimeout = 600 * time.Second

const maxErrorLen = 200

// Matches a self-reported duration token like "in 5.2s" or "in 500ms".
var selfTimingRegex = regexp.MustCompile(`in ([0-9.]+)(m?s)`)

// parseSelfTiming extracts a tool's self-reported completion time in
// seconds from its output. The second return is false when no token
// matches or the number fails to parse; callers fall back to wall
// clock.
func parseSelfTiming(output string) (float64, bool) {
	m := selfTimingRegex.FindStringSubmatch(output)
	if m == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "ms" {
		val /= 1000
	}
	return val, true
}

// RunOnce executes one benchmark run of tool against url. It invokes
// the tool's process bounded by timeout, measures wall-clock elapsed
// time (preferring the tool's self-reported time when it declares
// one), then locates, measures, and deletes the downloaded artifact.
// All failure modes are converted into a failed Result; nothing
// escapes to the caller and nothing outlives the run on disk.
func RunOnce(tool tools.Tool, env *tools.Env, url string, timeout time.Duration) utils.Result {
	log := utils.GetLogger("executor")
	argv := tool.Command(env, url)
	log.Debug().Str("op", "bench/run").Str("tool", tool.Name()).Strs("argv", argv).Msg("invoking tool")

	start := time.Now()
	ok, output := utils.RunCommand(argv, "", timeout)
	elapsed := time.Since(start).Seconds()
	if tool.SelfTiming() {
		if reported, found := parseSelfTiming(output); found {
			elapsed = reported
		}
	}

	// Missing artifact on a zero exit still counts as success with
	// size 0: naming heuristics can miss without the transfer failing.
	var size int64
	for _, path := range tool.Artifacts(env, output) {
		if s := utils.FileSize(path); s > size {
			size = s
		}
		utils.CleanupFile(path)
	}

	result := utils.Result{
		Tool:           tool.Name(),
		Success:        ok,
		ElapsedSeconds: elapsed,
		SizeBytes:      size,
	}
	if !ok {
		result.Error = utils.Truncate(output, maxErrorLen)
	}
	return result
}
