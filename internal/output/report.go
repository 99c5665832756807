package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/o1x3/surge-bench/internal/utils"
)

// histogramWidth is the bar length of the fastest tool; every other
// bar scales linearly against it.
const histogramWidth = 50

const errorPreviewLen = 60

// RenderReport formats the aggregated results as the final
// human-readable report: a comparison table with one row per tool in
// schedule order, the fastest-tool announcement, and a relative speed
// histogram.
func RenderReport(results []utils.Result) string {
	var b strings.Builder
	rule := strings.Repeat(StyleSymbols["dhline"], ruleWidth())
	b.WriteString("\n" + rule + "\n")
	b.WriteString(FHeader("  BENCHMARK RESULTS") + "\n")
	b.WriteString(rule + "\n\n")
	renderTable(&b, results)
	b.WriteString("\n" + rule + "\n")
	if fastest := Fastest(results); fastest != nil {
		b.WriteString(fmt.Sprintf("\n  %s %s: %s @ %.2f MB/s\n",
			StyleSymbols["trophy"], FHeader("Fastest"), fastest.Tool, fastest.SpeedMBps()))
	}
	renderHistogram(&b, results)
	return b.String()
}

func renderTable(b *strings.Builder, results []utils.Result) {
	v := StyleSymbols["vline"]
	b.WriteString(fmt.Sprintf("  %-20s %s %-6s %s %-10s %s %-12s %s %-10s\n",
		"Tool", v, "Status", v, "Avg Time", v, "Avg Speed", v, "Size"))
	b.WriteString(fmt.Sprintf("  %s%s%s%s%s%s%s%s%s\n",
		strings.Repeat(StyleSymbols["hline"], 21), "┼",
		strings.Repeat(StyleSymbols["hline"], 8), "┼",
		strings.Repeat(StyleSymbols["hline"], 12), "┼",
		strings.Repeat(StyleSymbols["hline"], 14), "┼",
		strings.Repeat(StyleSymbols["hline"], 11)))
	for _, r := range results {
		status := FSuccess(StyleSymbols["pass"])
		if !r.Success {
			status = FError(StyleSymbols["fail"])
		}
		timeStr := "N/A"
		if r.ElapsedSeconds > 0 {
			timeStr = fmt.Sprintf("%.2fs", r.ElapsedSeconds)
		}
		speedStr := "N/A"
		if r.Success && r.SpeedMBps() > 0 {
			speedStr = fmt.Sprintf("%.2f MB/s", r.SpeedMBps())
		}
		sizeStr := "N/A"
		if r.SizeBytes > 0 {
			sizeStr = fmt.Sprintf("%.1f MB", float64(r.SizeBytes)/utils.MB)
		}
		b.WriteString(fmt.Sprintf("  %-20s %s %-6s %s %-10s %s %-12s %s %-10s\n",
			r.Tool, v, status, v, timeStr, v, speedStr, v, sizeStr))
		if len(r.IterTimes) > 1 {
			runs := make([]string, 0, len(r.IterTimes))
			for _, t := range r.IterTimes {
				runs = append(runs, fmt.Sprintf("%.2fs", t))
			}
			b.WriteString(FStream(fmt.Sprintf("    %s Runs: %s", StyleSymbols["corner"], strings.Join(runs, ", "))) + "\n")
		}
		if !r.Success && r.Error != "" {
			preview := r.Error
			if len(preview) > errorPreviewLen {
				preview = preview[:errorPreviewLen] + "..."
			}
			b.WriteString(FError(fmt.Sprintf("    %s Error: %s", StyleSymbols["corner"], preview)) + "\n")
		}
	}
}

// Fastest returns the successful result with the highest speed, or
// nil when nothing qualifies. A strict greater-than scan keeps the
// earliest entry on ties.
func Fastest(results []utils.Result) *utils.Result {
	var best *utils.Result
	for i := range results {
		r := &results[i]
		if !r.Success || r.SpeedMBps() <= 0 {
			continue
		}
		if best == nil || r.SpeedMBps() > best.SpeedMBps() {
			best = r
		}
	}
	return best
}

// BarLength scales a speed linearly against the maximum, truncating
// toward zero.
func BarLength(speed, maxSpeed float64, width int) int {
	if maxSpeed <= 0 {
		return 0
	}
	return int(speed / maxSpeed * float64(width))
}

func renderHistogram(b *strings.Builder, results []utils.Result) {
	var successful []utils.Result
	for _, r := range results {
		if r.Success && r.SpeedMBps() > 0 {
			successful = append(successful, r)
		}
	}
	if len(successful) == 0 {
		return
	}
	sort.SliceStable(successful, func(i, j int) bool {
		return successful[i].SpeedMBps() > successful[j].SpeedMBps()
	})
	maxSpeed := successful[0].SpeedMBps()
	b.WriteString("\n  " + FHeader("SPEED COMPARISON") + "\n")
	b.WriteString("  " + strings.Repeat(StyleSymbols["hline"], histogramWidth) + "\n")
	for _, r := range successful {
		bar := strings.Repeat(StyleSymbols["bar"], BarLength(r.SpeedMBps(), maxSpeed, histogramWidth))
		b.WriteString(fmt.Sprintf("  %-20s %s %-50s %.2f MB/s\n",
			r.Tool, StyleSymbols["vline"], FInfo(bar), r.SpeedMBps()))
	}
	b.WriteString("\n")
}

func ruleWidth() int {
	if w := getTerminalWidth(); w < 70 {
		return w
	}
	return 70
}
