package cmd

import (
	"fmt"
	u "net/url"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/o1x3/surge-bench/internal/bench"
	"github.com/o1x3/surge-bench/internal/output"
	"github.com/o1x3/surge-bench/internal/tools"
	"github.com/o1x3/surge-bench/internal/utils"
)

// Default test file, a well-known large speed-test artifact.
const defaultTestURL = "https://sin-speed.hetzner.com/1GB.bin"

var (
	iterations int
	runTimeout time.Duration
	cooldown   time.Duration
	projectDir string
	harnessDir string
	toolsFile  string
	runSurge   bool
	runMotrix  bool
	runAria2   bool
	runGrab    bool
	runWget    bool
	runCurl    bool
	debug      bool
)

var BenchVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "surge-bench [URL]",
	Short:   "Benchmark surge against other download tools",
	Version: BenchVersion,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		testURL := defaultTestURL
		if len(args) > 0 {
			testURL = args[0]
		}
		if parsed, err := u.Parse(testURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			output.PrintError("Invalid URL format")
			os.Exit(1)
		}
		if iterations < 1 {
			iterations = 1
		}

		scratchDir := filepath.Join(os.TempDir(), "surge-bench-"+uuid.NewString()[:8])
		downloadDir := filepath.Join(scratchDir, "downloads")
		if err := os.MkdirAll(downloadDir, 0755); err != nil {
			output.PrintError(fmt.Sprintf("Error creating scratch directory: %v", err))
			os.Exit(1)
		}
		// The scratch tree goes away on every exit path, interrupts
		// included.
		cleanup := func() {
			_ = os.RemoveAll(scratchDir)
		}
		defer cleanup()
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			<-sigCh
			cleanup()
			os.Exit(1)
		}()

		env := &tools.Env{
			ProjectDir:  projectDir,
			HarnessDir:  harnessDir,
			ScratchDir:  scratchDir,
			DownloadDir: downloadDir,
		}
		candidates := tools.Builtin()
		requested := requestedTools()
		if toolsFile != "" {
			custom, err := tools.LoadCustom(toolsFile)
			if err != nil {
				output.PrintError(fmt.Sprintf("Error loading tools file: %v", err))
				cleanup()
				os.Exit(1)
			}
			// Tools named in a YAML file count as explicitly requested.
			for _, t := range custom {
				candidates = append(candidates, t)
				if len(requested) > 0 {
					requested[t.Name()] = true
				}
			}
		}

		output.PrintHeader("\nSurge Benchmark Suite")
		output.PrintStream(fmt.Sprintf("  Test URL:   %s", testURL))
		output.PrintStream(fmt.Sprintf("  Iterations: %d", iterations))
		output.PrintStream(fmt.Sprintf("  Scratch:    %s", scratchDir))

		output.PrintHeader("\nSetup")
		plan, skipped := bench.Plan(candidates, requested, env)
		if len(plan) == 0 {
			output.PrintWarning("No tools ready to benchmark")
			fmt.Print(output.RenderReport(skipped))
			return
		}

		output.PrintHeader("\nBenchmarking")
		output.PrintStream(fmt.Sprintf("  Downloading: %s", testURL))
		output.PrintStream(fmt.Sprintf("  Exec Order:  Interlaced (%d tools x %d runs)", len(plan), iterations))
		raw := bench.Run(plan, env, testURL, iterations, runTimeout, cooldown)

		results := bench.AggregateAll(plan, raw)
		results = append(results, skipped...)
		fmt.Print(output.RenderReport(results))
	},
}

// requestedTools maps the per-tool selection flags to tool names. An
// empty map means no specific tool was requested, so all ready tools
// run.
func requestedTools() map[string]bool {
	requested := make(map[string]bool)
	for name, flag := range map[string]bool{
		"surge":           runSurge,
		"aria2c (Motrix)": runMotrix,
		"aria2c (Std)":    runAria2,
		"grab (Go)":       runGrab,
		"wget":            runWget,
		"curl":            runCurl,
	} {
		if flag {
			requested[name] = true
		}
	}
	return requested
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&iterations, "iterations", "n", 1, "Number of interlaced iteration rounds")
	rootCmd.Flags().DurationVarP(&runTimeout, "timeout", "t", bench.DefaultTimeout, "Per-run timeout (eg. 60s, 10m)")
	rootCmd.Flags().DurationVar(&cooldown, "cooldown", bench.DefaultCooldown, "Pause between consecutive runs")
	rootCmd.Flags().StringVarP(&projectDir, "project", "p", ".", "Path to a surge checkout to build and benchmark")
	rootCmd.Flags().StringVar(&harnessDir, "harness", ".", "Path to a surge-bench checkout, used to build the grab helper")
	rootCmd.Flags().StringVar(&toolsFile, "tools", "", "YAML file with additional tools to benchmark")

	// per-tool selection; none given means all ready tools run
	rootCmd.Flags().BoolVar(&runSurge, "surge", false, "Benchmark surge")
	rootCmd.Flags().BoolVar(&runMotrix, "motrix", false, "Benchmark aria2c with Motrix config")
	rootCmd.Flags().BoolVar(&runAria2, "aria2", false, "Benchmark standard aria2c")
	rootCmd.Flags().BoolVar(&runGrab, "grab", false, "Benchmark the grab helper")
	rootCmd.Flags().BoolVar(&runWget, "wget", false, "Benchmark wget")
	rootCmd.Flags().BoolVar(&runCurl, "curl", false, "Benchmark curl")

	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
