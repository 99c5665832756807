package tools

import "runtime"

// Env carries the session-wide paths shared by tool setup and runs.
// The scratch and download directories live for one benchmark session
// and are removed when it ends.
type Env struct {
	ProjectDir  string // surge checkout to build and benchmark
	HarnessDir  string // this repository's checkout, for helper builds
	ScratchDir  string // session scratch root (builds, clones)
	DownloadDir string // where tools place their artifacts
}

// Tool describes one download program under test.
type Tool interface {
	// Name is the unique display name used in reports.
	Name() string
	// Setup verifies the tool can be invoked, performing any one-time
	// build or fetch step. Idempotent within a session: repeat calls
	// reuse the first result.
	Setup(env *Env) error
	// Command produces the argv for one run against url, placing any
	// artifact under env.DownloadDir.
	Command(env *Env, url string) []string
	// Artifacts returns candidate paths for the run's downloaded
	// artifact, given the process output. Paths may not exist; the
	// executor measures and deletes whatever does.
	Artifacts(env *Env, output string) []string
	// SelfTiming reports whether the tool prints its own completion
	// time, which the executor prefers over wall clock when parseable.
	SelfTiming() bool
}

// Builtin returns the built-in descriptors in canonical schedule
// order: surge first, then the third-party tools.
func Builtin() []Tool {
	return []Tool{
		&Surge{},
		&Aria2Motrix{},
		&Aria2Std{},
		&Grab{},
		&Wget{},
		&Curl{},
	}
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
