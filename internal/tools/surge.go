package tools

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/o1x3/surge-bench/internal/utils"
)

const buildTimeout = 5 * time.Minute

// Surge builds the surge binary from a local checkout and benchmarks
// its headless get command. Surge keeps the server-provided filename,
// so artifacts are located by glob.
type Surge struct {
	binPath string
}

func (s *Surge) Name() string { return "surge" }

func (s *Surge) Setup(env *Env) error {
	if s.binPath != "" {
		return nil
	}
	log := utils.GetLogger("tools")
	if utils.Which("go") == "" {
		return fmt.Errorf("go toolchain not installed")
	}
	bin := filepath.Join(env.ScratchDir, "surge"+exeSuffix())
	log.Debug().Str("op", "surge/setup").Str("dir", env.ProjectDir).Msg("building surge")
	ok, out := utils.RunCommand([]string{"go", "build", "-o", bin, "."}, env.ProjectDir, buildTimeout)
	if !ok {
		return fmt.Errorf("build failed: %s", utils.Truncate(out, 200))
	}
	s.binPath = bin
	return nil
}

func (s *Surge) Command(env *Env, url string) []string {
	return []string{s.binPath, "get", url, "--output", env.DownloadDir}
}

func (s *Surge) Artifacts(env *Env, _ string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range []string{"*.bin", "*MB*", "*.zip"} {
		matches, _ := filepath.Glob(filepath.Join(env.DownloadDir, pattern))
		for _, m := range matches {
			if seen[m] || strings.Contains(filepath.Base(m), "surge") {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}
	return paths
}

// SelfTiming is true: surge prints "Complete: <size> in <duration>
// (<speed>)" on finish, which excludes its probing phase.
func (s *Surge) SelfTiming() bool { return true }
