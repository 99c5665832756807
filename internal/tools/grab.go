package tools

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/o1x3/surge-bench/internal/utils"
)

// Grab benchmarks the bundled grab-based helper binary (see
// cmd/grabbench), built once per session. The helper prints the
// artifact's name on a "file=" line; a glob over the download
// directory is the fallback when that line is missing.
type Grab struct {
	binPath string
}

func (g *Grab) Name() string { return "grab (Go)" }

func (g *Grab) Setup(env *Env) error {
	if g.binPath != "" {
		return nil
	}
	log := utils.GetLogger("tools")
	if utils.Which("go") == "" {
		return fmt.Errorf("go toolchain not installed")
	}
	bin := filepath.Join(env.ScratchDir, "grab_bench"+exeSuffix())
	log.Debug().Str("op", "grab/setup").Str("dir", env.HarnessDir).Msg("building grab helper")
	ok, out := utils.RunCommand([]string{"go", "build", "-o", bin, "./cmd/grabbench"}, env.HarnessDir, buildTimeout)
	if !ok {
		return fmt.Errorf("build failed: %s", utils.Truncate(out, 200))
	}
	g.binPath = bin
	return nil
}

func (g *Grab) Command(env *Env, url string) []string {
	return []string{g.binPath, url, env.DownloadDir}
}

func (g *Grab) Artifacts(env *Env, output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "file="); ok && name != "" {
			paths = append(paths, filepath.Join(env.DownloadDir, filepath.Base(name)))
		}
	}
	if len(paths) == 0 {
		paths, _ = filepath.Glob(filepath.Join(env.DownloadDir, "*MB*"))
	}
	return paths
}

func (g *Grab) SelfTiming() bool { return false }
