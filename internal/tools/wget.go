package tools

import (
	"fmt"
	"path/filepath"

	"github.com/o1x3/surge-bench/internal/utils"
)

// Wget benchmarks wget with quiet output and an explicit output file.
type Wget struct {
	binPath string
}

func (w *Wget) Name() string { return "wget" }

func (w *Wget) Setup(_ *Env) error {
	if w.binPath != "" {
		return nil
	}
	bin := utils.Which("wget")
	if bin == "" {
		return fmt.Errorf("wget not installed")
	}
	w.binPath = bin
	return nil
}

func (w *Wget) Command(env *Env, url string) []string {
	return []string{w.binPath, "-q", "-O", filepath.Join(env.DownloadDir, "wget_download"), url}
}

func (w *Wget) Artifacts(env *Env, _ string) []string {
	return []string{filepath.Join(env.DownloadDir, "wget_download")}
}

func (w *Wget) SelfTiming() bool { return false }
