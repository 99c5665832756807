package tools

import (
	"fmt"
	"path/filepath"

	"github.com/o1x3/surge-bench/internal/utils"
)

// Curl benchmarks curl in silent mode, following redirects.
type Curl struct {
	binPath string
}

func (c *Curl) Name() string { return "curl" }

func (c *Curl) Setup(_ *Env) error {
	if c.binPath != "" {
		return nil
	}
	bin := utils.Which("curl")
	if bin == "" {
		return fmt.Errorf("curl not installed")
	}
	c.binPath = bin
	return nil
}

func (c *Curl) Command(env *Env, url string) []string {
	return []string{c.binPath, "-s", "-L", "-o", filepath.Join(env.DownloadDir, "curl_download"), url}
}

func (c *Curl) Artifacts(env *Env, _ string) []string {
	return []string{filepath.Join(env.DownloadDir, "curl_download")}
}

func (c *Curl) SelfTiming() bool { return false }
