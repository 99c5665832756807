package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/o1x3/surge-bench/internal/utils"
)

// CustomEntry is one user-defined tool from a YAML tools file. Args
// may use {url} and {dir} placeholders, substituted per run.
type CustomEntry struct {
	Name     string   `yaml:"name"`
	Bin      string   `yaml:"bin"`
	Args     []string `yaml:"args"`
	Artifact string   `yaml:"artifact,omitempty"` // glob under the download dir, "*" if empty
}

// LoadCustom reads user-defined tool entries from a YAML file.
func LoadCustom(filePath string) ([]Tool, error) {
	log := utils.GetLogger("tools")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %v", err)
	}
	var entries []CustomEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing YAML file: %v", err)
	}
	var result []Tool
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("missing name for entry %d", i+1)
		}
		if entry.Bin == "" {
			return nil, fmt.Errorf("missing bin for entry %d", i+1)
		}
		if len(entry.Args) == 0 {
			return nil, fmt.Errorf("missing args for entry %d", i+1)
		}
		result = append(result, &Custom{entry: entry})
	}
	log.Debug().Int("count", len(result)).Msg("custom tools loaded from YAML")
	return result, nil
}

// Custom runs a user-defined binary with templated arguments.
type Custom struct {
	entry   CustomEntry
	binPath string
}

func (c *Custom) Name() string { return c.entry.Name }

func (c *Custom) Setup(_ *Env) error {
	if c.binPath != "" {
		return nil
	}
	bin := utils.Which(c.entry.Bin)
	if bin == "" {
		return fmt.Errorf("%s not installed", c.entry.Bin)
	}
	c.binPath = bin
	return nil
}

func (c *Custom) Command(env *Env, url string) []string {
	argv := []string{c.binPath}
	for _, arg := range c.entry.Args {
		arg = strings.ReplaceAll(arg, "{url}", url)
		arg = strings.ReplaceAll(arg, "{dir}", env.DownloadDir)
		argv = append(argv, arg)
	}
	return argv
}

func (c *Custom) Artifacts(env *Env, _ string) []string {
	pattern := c.entry.Artifact
	if pattern == "" {
		pattern = "*"
	}
	matches, _ := filepath.Glob(filepath.Join(env.DownloadDir, pattern))
	return matches
}

func (c *Custom) SelfTiming() bool { return false }
