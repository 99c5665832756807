package tools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/o1x3/surge-bench/internal/utils"
)

const motrixRepo = "https://github.com/agalwood/Motrix"

// Aria2Motrix benchmarks aria2c tuned the way Motrix ships it. Setup
// clones the Motrix repository once per session to resolve its
// aria2.conf; a failed clone is not fatal since the tuning flags are
// passed explicitly as well.
type Aria2Motrix struct {
	binPath  string
	confPath string
	fetched  bool
}

func (a *Aria2Motrix) Name() string { return "aria2c (Motrix)" }

func (a *Aria2Motrix) Setup(env *Env) error {
	if a.binPath != "" {
		return nil
	}
	log := utils.GetLogger("tools")
	bin := utils.Which("aria2c")
	if bin == "" {
		return fmt.Errorf("aria2c not installed")
	}
	if !a.fetched {
		a.fetched = true
		conf, err := fetchMotrixConf(env)
		if err != nil {
			log.Warn().Str("op", "aria2/setup").Err(err).Msg("proceeding without Motrix aria2.conf")
		} else {
			a.confPath = conf
		}
	}
	a.binPath = bin
	return nil
}

// fetchMotrixConf clones the Motrix repository at depth 1 and returns
// the path of its extra/aria2.conf. Reuses an existing checkout.
func fetchMotrixConf(env *Env) (string, error) {
	dest := filepath.Join(env.ScratchDir, "motrix")
	conf := filepath.Join(dest, "extra", "aria2.conf")
	if _, err := os.Stat(conf); err == nil {
		return conf, nil
	}
	_, err := git.PlainClone(dest, false, &git.CloneOptions{
		URL:          motrixRepo,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil && err != git.ErrRepositoryAlreadyExists {
		return "", fmt.Errorf("git clone failed: %v", err)
	}
	if _, err := os.Stat(conf); err != nil {
		return "", fmt.Errorf("aria2.conf not found in Motrix checkout")
	}
	return conf, nil
}

func (a *Aria2Motrix) Command(env *Env, url string) []string {
	argv := []string{a.binPath}
	if a.confPath != "" {
		argv = append(argv, "--conf-path="+a.confPath)
	}
	argv = append(argv,
		"--max-connection-per-server=16",
		"--split=16",
		"--min-split-size=1M",
		"--max-concurrent-downloads=1",
		"--continue=true",
		"--auto-file-renaming=false",
		"--allow-overwrite=true",
		"--console-log-level=warn",
		"-o", "aria2_download",
		"-d", env.DownloadDir,
		url,
	)
	return argv
}

func (a *Aria2Motrix) Artifacts(env *Env, _ string) []string {
	return []string{filepath.Join(env.DownloadDir, "aria2_download")}
}

func (a *Aria2Motrix) SelfTiming() bool { return false }

// Aria2Std benchmarks vanilla aria2c with 16 connections and no
// config file.
type Aria2Std struct {
	binPath string
}

func (a *Aria2Std) Name() string { return "aria2c (Std)" }

func (a *Aria2Std) Setup(_ *Env) error {
	if a.binPath != "" {
		return nil
	}
	bin := utils.Which("aria2c")
	if bin == "" {
		return fmt.Errorf("aria2c not installed")
	}
	a.binPath = bin
	return nil
}

func (a *Aria2Std) Command(env *Env, url string) []string {
	return []string{
		a.binPath,
		"-x", "16", "-s", "16",
		"-o", "aria2_std_download",
		"-d", env.DownloadDir,
		"--allow-overwrite=true",
		"--console-log-level=warn",
		url,
	}
}

func (a *Aria2Std) Artifacts(env *Env, _ string) []string {
	return []string{filepath.Join(env.DownloadDir, "aria2_std_download")}
}

func (a *Aria2Std) SelfTiming() bool { return false }
