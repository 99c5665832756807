package utils

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// RunCommand executes argv with a bounded timeout and returns whether
// the process exited zero, along with its merged stdout/stderr. It
// never returns an error: launch failures and timeouts become a
// failed run with diagnostic text.
func RunCommand(argv []string, cwd string, timeout time.Duration) (bool, string) {
	if len(argv) == 0 {
		return false, "empty command"
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = cwd
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		log.Debug().Str("op", "utils/run").Str("bin", argv[0]).Msg("command timed out")
		return false, "command timed out"
	}
	if err != nil {
		if len(out) == 0 {
			return false, fmt.Sprintf("command failed: %v", err)
		}
		return false, string(out)
	}
	return true, string(out)
}

// Which returns the resolved path of a binary on the search path, or
// an empty string when it is not installed.
func Which(name string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}

// CleanupFile removes a file if it exists. Idempotent.
func CleanupFile(path string) {
	_ = os.Remove(path)
}

// Truncate bounds diagnostic text to n bytes after trimming
// surrounding whitespace, backing up to a rune boundary so a
// multi-byte character is never split.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
