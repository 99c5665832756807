package bench

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o1x3/surge-bench/internal/tools"
)

// fakeTool is a minimal Tool for scheduler and executor tests. Its
// Command records invocation order when calls is set.
type fakeTool struct {
	name      string
	setupErr  error
	argv      []string
	artifacts []string
	selfTime  bool
	calls     *[]string
}

func (f *fakeTool) Name() string               { return f.name }
func (f *fakeTool) Setup(_ *tools.Env) error   { return f.setupErr }
func (f *fakeTool) SelfTiming() bool           { return f.selfTime }
func (f *fakeTool) Artifacts(_ *tools.Env, _ string) []string {
	return f.artifacts
}

func (f *fakeTool) Command(_ *tools.Env, _ string) []string {
	if f.calls != nil {
		*f.calls = append(*f.calls, f.name)
	}
	if len(f.argv) > 0 {
		return f.argv
	}
	return []string{"sh", "-c", "exit 0"}
}

func asTools(fs []fakeTool) []tools.Tool {
	ts := make([]tools.Tool, len(fs))
	for i := range fs {
		ts[i] = &fs[i]
	}
	return ts
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestPlanRunsAllReadyWhenNothingRequested(t *testing.T) {
	candidates := asTools([]fakeTool{
		{name: "surge"},
		{name: "wget", setupErr: errors.New("wget not installed")},
		{name: "curl"},
	})
	plan, skipped := Plan(candidates, map[string]bool{}, &tools.Env{})
	require.Len(t, plan, 2)
	assert.Equal(t, "surge", plan[0].Name())
	assert.Equal(t, "curl", plan[1].Name())
	require.Len(t, skipped, 1)
	assert.Equal(t, "wget", skipped[0].Tool)
	assert.False(t, skipped[0].Success)
	assert.Equal(t, "wget not installed", skipped[0].Error)
}

func TestPlanFiltersToRequestedTools(t *testing.T) {
	candidates := asTools([]fakeTool{
		{name: "surge"},
		{name: "wget"},
		{name: "curl"},
	})
	plan, skipped := Plan(candidates, map[string]bool{"wget": true}, &tools.Env{})
	require.Len(t, plan, 1)
	assert.Equal(t, "wget", plan[0].Name())
	assert.Empty(t, skipped)
}

func TestPlanRecordsRequestedButNotReady(t *testing.T) {
	candidates := asTools([]fakeTool{
		{name: "surge", setupErr: errors.New("build failed: no checkout")},
		{name: "wget"},
	})
	requested := map[string]bool{"surge": true, "wget": true}
	plan, skipped := Plan(candidates, requested, &tools.Env{})
	require.Len(t, plan, 1)
	assert.Equal(t, "wget", plan[0].Name())
	require.Len(t, skipped, 1)
	assert.Equal(t, "surge", skipped[0].Tool)
	assert.Contains(t, skipped[0].Error, "build failed")
}

func TestRunInterlacesToolsWithinIterations(t *testing.T) {
	skipWithoutShell(t)
	var calls []string
	plan := asTools([]fakeTool{
		{name: "a", calls: &calls},
		{name: "b", calls: &calls},
	})
	raw := Run(plan, &tools.Env{}, "http://example.com/f", 2, DefaultTimeout, 0)

	assert.Equal(t, []string{"a", "b", "a", "b"}, calls)
	require.Len(t, raw, 4)
	assert.Equal(t, "a", raw[0].Tool)
	assert.Equal(t, 1, raw[0].Iteration)
	assert.Equal(t, "b", raw[1].Tool)
	assert.Equal(t, 1, raw[1].Iteration)
	assert.Equal(t, "a", raw[2].Tool)
	assert.Equal(t, 2, raw[2].Iteration)
	assert.Equal(t, "b", raw[3].Tool)
	assert.Equal(t, 2, raw[3].Iteration)
}

func TestRunFailureIsOneDataPointNotFatal(t *testing.T) {
	skipWithoutShell(t)
	plan := asTools([]fakeTool{
		{name: "bad", argv: []string{"sh", "-c", "echo boom >&2; exit 1"}},
		{name: "good"},
	})
	raw := Run(plan, &tools.Env{}, "http://example.com/f", 1, DefaultTimeout, 0)
	require.Len(t, raw, 2)
	assert.False(t, raw[0].Result.Success)
	assert.Contains(t, raw[0].Result.Error, "boom")
	assert.True(t, raw[1].Result.Success)
}
