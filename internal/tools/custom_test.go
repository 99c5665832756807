package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToolsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCustom(t *testing.T) {
	path := writeToolsFile(t, `
- name: axel
  bin: axel
  args: ["-q", "-o", "{dir}/axel_download", "{url}"]
  artifact: axel_download
- name: httpie
  bin: http
  args: ["--download", "{url}"]
`)
	loaded, err := LoadCustom(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "axel", loaded[0].Name())
	assert.Equal(t, "httpie", loaded[1].Name())
}

func TestLoadCustomValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"missing name", "- bin: axel\n  args: [\"{url}\"]\n", "missing name for entry 1"},
		{"missing bin", "- name: axel\n  args: [\"{url}\"]\n", "missing bin for entry 1"},
		{"missing args", "- name: axel\n  bin: axel\n", "missing args for entry 1"},
		{"bad yaml", "useless: {", "error parsing YAML file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCustom(writeToolsFile(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	_, err := LoadCustom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading YAML file")
}

func TestCustomCommandTemplating(t *testing.T) {
	c := &Custom{
		entry: CustomEntry{
			Name: "axel",
			Bin:  "axel",
			Args: []string{"-o", "{dir}/axel_download", "{url}", "{url}"},
		},
		binPath: "/usr/bin/axel",
	}
	env := &Env{DownloadDir: "/tmp/dl"}
	argv := c.Command(env, "http://example.com/1GB.bin")
	assert.Equal(t, []string{
		"/usr/bin/axel",
		"-o", "/tmp/dl/axel_download",
		"http://example.com/1GB.bin",
		"http://example.com/1GB.bin",
	}, argv)
}

func TestCustomArtifactsGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "axel_download"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0644))

	c := &Custom{entry: CustomEntry{Name: "axel", Bin: "axel", Args: []string{"{url}"}, Artifact: "axel_*"}}
	paths := c.Artifacts(&Env{DownloadDir: dir}, "")
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "axel_download"), paths[0])

	// empty pattern matches anything left in the download dir
	c2 := &Custom{entry: CustomEntry{Name: "any", Bin: "any", Args: []string{"{url}"}}}
	assert.Len(t, c2.Artifacts(&Env{DownloadDir: dir}, ""), 2)
}
