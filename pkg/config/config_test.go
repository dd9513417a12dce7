package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/bioflat/pkg/linesrc"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaults(t *testing.T) {
	v, err := New(t.TempDir())
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", c.Input.Encoding)
	assert.False(t, c.Input.Mmap)
	assert.Equal(t, 64*1024, c.Input.BufSize)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 4, c.Xref.Workers)
}

// The file is found from a subdirectory, and the environment beats it.
func TestFileAndEnv(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[input]
encoding = "ISO-8859-1"
mmap = true

[xref]
workers = 2
`)
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	assert.Equal(t, filepath.Join(root, FileName), findProjectConfig(sub))

	t.Setenv("BIOFLAT_XREF_WORKERS", "8")
	v, err := New(sub)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", c.Input.Encoding)
	assert.True(t, c.Input.Mmap)
	assert.Equal(t, 8, c.Xref.Workers)
	assert.Equal(t, linesrc.Options{Encoding: "ISO-8859-1", Mmap: true, BufSize: 64 * 1024}, c.LineOptions())
}

func TestLoadFromFile(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "[log]\njson = true\nlevel = \"debug\"\n")
	c, err := LoadFromFile(p)
	require.NoError(t, err)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "debug", c.Log.Level)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "nothing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"negative workers", "[xref]\nworkers = -1\n", nil},
		{"negative buffer", "[input]\nbuf_size = -5\n", nil},
		{"utf-16", "[input]\nencoding = \"UTF-16\"\n", linesrc.ErrEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, t.TempDir(), tt.body))
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want))
			}
		})
	}
}
