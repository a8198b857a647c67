package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "build")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho hello\n"), 0o755))
	notes := filepath.Join(dir, "NOTES")
	require.NoError(t, os.WriteFile(notes, []byte("plain text\n"), 0o644))

	p := NewProvider()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"untitled", "", Untitled},
		{"extension", "/src/main.go", Code},
		{"extension is case insensitive", "/docs/README.MD", Markup},
		{"sniffed shell script", script, Shell},
		{"sniffed plain text", notes, Default},
		{"missing file", filepath.Join(dir, "missing"), Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Icon(tt.path))
		})
	}
}

func TestProvider_FileCreatedAfterFirstLookup(t *testing.T) {
	script := filepath.Join(t.TempDir(), "deploy")
	p := NewProvider()

	assert.Equal(t, Default, p.Icon(script))

	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho deployed\n"), 0o755))
	assert.Equal(t, Shell, p.Icon(script))
}
