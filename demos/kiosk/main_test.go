package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/uikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "kiosk version dev\n", out.String())
}

func TestRunFailsWithoutFonts(t *testing.T) {
	withHome(t, t.TempDir())
	resources := t.TempDir()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--resources", resources})
	assert.Error(t, cmd.Execute())
}

func TestRunFailsOnMissingFamily(t *testing.T) {
	withHome(t, t.TempDir())
	resources := t.TempDir()
	dir := filepath.Join(resources, "fonts", "Go")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0o644))

	cfg := DefaultConfig()
	cfg.Resources = resources
	err := run(context.Background(), cfg, options{})
	assert.ErrorIs(t, err, uikit.ErrFontNotFound)
}
