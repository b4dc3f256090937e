package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("docgen", nil)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.OutDir)
	assert.Equal(t, DefaultPreviewDelay, cfg.PreviewDelay)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadFlags(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load("docgen", []string{
		"--out", dir,
		"--author", "Anix",
		"--preview-delay", "250ms",
		"--watermark", "",
		"--page-numbers",
		"--loglevel", "DEBUG",
		"--format", "json",
	})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.OutDir)
	assert.Equal(t, "Anix", cfg.Author)
	assert.Equal(t, 250*time.Millisecond, cfg.PreviewDelay)
	assert.Empty(t, cfg.Watermark)
	assert.True(t, cfg.PageNumbers)
	assert.True(t, cfg.IsDebug())
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("DOCGEN_AUTHOR", "Env Author")
	t.Setenv("DOCGEN_PREVIEW_DELAY", "2s")
	t.Setenv("DOCGEN_FORMAT", "yaml")

	cfg, err := Load("docgen", []string{"--format", "json"})
	require.NoError(t, err)

	assert.Equal(t, "Env Author", cfg.Author)
	assert.Equal(t, 2*time.Second, cfg.PreviewDelay)
	assert.Equal(t, FormatJSON, cfg.Format, "explicit flag wins over the environment")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "docgen.yaml")
	require.NoError(t, os.WriteFile(file, []byte("author: Arquivo\npage-numbers: true\nwatermark: RASCUNHO\n"), 0o600))

	cfg, err := Load("docgen", []string{"--config", file})
	require.NoError(t, err)

	assert.Equal(t, "Arquivo", cfg.Author)
	assert.True(t, cfg.PageNumbers)
	assert.Equal(t, "RASCUNHO", cfg.Watermark)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("docgen", []string{"--loglevel", "loud"})
	assert.ErrorContains(t, err, "invalid log level")

	_, err = Load("docgen", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = Load("docgen", []string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestFlagsExtendable(t *testing.T) {
	fs := Flags("render")
	values := fs.String("values", "", "values file")
	require.NoError(t, fs.Parse([]string{"--values", "v.yaml", "--author", "X", "recibo_aluguel"}))

	cfg, err := FromFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, "v.yaml", *values)
	assert.Equal(t, "X", cfg.Author)
	assert.Equal(t, []string{"recibo_aluguel"}, fs.Args())
}
