package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docweave/config"
	"github.com/tsawler/docweave/srs"
	"github.com/tsawler/docweave/style"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, srs.DefaultOutput, cfg.Output)
	assert.Equal(t, srs.Metadata().Title, cfg.Metadata.Title)
	assert.Equal(t, srs.Metadata().Keywords, cfg.Metadata.Keywords)
	assert.Empty(t, cfg.Styles)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "docweave.yaml", `
output: out/report.docx
metadata:
  author: QA Team
styles:
  - name: Heading 1
    font: Georgia
    size: 18
    color: navy
    bold: true
  - name: Caption
    font: Arial
    size: 9
    align: center
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out/report.docx", cfg.Output)
	assert.Equal(t, "QA Team", cfg.Metadata.Author)
	assert.Equal(t, srs.Metadata().Title, cfg.Metadata.Title, "defaults survive partial files")
	require.Len(t, cfg.Styles, 2)
	assert.Equal(t, "Georgia", cfg.Styles[0].Font)
	assert.True(t, cfg.Styles[0].Bold)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "docweave.toml", `
output = "from-toml.docx"

[[styles]]
name = "Normal"
font = "Cambria"
size = 12
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-toml.docx", cfg.Output)
	require.Len(t, cfg.Styles, 1)
	assert.Equal(t, "Cambria", cfg.Styles[0].Font)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "docweave.yaml", "output: file.docx\n")
	t.Setenv("DOCWEAVE_OUTPUT", "env.docx")
	t.Setenv("DOCWEAVE_METADATA_TITLE", "Env Title")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env.docx", cfg.Output)
	assert.Equal(t, "Env Title", cfg.Metadata.Title)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "docweave.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestStyleSheet(t *testing.T) {
	cfg := &config.Config{Styles: []config.StyleConfig{
		{Name: "Heading 1", Font: "Georgia", Size: 18, Color: "#FF0000"},
		{Name: "Caption", Font: "Arial", Size: 9, Align: "center"},
	}}

	sheet, err := cfg.StyleSheet(style.DefaultSheet())
	require.NoError(t, err)
	assert.Len(t, sheet, len(style.DefaultSheet())+1)

	reg := style.NewRegistry()
	require.NoError(t, style.RegisterAll(reg, sheet...))

	h1, err := reg.Resolve("Heading 1")
	require.NoError(t, err)
	assert.Equal(t, "Georgia", h1.FontFamily)
	assert.Equal(t, style.RGB{R: 0xFF}, h1.Color)

	caption, err := reg.Resolve("Caption")
	require.NoError(t, err)
	assert.Equal(t, style.AlignCenter, caption.Alignment)
	assert.Equal(t, style.Black, caption.Color)
}

func TestStyleSheet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		styles []config.StyleConfig
	}{
		{"duplicate", []config.StyleConfig{
			{Name: "A", Font: "Arial", Size: 10},
			{Name: "A", Font: "Arial", Size: 12},
		}},
		{"bad color", []config.StyleConfig{{Name: "A", Font: "Arial", Size: 10, Color: "not-a-color"}}},
		{"bad align", []config.StyleConfig{{Name: "A", Font: "Arial", Size: 10, Align: "diagonal"}}},
		{"no font", []config.StyleConfig{{Name: "A", Size: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Styles: tt.styles}
			_, err := cfg.StyleSheet(style.DefaultSheet())
			assert.Error(t, err)
		})
	}

	cfg := &config.Config{Styles: []config.StyleConfig{
		{Name: "A", Font: "Arial", Size: 10},
		{Name: "A", Font: "Arial", Size: 12},
	}}
	_, err := cfg.StyleSheet(nil)
	assert.ErrorIs(t, err, style.ErrDuplicateStyle)
}

func TestEncode(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	out, err := cfg.Encode("yaml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "output: "+srs.DefaultOutput)

	out, err = cfg.Encode("toml")
	require.NoError(t, err)
	assert.Contains(t, string(out), srs.DefaultOutput)

	_, err = cfg.Encode("ini")
	assert.Error(t, err)
}

func TestEncode_RoundTripsThroughLoad(t *testing.T) {
	cfg := &config.Config{
		Output: "rt.docx",
		Styles: []config.StyleConfig{{Name: "Normal", Font: "Cambria", Size: 12}},
	}
	for _, format := range []string{"yaml", "toml"} {
		out, err := cfg.Encode(format)
		require.NoError(t, err)

		loaded, err := config.Load(writeFile(t, "cfg."+format, string(out)))
		require.NoError(t, err, format)
		assert.Equal(t, "rt.docx", loaded.Output, format)
		require.Len(t, loaded.Styles, 1, format)
		assert.Equal(t, "Cambria", loaded.Styles[0].Font, format)
	}
}
