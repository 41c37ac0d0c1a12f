package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteva/pkg/config"
	"noteva/pkg/store"
)

func setupThemes(t *testing.T) string {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "noteva.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	Init(st)

	themes := t.TempDir()
	old := config.ThemesDir
	config.ThemesDir = themes
	t.Cleanup(func() { config.ThemesDir = old })
	return themes
}

func TestActivateThemeRejectsMissingDir(t *testing.T) {
	setupThemes(t)
	assert.Error(t, ActivateTheme(""))
	assert.Error(t, ActivateTheme("no-such-theme"))
}

func TestListThemesFlagsActive(t *testing.T) {
	themes := setupThemes(t)
	require.NoError(t, os.MkdirAll(filepath.Join(themes, "paper"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(themes, "paper", "theme.toml"),
		[]byte("name = \"Paper\"\nauthor = \"x\"\n"), 0o644))
	require.NoError(t, ActivateTheme("paper"))

	got, err := ListThemes()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paper", got[0].Name)
	assert.True(t, got[0].Active)
}

func TestTemplatesGlobPrefersThemeTemplates(t *testing.T) {
	themes := setupThemes(t)

	assert.Equal(t, "templates/*", TemplatesGlob(), "no theme templates falls back to the builtin set")

	dir := filepath.Join(themes, "paper", "templates")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, ActivateTheme("paper"))

	assert.Equal(t, filepath.Join(dir, "*.html"), TemplatesGlob())
}
