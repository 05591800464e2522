package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSiteFile(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, siteFileName), []byte(content), 0644))
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("SITE_ROOT", t.TempDir())
	t.Setenv("SITE_TITLE", "")
	t.Setenv("SITE_ENV", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Showkit", cfg.Title)
	assert.Equal(t, "development", cfg.Env)
}

func TestNew_RootDefaultsToCurrentDir(t *testing.T) {
	t.Setenv("SITE_ROOT", "")
	t.Setenv("SITE_TITLE", "")
	t.Setenv("SITE_ENV", "")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
}

func TestNew_SiteFileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	writeSiteFile(t, root, "title: Conference Deck\nenv: production\n")
	t.Setenv("SITE_ROOT", root)
	t.Setenv("SITE_TITLE", "")
	t.Setenv("SITE_ENV", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Conference Deck", cfg.Title)
	assert.Equal(t, "production", cfg.Env)
}

func TestNew_EnvWinsOverSiteFile(t *testing.T) {
	root := t.TempDir()
	writeSiteFile(t, root, "title: From File\n")
	t.Setenv("SITE_ROOT", root)
	t.Setenv("SITE_TITLE", "From Env")
	t.Setenv("SITE_ENV", "")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Title)
}

func TestNew_MalformedSiteFile(t *testing.T) {
	root := t.TempDir()
	writeSiteFile(t, root, "title: [unclosed\n")
	t.Setenv("SITE_ROOT", root)

	_, err := New()
	assert.Error(t, err)
}

func TestNew_RejectsUnknownEnv(t *testing.T) {
	t.Setenv("SITE_ROOT", t.TempDir())
	t.Setenv("SITE_ENV", "staging")

	_, err := New()
	assert.Error(t, err)
}

func TestValidate_RequiresRoot(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}
