package view

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/nprest/showkit/internal/assets"
	"github.com/nprest/showkit/internal/config"
	"github.com/nprest/showkit/internal/page"
)

func renderShell(t *testing.T, p page.Page, body cmp.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Shell(p, body).Render(&sb))
	return sb.String()
}

func TestShell_InjectsAssetTags(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "site/public/css/screen.css", []byte("body{}"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "site/public/css/print.css", []byte("body{}"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "site/public/js/slideshow.js", []byte(";"), 0644))

	cfg := &config.Config{Root: "site", Title: "Demo Deck", Env: "development"}
	p := page.New(cfg, assets.New(memFs, cfg.Root))

	html := renderShell(t, p, Index(p))

	assert.Contains(t, html, "<title>Demo Deck</title>")
	assert.Contains(t, html, `<link rel="stylesheet" href="/css/print.css">`)
	assert.Contains(t, html, `<link rel="stylesheet" href="/css/screen.css">`)
	assert.Contains(t, html, `<script src="/js/slideshow.js">`)

	// Order: print.css sorts before screen.css.
	assert.Less(t,
		strings.Index(html, "print.css"),
		strings.Index(html, "screen.css"),
	)
}

func TestShell_NoAssetsRendersBareHead(t *testing.T) {
	cfg := &config.Config{Root: "site", Title: "Empty", Env: "development"}
	p := page.New(cfg, assets.New(afero.NewMemMapFs(), cfg.Root))

	html := renderShell(t, p, Index(p))

	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "<script")
}

func TestIndex_LinksSlideshow(t *testing.T) {
	cfg := &config.Config{Root: "site", Title: "Demo Deck", Env: "development"}
	p := page.New(cfg, assets.New(afero.NewMemMapFs(), cfg.Root))

	var sb strings.Builder
	require.NoError(t, Index(p).Render(&sb))

	assert.Contains(t, sb.String(), `href="/slideshow.html"`)
	assert.Contains(t, sb.String(), "Demo Deck")
}
