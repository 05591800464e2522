// Package page builds the layout context handed to the templating
// layer: the site configuration plus the discovered asset filenames.
package page

import (
	"github.com/nprest/showkit/internal/assets"
	"github.com/nprest/showkit/internal/config"
)

// Page is the layout context for rendering the site shell. It borrows
// the configuration and queries the asset lister on demand; nothing is
// cached between calls.
type Page struct {
	cfg    *config.Config
	lister *assets.Lister
}

// New creates a Page over the given configuration and lister.
func New(cfg *config.Config, lister *assets.Lister) Page {
	return Page{cfg: cfg, lister: lister}
}

// FromConfig creates a Page whose lister reads the configured root on
// the operating system filesystem.
func FromConfig(cfg *config.Config) Page {
	return New(cfg, assets.NewOS(cfg.Root))
}

// Config returns the borrowed site configuration.
func (p Page) Config() *config.Config {
	return p.cfg
}

// Title returns the configured site title.
func (p Page) Title() string {
	return p.cfg.Title
}

// Stylesheets returns the base filenames of the discovered stylesheets.
func (p Page) Stylesheets() []string {
	return p.lister.Stylesheets()
}

// Javascripts returns the base filenames of the discovered scripts.
func (p Page) Javascripts() []string {
	return p.lister.Javascripts()
}
