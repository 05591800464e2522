// Package assets discovers stylesheet and script files under a site
// project's public asset tree.
package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Conventional asset locations beneath {root}/public.
const (
	publicDir     = "public"
	stylesheetDir = "css"
	javascriptDir = "js"
)

// Lister enumerates asset files for a single project root. It performs
// read-only filesystem queries, holds no state beyond its bindings, and
// is safe for concurrent use.
type Lister struct {
	fs   afero.Fs
	root string
}

// New creates a Lister over the given filesystem and project root.
func New(fsys afero.Fs, root string) *Lister {
	return &Lister{fs: fsys, root: root}
}

// NewOS creates a Lister over the operating system filesystem.
func NewOS(root string) *Lister {
	return New(afero.NewOsFs(), root)
}

// Stylesheets returns the base filenames of all .css files found
// recursively under {root}/public/css, sorted. A missing or unreadable
// directory yields an empty result, never an error.
func (l *Lister) Stylesheets() []string {
	return l.list(stylesheetDir, ".css")
}

// Javascripts returns the base filenames of all .js files found
// recursively under {root}/public/js, sorted, with the same
// degrade-to-empty behavior as Stylesheets.
func (l *Lister) Javascripts() []string {
	return l.list(javascriptDir, ".js")
}

// list walks {root}/public/{dir} collecting base names of files with the
// given extension. Unreadable entries are skipped rather than surfaced;
// callers never handle an error from asset discovery.
func (l *Lister) list(dir, ext string) []string {
	base := filepath.Join(l.root, publicDir, dir)

	names := []string{}
	_ = afero.Walk(l.fs, base, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			names = append(names, filepath.Base(path))
		}
		return nil
	})

	sort.Strings(names)
	return names
}
