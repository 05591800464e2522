// Package web carries the scaffold's static content: the pre-rendered
// slideshow page and the public css/js asset tree, embedded so the
// shipped scaffold works without a source checkout.
package web

import (
	"embed"

	"github.com/spf13/afero"
)

// FS contains the embedded public asset tree. Patterns are relative to
// this file's directory.
//
//go:embed all:public
var FS embed.FS

// Assets adapts the embedded tree to afero so the asset lister and the
// rest of the filesystem code can read it like any project root.
func Assets() afero.Fs {
	return afero.FromIOFS{FS: FS}
}
