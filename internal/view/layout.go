// Package view is the templating side of the layout contract: it
// consumes a page.Page and emits the shell markup, including one link
// tag per discovered stylesheet and one script tag per discovered
// script.
package view

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nprest/showkit/internal/page"
)

// Shell renders the full page skeleton around the given body. Asset
// references use the conventional /css and /js URL prefixes matching
// the public asset tree.
func Shell(p page.Page, body cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(p.Title())),
				cmp.Map(p.Stylesheets(), func(name string) cmp.Node {
					return g.Link(g.Rel("stylesheet"), g.Href("/css/"+name))
				}),
			),
			g.Body(
				body,
				cmp.Map(p.Javascripts(), func(name string) cmp.Node {
					return g.Script(g.Src("/js/" + name))
				}),
			),
		),
	)
}

// Index is the scaffold landing content: the site title and a pointer
// to the pre-rendered slideshow page.
func Index(p page.Page) cmp.Node {
	return g.Main(
		g.Class("index"),
		g.H1(cmp.Text(p.Title())),
		g.P(
			cmp.Text("View the "),
			g.A(g.Href("/slideshow.html"), cmp.Text("slideshow")),
			cmp.Text("."),
		),
	)
}
