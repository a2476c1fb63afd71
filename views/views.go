// Package views holds the page components that render a folio.SiteProfile.
// The components are written in .templ files; the _templ.go files beside
// them are generated.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate

import "github.com/kanajetzt/folio"

// Default returns the stock component set for folio.New.
func Default() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:        Home,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}
