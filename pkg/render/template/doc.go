// Package template defines the template renderer seam used by the HTML
// renderers. The gotemplate sub-package provides the pongo2-backed engine.
package template
