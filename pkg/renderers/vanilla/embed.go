package vanilla

import (
	"embed"
	"io/fs"
)

// StylesheetName is the bundled CSS file inside AssetsFS.
const StylesheetName = "propername.css"

// bundle holds the layouts under templates/ and static files under assets/.
//
//go:embed templates/*.tmpl assets/*
var bundle embed.FS

// TemplatesFS returns the bundle rooted so that layout paths read
// "templates/<name>.tmpl". Pass a replacement to WithTemplatesFS to override
// layouts.
func TemplatesFS() fs.FS { return bundle }

// AssetsFS returns the static files with the assets/ prefix removed.
func AssetsFS() fs.FS {
	assets, err := fs.Sub(bundle, "assets")
	if err != nil {
		return bundle
	}
	return assets
}

// Stylesheet returns the bundled name group CSS, or "" if it is missing.
func Stylesheet() string {
	css, _ := fs.ReadFile(AssetsFS(), StylesheetName)
	return string(css)
}
