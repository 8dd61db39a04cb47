package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Static returns the landing page assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

// IndexHTML returns the landing page
func IndexHTML() []byte {
	data, err := content.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	return data
}
