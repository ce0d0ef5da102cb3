package catalog

import (
	"embed"
	"io/fs"
)

//go:embed data/products/*.json data/projects/*.json
var embeddedData embed.FS

// EmbeddedFS returns the catalogue documents compiled into the binary,
// rooted so that names look like "products/en.json".
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
