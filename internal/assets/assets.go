// Package assets holds the files compiled into the licmerge binary: the
// license templates, the JSON Schemas for the input files and the notice
// template.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed lictexts/*.txt
var licenseTexts embed.FS

//go:embed schemas/dependencies.schema.json
var DependenciesSchema []byte

//go:embed schemas/known.schema.json
var KnownSchema []byte

//go:embed templates/notice.hbs
var NoticeTemplate string

// LicenseTextsFS returns the embedded templates rooted so that file names
// match the on-disk layout of a --templates directory.
func LicenseTextsFS() fs.FS {
	if sub, err := fs.Sub(licenseTexts, "lictexts"); err == nil {
		return sub
	}
	return licenseTexts
}
