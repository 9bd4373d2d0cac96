package core

import (
	"strings"

	"licmerge/internal/types"
)

// RenderTemplate substitutes copyright at the first copyright marker.
// The copyright is inserted literally.
func RenderTemplate(template string, copyright string) string {
	return strings.Replace(template, types.CopyrightMarker, copyright, 1)
}
