package ports

import "licmerge/internal/types"

// TemplateSourcePort loads the license templates, one per template
// identifier. A missing template is an error.
type TemplateSourcePort interface {
	LoadTemplates() (map[types.LicenseID]string, error)
}
