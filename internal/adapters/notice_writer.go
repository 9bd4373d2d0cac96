package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aymerick/raymond"

	"licmerge/internal/assets"
	"licmerge/internal/ports"
	"licmerge/internal/types"
)

// NoticeWriterAdapter renders accepted records into a plain-text NOTICE
// document using a Handlebars template.
type NoticeWriterAdapter struct {
	Template string
}

func NewNoticeWriterAdapter() NoticeWriterAdapter {
	return NoticeWriterAdapter{Template: assets.NoticeTemplate}
}

func (a NoticeWriterAdapter) WriteNotice(path string, entries []types.OutputEntry) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	text, err := a.Render(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write notice file").
			WithCause(err)
	}
	return nil
}

func (a NoticeWriterAdapter) Render(entries []types.OutputEntry) (string, error) {
	source := a.Template
	if strings.TrimSpace(source) == "" {
		source = assets.NoticeTemplate
	}
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse notice template").
			WithCause(err)
	}
	records := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		records = append(records, map[string]interface{}{
			"key":         entry.Key,
			"name":        entry.Record.Name,
			"version":     entry.Record.Version,
			"license":     string(entry.Record.InputDataLicenseType),
			"licenseText": strings.TrimRight(entry.Record.LicenseText, "\n"),
		})
	}
	out, err := tpl.Exec(map[string]interface{}{"records": records})
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render notice template").
			WithCause(err)
	}
	return out, nil
}

var _ ports.NoticePort = NoticeWriterAdapter{}
