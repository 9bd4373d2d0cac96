package adapters

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"licmerge/internal/assets"
	"licmerge/internal/ports"
	"licmerge/internal/types"
)

// templateFiles maps each template identifier to its file name.
var templateFiles = map[types.LicenseID]string{
	types.LicenseMIT:        "mit.txt",
	types.LicenseApache20:   "apache20.txt",
	types.LicenseISC:        "isc.txt",
	types.LicenseBSD2Clause: "bsd2clause.txt",
	types.LicenseBSD3Clause: "bsd3clause.txt",
}

// TemplateSourceAdapter reads license templates from Dir, or from the
// templates compiled into the binary when Dir is empty.
type TemplateSourceAdapter struct {
	Dir string
}

func NewTemplateSourceAdapter(dir string) TemplateSourceAdapter {
	return TemplateSourceAdapter{Dir: strings.TrimSpace(dir)}
}

func (a TemplateSourceAdapter) LoadTemplates() (map[types.LicenseID]string, error) {
	source := assets.LicenseTextsFS()
	origin := "embedded"
	if a.Dir != "" {
		info, err := os.Stat(a.Dir)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("license template directory %s does not exist", a.Dir)).
				WithCause(err)
		}
		if !info.IsDir() {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("license template path %s is not a directory", a.Dir))
		}
		source = os.DirFS(a.Dir)
		origin = a.Dir
	}
	templates := make(map[types.LicenseID]string, len(types.TemplateLicenses))
	for _, id := range types.TemplateLicenses {
		name := templateFiles[id]
		data, err := fs.ReadFile(source, name)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("license template file %s is missing", name)).
				WithCause(err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("license template file %s is empty", name))
		}
		if !strings.Contains(string(data), types.CopyrightMarker) {
			log.Warn().
				Str("template", name).
				Msg("license template has no copyright marker")
		}
		templates[id] = string(data)
	}
	log.Debug().
		Str("origin", origin).
		Int("templates", len(templates)).
		Msg("license templates loaded")
	return templates, nil
}

var _ ports.TemplateSourcePort = TemplateSourceAdapter{}
