package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"licmerge/internal/policies"
	"licmerge/internal/shared"
	"licmerge/internal/types"
)

type ReconcilerOptions struct {
	WithIndex bool
	Exclude   policies.ExcludePolicy
}

// Reconciler resolves every inventory record into a license text in a
// single pass.
type Reconciler struct {
	templates map[types.LicenseID]string
	known     types.KnownOverrides
	options   ReconcilerOptions
}

func NewReconciler(templates map[types.LicenseID]string, known types.KnownOverrides, options ReconcilerOptions) Reconciler {
	if known == nil {
		known = types.KnownOverrides{}
	}
	return Reconciler{
		templates: templates,
		known:     known,
		options:   options,
	}
}

type skipReason int

const (
	skipNone skipReason = iota
	skipPrivate
	skipExcluded
	skipIgnored
)

type resolution struct {
	text  string
	issue *types.Issue
	skip  skipReason
}

// accumulator collects the pass outcome. The index only advances for
// accepted records.
type accumulator struct {
	report    types.Report
	next      int
	withIndex bool
}

func (a *accumulator) accept(key string, record types.DependencyRecord, text string) {
	out := types.OutputRecord{
		Name:                 record.Name,
		InputDataLicenseType: record.Licenses.ID(),
		Version:              record.Version,
		LicenseText:          text,
	}
	if a.withIndex {
		index := a.next
		out.Index = &index
	}
	a.next++
	a.report.Accepted = append(a.report.Accepted, types.OutputEntry{Key: key, Record: out})
}

func (a *accumulator) record(res resolution) {
	if res.issue != nil {
		a.report.Issues = append(a.report.Issues, *res.issue)
		return
	}
	switch res.skip {
	case skipPrivate:
		a.report.Private++
	case skipExcluded:
		a.report.Excluded++
	case skipIgnored:
		a.report.Ignored++
	}
}

func (r Reconciler) Reconcile(ctx context.Context, entries []types.DependencyEntry) types.Report {
	acc := accumulator{withIndex: r.options.WithIndex}
	for _, entry := range entries {
		res := r.resolve(entry)
		if res.issue != nil || res.skip != skipNone {
			acc.record(res)
			continue
		}
		assert.NotEmpty(ctx, res.text, "accepted license text must not be empty")
		acc.accept(entry.Key, entry.Record, res.text)
	}
	log.Ctx(ctx).Debug().
		Int("accepted", len(acc.report.Accepted)).
		Int("issues", len(acc.report.Issues)).
		Msg("reconcile pass finished")
	return acc.report
}

func (r Reconciler) resolve(entry types.DependencyEntry) resolution {
	record := entry.Record
	declared := record.Licenses.ID()
	if record.Name == "" || record.Version == "" {
		return issueResolution(entry.Key, types.IssueMissingNameVersion, declared)
	}
	if record.Private {
		return resolution{skip: skipPrivate}
	}
	if r.options.Exclude.Excludes(record.Name) {
		return resolution{skip: skipExcluded}
	}

	override, found := LookupOverride(r.known, record.Name, declared)
	effective, copyright := ApplyOverride(override, found, declared, record.Copyright)

	var text string
	if shared.IsLicenseFileName(record.LicenseFile) {
		text = record.LicenseText
	}

	switch policies.ClassifyLicense(effective) {
	case types.LicenseKindTemplate:
		if text != "" {
			return resolution{text: text}
		}
		if copyright == "" {
			return issueResolution(entry.Key, types.IssueCopyright, effective)
		}
		template := r.templates[effective]
		if template == "" {
			return issueResolution(entry.Key, types.IssueLicense, effective)
		}
		return resolution{text: RenderTemplate(template, copyright)}
	case types.LicenseKindKnown:
		if !found {
			return issueResolution(entry.Key, types.IssueKnownLicenseText, effective)
		}
		if override.Ignore {
			return resolution{skip: skipIgnored}
		}
		if override.LicenseText == "" {
			return issueResolution(entry.Key, types.IssueKnownLicenseText, effective)
		}
		return resolution{text: override.LicenseText}
	default:
		return issueResolution(entry.Key, types.IssueLicense, effective)
	}
}

func issueResolution(key string, kind types.IssueKind, license types.LicenseID) resolution {
	return resolution{issue: &types.Issue{Key: key, Kind: kind, License: license}}
}
