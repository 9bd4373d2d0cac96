package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"licmerge/internal/adapters"
	"licmerge/internal/core"
	"licmerge/internal/policies"
	"licmerge/internal/ports"
	"licmerge/internal/types"
)

func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	report, total, err := s.reconcile(ctx, reconcileInput{
		InputPath:    req.InputPath,
		KnownPath:    req.KnownPath,
		TemplatesDir: req.TemplatesDir,
		Exclude:      req.Exclude,
		Index:        req.Index,
	})
	if err != nil {
		return GenerateResult{}, err
	}
	result := GenerateResult{
		OutputPath: outputPath,
		Summary:    summarize(report, total),
		Issues:     report.Issues,
	}
	reportIssues(report.Issues)

	errorCount := report.ErrorCount()
	if errorCount > 0 && !req.Force {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d issue(s) need attention; resolve them, for example by adding entries to the known overrides file, and run again", errorCount))
	}

	shape := types.OutputShapeObject
	if req.List {
		shape = types.OutputShapeList
	}
	if err := s.Output.WriteLicenses(outputPath, report.Accepted, shape); err != nil {
		return result, err
	}
	result.Written = true

	if noticePath := strings.TrimSpace(req.NoticePath); noticePath != "" {
		if err := s.Notice.WriteNotice(noticePath, report.Accepted); err != nil {
			return result, err
		}
		result.NoticePath = noticePath
	}

	if errorCount > 0 {
		log.Warn().
			Int("issues", errorCount).
			Msg("output written despite unresolved issues; records with issues were left out")
	}
	return result, nil
}

func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	report, total, err := s.reconcile(ctx, reconcileInput{
		InputPath:    req.InputPath,
		KnownPath:    req.KnownPath,
		TemplatesDir: req.TemplatesDir,
		Exclude:      req.Exclude,
	})
	if err != nil {
		return CheckResult{}, err
	}
	reportIssues(report.Issues)
	result := CheckResult{
		Summary: summarize(report, total),
		Issues:  report.Issues,
	}
	if report.ErrorCount() > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d issue(s) need attention", report.ErrorCount()))
	}
	return result, nil
}

type reconcileInput struct {
	InputPath    string
	KnownPath    string
	TemplatesDir string
	Exclude      []string
	Index        bool
}

// reconcile loads every input up front, then runs the pass. Load failures
// are fatal; per-record problems come back inside the report.
func (s Service) reconcile(ctx context.Context, in reconcileInput) (types.Report, int, error) {
	inputPath := strings.TrimSpace(in.InputPath)
	if inputPath == "" {
		return types.Report{}, 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input path is required")
	}
	exclude, err := policies.NewExcludePolicy(in.Exclude)
	if err != nil {
		return types.Report{}, 0, err
	}

	var templateSource ports.TemplateSourcePort = s.Templates
	if dir := strings.TrimSpace(in.TemplatesDir); dir != "" {
		templateSource = adapters.NewTemplateSourceAdapter(dir)
	}
	templates, err := templateSource.LoadTemplates()
	if err != nil {
		return types.Report{}, 0, err
	}
	known := types.KnownOverrides{}
	if knownPath := strings.TrimSpace(in.KnownPath); knownPath != "" {
		known, err = s.Known.LoadKnown(knownPath)
		if err != nil {
			return types.Report{}, 0, err
		}
	}
	entries, err := s.Dependencies.LoadDependencies(inputPath)
	if err != nil {
		return types.Report{}, 0, err
	}

	reconciler := core.NewReconciler(templates, known, core.ReconcilerOptions{
		WithIndex: in.Index,
		Exclude:   exclude,
	})
	return reconciler.Reconcile(ctx, entries), len(entries), nil
}

func summarize(report types.Report, total int) Summary {
	return Summary{
		Total:    total,
		Accepted: len(report.Accepted),
		Errors:   report.ErrorCount(),
		Private:  report.Private,
		Excluded: report.Excluded,
		Ignored:  report.Ignored,
	}
}

// reportIssues prints one line per issue. Missing metadata is a warning;
// license problems are errors.
func reportIssues(issues []types.Issue) {
	for _, issue := range issues {
		event := log.Warn()
		if issue.Kind == types.IssueLicense || issue.Kind == types.IssueKnownLicenseText {
			event = log.Error()
		}
		event.
			Str("key", issue.Key).
			Str("kind", string(issue.Kind)).
			Msg(issue.Message())
	}
}
