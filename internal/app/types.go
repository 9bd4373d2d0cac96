package app

import "licmerge/internal/types"

const (
	DefaultInputPath  = "./licenses.json"
	DefaultOutputPath = "./licenses_out.json"
	DefaultKnownPath  = "./known.json"
)

type GenerateRequest struct {
	InputPath    string
	OutputPath   string
	KnownPath    string
	TemplatesDir string
	NoticePath   string
	Exclude      []string
	Force        bool
	List         bool
	Index        bool
}

type GenerateResult struct {
	OutputPath string
	NoticePath string
	Written    bool
	Summary    Summary
	Issues     []types.Issue
}

type CheckRequest struct {
	InputPath    string
	KnownPath    string
	TemplatesDir string
	Exclude      []string
}

type CheckResult struct {
	Summary Summary
	Issues  []types.Issue
}

// Summary counts what happened to each inventory record.
type Summary struct {
	Total    int
	Accepted int
	Errors   int
	Private  int
	Excluded int
	Ignored  int
}

type InspectRequest struct {
	OutputPath string
}

type InspectLicenseSummary struct {
	License types.LicenseID
	Count   int
}

type InspectResult struct {
	Shape    types.OutputShape
	Count    int
	Indexed  bool
	Licenses []InspectLicenseSummary
}
