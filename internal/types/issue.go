package types

import "fmt"

// Issue is a per-record problem that excludes the record from output
// without stopping the pass.
type Issue struct {
	Key     string
	Kind    IssueKind
	License LicenseID
}

func (i Issue) Message() string {
	switch i.Kind {
	case IssueMissingNameVersion:
		return fmt.Sprintf("%s: name or version is missing", i.Key)
	case IssueCopyright:
		return fmt.Sprintf("%s: check the copyright notice (%s)", i.Key, i.License)
	case IssueKnownLicenseText:
		return fmt.Sprintf("%s: known license entry has no license text; add \"ignore\": true if it need not be output", i.Key)
	default:
		return fmt.Sprintf("%s: check the license (%s)", i.Key, i.License)
	}
}

// Report is the outcome of one reconcile pass.
type Report struct {
	Accepted []OutputEntry
	Issues   []Issue
	Private  int
	Excluded int
	Ignored  int
}

func (r Report) ErrorCount() int {
	return len(r.Issues)
}
