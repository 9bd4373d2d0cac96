package types

// LicenseID is an SPDX-like license identifier as declared by the
// dependency scanner or a known override.
type LicenseID string

const (
	LicenseMIT        LicenseID = "MIT"
	LicenseApache20   LicenseID = "Apache-2.0"
	LicenseISC        LicenseID = "ISC"
	LicenseBSD2Clause LicenseID = "BSD-2-Clause"
	LicenseBSD3Clause LicenseID = "BSD-3-Clause"
	LicenseKnown      LicenseID = "KNOWN_LICENSE"
)

// CopyrightMarker is the literal placeholder replaced in license templates.
const CopyrightMarker = "%%%COPYRIGHT%%%"

// TemplateLicenses lists the identifiers that have a bundled license
// template, in the order the templates are loaded.
var TemplateLicenses = []LicenseID{
	LicenseMIT,
	LicenseApache20,
	LicenseISC,
	LicenseBSD2Clause,
	LicenseBSD3Clause,
}

// LicenseKind is the closed set of ways a license identifier can be
// resolved into text.
type LicenseKind int

const (
	LicenseKindUnsupported LicenseKind = iota
	LicenseKindTemplate
	LicenseKindKnown
)

func (k LicenseKind) String() string {
	switch k {
	case LicenseKindTemplate:
		return "template"
	case LicenseKindKnown:
		return "known"
	default:
		return "unsupported"
	}
}

type IssueKind string

const (
	IssueMissingNameVersion IssueKind = "missing-name-version"
	IssueCopyright          IssueKind = "copyright"
	IssueKnownLicenseText   IssueKind = "known-license-text"
	IssueLicense            IssueKind = "license"
)

// OutputShape selects how accepted records are serialized.
type OutputShape string

const (
	OutputShapeObject OutputShape = "object"
	OutputShapeList   OutputShape = "list"
)
