package policies

import "licmerge/internal/types"

// ClassifyLicense maps an effective license identifier onto the closed set
// of resolution strategies. Matching is exact; SPDX identifiers are
// case-sensitive here.
func ClassifyLicense(id types.LicenseID) types.LicenseKind {
	switch id {
	case types.LicenseMIT,
		types.LicenseApache20,
		types.LicenseISC,
		types.LicenseBSD2Clause,
		types.LicenseBSD3Clause:
		return types.LicenseKindTemplate
	case types.LicenseKnown:
		return types.LicenseKindKnown
	default:
		return types.LicenseKindUnsupported
	}
}
