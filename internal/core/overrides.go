package core

import "licmerge/internal/types"

// LookupOverride finds the known override for a dependency. The plain name
// entry always wins over the name_licenseType entry.
func LookupOverride(known types.KnownOverrides, name string, declared types.LicenseID) (types.KnownOverride, bool) {
	if override, ok := known[name]; ok {
		return override, true
	}
	override, ok := known[name+"_"+string(declared)]
	return override, ok
}

// ApplyOverride returns the effective license and copyright for a record.
// The override only applies when it was written against the license the
// record declares, so a license change upstream surfaces as an issue
// instead of being masked.
func ApplyOverride(override types.KnownOverride, found bool, declared types.LicenseID, copyright string) (types.LicenseID, string) {
	if !found || override.LicensesOrigin != declared {
		return declared, copyright
	}
	if override.Copyright != "" {
		copyright = override.Copyright
	}
	return override.Licenses, copyright
}
