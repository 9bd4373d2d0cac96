package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"licmerge/internal/types"
)

func TestLookupOverridePrefersPlainName(t *testing.T) {
	known := types.KnownOverrides{
		"lib":     {Licenses: "MIT", LicensesOrigin: "UNKNOWN"},
		"lib_ISC": {Licenses: "Apache-2.0", LicensesOrigin: "ISC"},
	}

	override, found := LookupOverride(known, "lib", "ISC")

	assert.True(t, found)
	assert.Equal(t, types.LicenseMIT, override.Licenses)
}

func TestLookupOverrideFallsBackToLicenseSuffix(t *testing.T) {
	known := types.KnownOverrides{
		"lib_ISC": {Licenses: "Apache-2.0", LicensesOrigin: "ISC"},
	}

	override, found := LookupOverride(known, "lib", "ISC")
	assert.True(t, found)
	assert.Equal(t, types.LicenseApache20, override.Licenses)

	_, found = LookupOverride(known, "lib", "MIT")
	assert.False(t, found)
}

func TestApplyOverride(t *testing.T) {
	override := types.KnownOverride{Licenses: "MIT", LicensesOrigin: "UNKNOWN", Copyright: "Copyright Override"}

	license, copyright := ApplyOverride(override, true, "UNKNOWN", "Copyright Input")
	assert.Equal(t, types.LicenseMIT, license)
	assert.Equal(t, "Copyright Override", copyright)

	license, copyright = ApplyOverride(override, true, "ISC", "Copyright Input")
	assert.Equal(t, types.LicenseISC, license)
	assert.Equal(t, "Copyright Input", copyright)

	override.Copyright = ""
	license, copyright = ApplyOverride(override, true, "UNKNOWN", "Copyright Input")
	assert.Equal(t, types.LicenseMIT, license)
	assert.Equal(t, "Copyright Input", copyright)

	license, copyright = ApplyOverride(types.KnownOverride{}, false, "MIT", "Copyright Input")
	assert.Equal(t, types.LicenseMIT, license)
	assert.Equal(t, "Copyright Input", copyright)
}

func TestRenderTemplateReplacesFirstMarkerLiterally(t *testing.T) {
	got := RenderTemplate("a %%%COPYRIGHT%%% b %%%COPYRIGHT%%%", "$& (c)")
	assert.Equal(t, "a $& (c) b %%%COPYRIGHT%%%", got)
}
