package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"licmerge/internal/types"
)

func TestInspectApp(t *testing.T) {
	dir := t.TempDir()
	output := writeFile(t, dir, "licenses_out.json",
		`[{"index":0,"name":"a","inputDataLicenseType":"MIT","version":"1","licenseText":"x"},`+
			`{"index":1,"name":"b","inputDataLicenseType":"ISC","version":"1","licenseText":"y"},`+
			`{"index":2,"name":"c","inputDataLicenseType":"MIT","version":"1","licenseText":"z"}]`)

	result, err := newTestService(t).Inspect(InspectRequest{OutputPath: output})
	require.NoError(t, err)

	want := InspectResult{
		Shape:   types.OutputShapeList,
		Count:   3,
		Indexed: true,
		Licenses: []InspectLicenseSummary{
			{License: "ISC", Count: 1},
			{License: "MIT", Count: 2},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected inspect result (-want +got):\n%s", diff)
	}
}

func TestInspectMissingOutput(t *testing.T) {
	_, err := newTestService(t).Inspect(InspectRequest{OutputPath: filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

func TestInspectOrdersLicensesIgnoringCase(t *testing.T) {
	dir := t.TempDir()
	output := writeFile(t, dir, "licenses_out.json",
		`{"a@1":{"name":"a","inputDataLicenseType":"MIT","version":"1","licenseText":"x"},`+
			`"b@1":{"name":"b","inputDataLicenseType":"apache-2.0","version":"1","licenseText":"y"},`+
			`"c@1":{"name":"c","inputDataLicenseType":"BSD-3-Clause","version":"1","licenseText":"z"}}`)

	result, err := newTestService(t).Inspect(InspectRequest{OutputPath: output})
	require.NoError(t, err)

	want := []InspectLicenseSummary{
		{License: "apache-2.0", Count: 1},
		{License: "BSD-3-Clause", Count: 1},
		{License: "MIT", Count: 1},
	}
	if diff := cmp.Diff(want, result.Licenses); diff != "" {
		t.Fatalf("unexpected license order (-want +got):\n%s", diff)
	}
	require.False(t, result.Indexed)
}
