package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanInventory = `{
  "zeta@1.0.0": {"name": "zeta", "version": "1.0.0", "licenses": "MIT", "licenseFile": "/nm/zeta/README.md", "copyright": "Copyright (c) Zeta <z@example.com>"},
  "my-app@0.0.1": {"name": "my-app", "version": "0.0.1", "licenses": "UNLICENSED", "licenseFile": "", "private": true},
  "alpha@2.0.0": {"name": "alpha", "version": "2.0.0", "licenses": "ISC", "licenseFile": "/nm/alpha/LICENSE", "licenseText": "ISC text of alpha"}
}`

const brokenInventory = `{
  "zeta@1.0.0": {"name": "zeta", "version": "1.0.0", "licenses": "MIT", "licenseFile": "/nm/zeta/README.md", "copyright": "Copyright Zeta"},
  "gpl@3.0.0": {"name": "gpl", "version": "3.0.0", "licenses": "GPL-3.0", "licenseFile": "/nm/gpl/README.md", "copyright": "Copyright GPL"},
  "alpha@2.0.0": {"name": "alpha", "version": "2.0.0", "licenses": "BSD-3-Clause", "licenseFile": "/nm/alpha/README.md", "copyright": "Copyright Alpha"}
}`

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestService(t *testing.T) Service {
	t.Helper()
	service, err := NewService()
	require.NoError(t, err)
	return service
}

func TestGenerateWritesKeyedObjectInInputOrder(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", cleanInventory)
	output := filepath.Join(dir, "out", "licenses_out.json")

	result, err := newTestService(t).Generate(t.Context(), GenerateRequest{
		InputPath:  input,
		OutputPath: output,
		KnownPath:  filepath.Join(dir, "known.json"),
	})
	require.NoError(t, err)
	assert.True(t, result.Written)
	if diff := cmp.Diff(Summary{Total: 3, Accepted: 2, Private: 1}, result.Summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	zeta := strings.Index(string(data), `"zeta@1.0.0"`)
	alpha := strings.Index(string(data), `"alpha@2.0.0"`)
	require.GreaterOrEqual(t, zeta, 0)
	assert.Less(t, zeta, alpha)
	assert.NotContains(t, string(data), "my-app")
	assert.Contains(t, string(data), "<z@example.com>")
	assert.NotContains(t, string(data), `"index"`)

	var decoded map[string]struct {
		Name                 string `json:"name"`
		InputDataLicenseType string `json:"inputDataLicenseType"`
		Version              string `json:"version"`
		LicenseText          string `json:"licenseText"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ISC text of alpha", decoded["alpha@2.0.0"].LicenseText)
	assert.Equal(t, "ISC", decoded["alpha@2.0.0"].InputDataLicenseType)
	assert.Contains(t, decoded["zeta@1.0.0"].LicenseText, "Copyright (c) Zeta <z@example.com>")
	assert.Contains(t, decoded["zeta@1.0.0"].LicenseText, "Permission is hereby granted")
}

func TestGenerateListWithIndex(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", cleanInventory)
	output := filepath.Join(dir, "licenses_out.json")

	_, err := newTestService(t).Generate(t.Context(), GenerateRequest{
		InputPath:  input,
		OutputPath: output,
		List:       true,
		Index:      true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var records []struct {
		Index *int   `json:"index"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "zeta", records[0].Name)
	assert.Equal(t, "alpha", records[1].Name)
	for i, record := range records {
		require.NotNil(t, record.Index)
		assert.Equal(t, i, *record.Index)
	}
}

func TestGenerateForceIsNoopWithoutIssues(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", cleanInventory)
	plain := filepath.Join(dir, "plain.json")
	forced := filepath.Join(dir, "forced.json")
	service := newTestService(t)

	_, err := service.Generate(t.Context(), GenerateRequest{InputPath: input, OutputPath: plain})
	require.NoError(t, err)
	_, err = service.Generate(t.Context(), GenerateRequest{InputPath: input, OutputPath: forced, Force: true})
	require.NoError(t, err)

	plainData, err := os.ReadFile(plain)
	require.NoError(t, err)
	forcedData, err := os.ReadFile(forced)
	require.NoError(t, err)
	if diff := cmp.Diff(string(plainData), string(forcedData)); diff != "" {
		t.Fatalf("forced output differs (-plain +forced):\n%s", diff)
	}
}

func TestGenerateBlocksOutputOnIssues(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", brokenInventory)
	output := filepath.Join(dir, "licenses_out.json")

	result, err := newTestService(t).Generate(t.Context(), GenerateRequest{InputPath: input, OutputPath: output})

	require.Error(t, err)
	assert.True(t, errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition)
	assert.False(t, result.Written)
	assert.Equal(t, 1, result.Summary.Errors)
	assert.NoFileExists(t, output)
}

func TestGenerateForceWritesOnlyCleanRecords(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", brokenInventory)
	output := filepath.Join(dir, "licenses_out.json")

	result, err := newTestService(t).Generate(t.Context(), GenerateRequest{
		InputPath:  input,
		OutputPath: output,
		Force:      true,
		List:       true,
		Index:      true,
	})
	require.NoError(t, err)
	assert.True(t, result.Written)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "gpl@3.0.0", result.Issues[0].Key)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var records []struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "zeta", records[0].Name)
	assert.Equal(t, 0, records[0].Index)
	assert.Equal(t, "alpha", records[1].Name)
	assert.Equal(t, 1, records[1].Index)
}

func TestGenerateAppliesKnownOverrides(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", brokenInventory)
	known := writeFile(t, dir, "known.yaml", `
gpl:
  licenses: KNOWN_LICENSE
  licensesOrigin: GPL-3.0
  licenseText: Commercial license granted to ACME.
`)
	output := filepath.Join(dir, "licenses_out.json")

	result, err := newTestService(t).Generate(t.Context(), GenerateRequest{
		InputPath:  input,
		OutputPath: output,
		KnownPath:  known,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.Accepted)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Commercial license granted to ACME.")
}

func TestGenerateWritesNotice(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", cleanInventory)
	notice := filepath.Join(dir, "NOTICE.txt")

	result, err := newTestService(t).Generate(t.Context(), GenerateRequest{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "licenses_out.json"),
		NoticePath: notice,
	})
	require.NoError(t, err)
	assert.Equal(t, notice, result.NoticePath)

	data, err := os.ReadFile(notice)
	require.NoError(t, err)
	assert.Contains(t, string(data), "zeta 1.0.0 (MIT)")
	assert.Contains(t, string(data), "ISC text of alpha")
}

func TestGenerateFatalErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", cleanInventory)
	invalid := writeFile(t, dir, "invalid.json", `{"pkg": "not an object"}`)
	malformed := writeFile(t, dir, "malformed.json", `{"pkg": {`)

	tests := []struct {
		name string
		req  GenerateRequest
		want func(error) bool
	}{
		{
			name: "missing input",
			req:  GenerateRequest{InputPath: filepath.Join(dir, "nope.json"), OutputPath: filepath.Join(dir, "a.json")},
			want: isNotFound,
		},
		{
			name: "schema violation",
			req:  GenerateRequest{InputPath: invalid, OutputPath: filepath.Join(dir, "b.json")},
			want: isInvalidArgument,
		},
		{
			name: "malformed json",
			req:  GenerateRequest{InputPath: malformed, OutputPath: filepath.Join(dir, "c.json")},
			want: isInvalidArgument,
		},
		{
			name: "missing templates directory",
			req:  GenerateRequest{InputPath: input, OutputPath: filepath.Join(dir, "d.json"), TemplatesDir: filepath.Join(dir, "lictexts")},
			want: isNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(t).Generate(t.Context(), tt.req)
			require.Error(t, err)
			assert.True(t, tt.want(err), "unexpected error: %v", err)
			assert.NoFileExists(t, tt.req.OutputPath)
		})
	}
}

func TestCheckReportsIssuesWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "licenses.json", brokenInventory)

	result, err := newTestService(t).Check(t.Context(), CheckRequest{InputPath: input})

	require.Error(t, err)
	assert.True(t, errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition)
	assert.Equal(t, 2, result.Summary.Accepted)
	assert.Equal(t, 1, result.Summary.Errors)
}

func isNotFound(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeNotFound
}

func isInvalidArgument(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument
}
