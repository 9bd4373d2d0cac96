package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DependencyRecord is one entry of the scanner-generated inventory.
type DependencyRecord struct {
	Name        string       `json:"name"`
	Version     string       `json:"version"`
	Licenses    LicenseField `json:"licenses"`
	LicenseFile string       `json:"licenseFile"`
	LicenseText string       `json:"licenseText"`
	Copyright   string       `json:"copyright,omitempty"`
	Private     bool         `json:"private,omitempty"`
}

// DependencyEntry pairs a record with the opaque key it was stored under.
type DependencyEntry struct {
	Key    string
	Record DependencyRecord
}

// LicenseField holds the declared license. Scanners emit either a single
// identifier or a list of them; lists are kept comma-joined so they never
// match a supported identifier.
type LicenseField string

func (f *LicenseField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []string
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("licenses: %w", err)
		}
		*f = LicenseField(strings.Join(values, ","))
		return nil
	}
	var value string
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return fmt.Errorf("licenses: %w", err)
	}
	*f = LicenseField(value)
	return nil
}

func (f LicenseField) ID() LicenseID {
	return LicenseID(f)
}

// KnownOverride is a curated correction for a dependency whose detected
// license metadata is incomplete or wrong.
type KnownOverride struct {
	Licenses       LicenseID `json:"licenses" yaml:"licenses"`
	LicensesOrigin LicenseID `json:"licensesOrigin" yaml:"licensesOrigin"`
	Copyright      string    `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	LicenseText    string    `json:"licenseText,omitempty" yaml:"licenseText,omitempty"`
	Ignore         bool      `json:"ignore,omitempty" yaml:"ignore,omitempty"`
}

// KnownOverrides is keyed by dependency name or by name_licenseType.
type KnownOverrides map[string]KnownOverride
