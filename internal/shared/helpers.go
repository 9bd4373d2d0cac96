// Package shared provides common utility functions used across multiple
// packages in the licmerge codebase.
package shared

import (
	"strings"
)

// ContainsASCIIFold reports whether substr is within s when only ASCII
// letters are compared case-insensitively. Non-ASCII runes such as 'ſ'
// or the Kelvin sign never match their ASCII look-alikes.
func ContainsASCIIFold(s string, substr string) bool {
	return strings.Contains(asciiUpper(s), asciiUpper(substr))
}

func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// IsLicenseFileName reports whether a scanner's licenseFile value points at
// an actual license file. Both spellings are accepted.
func IsLicenseFileName(value string) bool {
	return ContainsASCIIFold(value, "LICENSE") || ContainsASCIIFold(value, "LICENCE")
}

// IsYAMLPath reports whether path has a YAML file extension.
func IsYAMLPath(path string) bool {
	lower := strings.ToLower(strings.TrimSpace(path))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
