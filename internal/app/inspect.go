package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"licmerge/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	entries, shape, err := s.OutputReader.ReadLicenses(outputPath)
	if err != nil {
		return InspectResult{}, err
	}

	counts := summarizeLicenses(entries)
	var summaries []InspectLicenseSummary
	for _, license := range sortedLicenses(counts) {
		summaries = append(summaries, InspectLicenseSummary{License: license, Count: counts[license]})
	}
	return InspectResult{
		Shape:    shape,
		Count:    len(entries),
		Indexed:  len(entries) > 0 && entries[0].Record.Index != nil,
		Licenses: summaries,
	}, nil
}

func summarizeLicenses(entries []types.OutputEntry) map[types.LicenseID]int {
	counts := map[types.LicenseID]int{}
	for _, entry := range entries {
		counts[entry.Record.InputDataLicenseType]++
	}
	return counts
}

// sortedLicenses orders identifiers for display: case-insensitive
// collation first, byte order to break ties.
func sortedLicenses(counts map[types.LicenseID]int) []types.LicenseID {
	keys := make([]types.LicenseID, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.Slice(keys, func(i, j int) bool {
		if c := collator.CompareString(string(keys[i]), string(keys[j])); c != 0 {
			return c < 0
		}
		return keys[i] < keys[j]
	})
	return keys
}
