package ports

import "licmerge/internal/types"

// DependencySourcePort reads the scanner inventory. Entries are returned
// in the order their keys appear in the source.
type DependencySourcePort interface {
	LoadDependencies(path string) ([]types.DependencyEntry, error)
}

// KnownSourcePort reads the known-overrides table. A missing file yields
// an empty table, not an error.
type KnownSourcePort interface {
	LoadKnown(path string) (types.KnownOverrides, error)
}
