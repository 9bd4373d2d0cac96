package ports

import "licmerge/internal/types"

type LicenseOutputPort interface {
	WriteLicenses(path string, entries []types.OutputEntry, shape types.OutputShape) error
}

type NoticePort interface {
	WriteNotice(path string, entries []types.OutputEntry) error
}

type OutputReaderPort interface {
	ReadLicenses(path string) ([]types.OutputEntry, types.OutputShape, error)
}
