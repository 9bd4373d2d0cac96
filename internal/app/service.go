package app

import (
	"licmerge/internal/adapters"
	"licmerge/internal/ports"
)

type Service struct {
	Dependencies ports.DependencySourcePort
	Known        ports.KnownSourcePort
	Templates    ports.TemplateSourcePort
	Output       ports.LicenseOutputPort
	Notice       ports.NoticePort
	OutputReader ports.OutputReaderPort
}

func NewService() (Service, error) {
	dependencies, err := adapters.NewDependencyFileAdapter()
	if err != nil {
		return Service{}, err
	}
	known, err := adapters.NewKnownFileAdapter()
	if err != nil {
		return Service{}, err
	}
	return Service{
		Dependencies: dependencies,
		Known:        known,
		Templates:    adapters.NewTemplateSourceAdapter(""),
		Output:       adapters.NewOutputFileAdapter(),
		Notice:       adapters.NewNoticeWriterAdapter(),
		OutputReader: adapters.NewOutputReaderAdapter(),
	}, nil
}
