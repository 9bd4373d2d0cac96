package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"licmerge/internal/ports"
	"licmerge/internal/types"
)

type OutputReaderAdapter struct{}

func NewOutputReaderAdapter() OutputReaderAdapter {
	return OutputReaderAdapter{}
}

// ReadLicenses reads a file written by WriteLicenses in either shape.
// Entries read from list output have an empty Key.
func (a OutputReaderAdapter) ReadLicenses(path string) ([]types.OutputEntry, types.OutputShape, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("license output %s not found", path)).
			WithCause(err)
	}
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []types.OutputRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, "", invalidOutputError(path, err)
		}
		entries := make([]types.OutputEntry, 0, len(records))
		for _, record := range records {
			entries = append(entries, types.OutputEntry{Record: record})
		}
		return entries, types.OutputShapeList, nil
	}
	entries, err := decodeOrderedOutput(trimmed)
	if err != nil {
		return nil, "", invalidOutputError(path, err)
	}
	return entries, types.OutputShapeObject, nil
}

func decodeOrderedOutput(data []byte) ([]types.OutputEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object or array")
	}
	var entries []types.OutputEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		var record types.OutputRecord
		if err := dec.Decode(&record); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		entries = append(entries, types.OutputEntry{Key: key, Record: record})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func invalidOutputError(path string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("license output %s is invalid", path)).
		WithCause(err)
}

var _ ports.OutputReaderPort = OutputReaderAdapter{}
