package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"licmerge/internal/assets"
	"licmerge/internal/ports"
	"licmerge/internal/types"
)

type DependencyFileAdapter struct {
	validator SchemaValidator
}

func NewDependencyFileAdapter() (DependencyFileAdapter, error) {
	validator, err := NewSchemaValidator("dependency file", assets.DependenciesSchema)
	if err != nil {
		return DependencyFileAdapter{}, err
	}
	return DependencyFileAdapter{validator: validator}, nil
}

func (a DependencyFileAdapter) LoadDependencies(path string) ([]types.DependencyEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("dependency file %s is missing; place it at ./licenses.json or pass -i", path)).
			WithCause(err)
	}
	if err := a.validator.ValidateJSON(data); err != nil {
		return nil, err
	}
	entries, err := decodeOrderedEntries(data)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("dependency file %s is invalid", path)).
			WithCause(err)
	}
	log.Debug().
		Str("path", path).
		Int("entries", len(entries)).
		Msg("dependency file loaded")
	return entries, nil
}

// decodeOrderedEntries walks the top-level object token by token so the
// file's key order survives. A repeated key keeps its first position and
// takes the last value, like JSON.parse.
func decodeOrderedEntries(data []byte) ([]types.DependencyEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object at the top level")
	}
	var entries []types.DependencyEntry
	positions := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		var record types.DependencyRecord
		if err := dec.Decode(&record); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		if idx, seen := positions[key]; seen {
			entries[idx].Record = record
			continue
		}
		positions[key] = len(entries)
		entries = append(entries, types.DependencyEntry{Key: key, Record: record})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the top-level object")
	}
	return entries, nil
}

var _ ports.DependencySourcePort = DependencyFileAdapter{}
