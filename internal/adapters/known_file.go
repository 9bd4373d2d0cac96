package adapters

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"licmerge/internal/assets"
	"licmerge/internal/ports"
	"licmerge/internal/shared"
	"licmerge/internal/types"
)

// KnownFileAdapter loads the known-overrides table from JSON, or from YAML
// when the path ends in .yaml/.yml. The table is optional: a missing,
// unreadable or malformed file degrades to an empty table with a warning.
// A single malformed entry is dropped on its own.
type KnownFileAdapter struct {
	validator SchemaValidator
}

func NewKnownFileAdapter() (KnownFileAdapter, error) {
	validator, err := NewSchemaValidator("known override", assets.KnownSchema)
	if err != nil {
		return KnownFileAdapter{}, err
	}
	return KnownFileAdapter{validator: validator}, nil
}

func (a KnownFileAdapter) LoadKnown(path string) (types.KnownOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("known overrides file not found, continuing without overrides")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("known overrides file unreadable, continuing without overrides")
		}
		return types.KnownOverrides{}, nil
	}
	known, err := a.parse(path, data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("known overrides file ignored")
		return types.KnownOverrides{}, nil
	}
	log.Debug().
		Str("path", path).
		Int("entries", len(known)).
		Msg("known overrides loaded")
	return known, nil
}

func (a KnownFileAdapter) parse(path string, data []byte) (types.KnownOverrides, error) {
	if shared.IsYAMLPath(path) {
		return a.parseYAML(path, data)
	}
	return a.parseJSON(path, data)
}

func (a KnownFileAdapter) parseJSON(path string, data []byte) (types.KnownOverrides, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse known overrides json").
			WithCause(err)
	}
	known := types.KnownOverrides{}
	for key, raw := range entries {
		if err := a.validator.ValidateJSON(raw); err != nil {
			skipKnownEntry(path, key, err)
			continue
		}
		var override types.KnownOverride
		if err := json.Unmarshal(raw, &override); err != nil {
			skipKnownEntry(path, key, err)
			continue
		}
		known[key] = override
	}
	return known, nil
}

func (a KnownFileAdapter) parseYAML(path string, data []byte) (types.KnownOverrides, error) {
	var entries map[string]yaml.Node
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse known overrides yaml").
			WithCause(err)
	}
	known := types.KnownOverrides{}
	for key, node := range entries {
		var doc interface{}
		if err := node.Decode(&doc); err != nil {
			skipKnownEntry(path, key, err)
			continue
		}
		if err := a.validator.ValidateValue(doc); err != nil {
			skipKnownEntry(path, key, err)
			continue
		}
		var override types.KnownOverride
		if err := node.Decode(&override); err != nil {
			skipKnownEntry(path, key, err)
			continue
		}
		known[key] = override
	}
	return known, nil
}

func skipKnownEntry(path string, key string, err error) {
	log.Warn().
		Err(err).
		Str("path", path).
		Str("key", key).
		Msg("known override ignored")
}

var _ ports.KnownSourcePort = KnownFileAdapter{}
