package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"licmerge/internal/ports"
	"licmerge/internal/types"
)

type OutputFileAdapter struct{}

func NewOutputFileAdapter() OutputFileAdapter {
	return OutputFileAdapter{}
}

// WriteLicenses writes compact JSON without HTML escaping. Object output
// keeps the entries' order.
func (a OutputFileAdapter) WriteLicenses(path string, entries []types.OutputEntry, shape types.OutputShape) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	switch shape {
	case types.OutputShapeList:
		data, err = encodeList(entries)
	case types.OutputShapeObject, "":
		data, err = encodeObject(entries)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output shape: %s", shape))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode license output").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write license output").
			WithCause(err)
	}
	return nil
}

func encodeList(entries []types.OutputEntry) ([]byte, error) {
	records := make([]types.OutputRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entry.Record)
	}
	return marshalCompact(records)
}

func encodeObject(entries []types.OutputEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalCompact(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalCompact(entry.Record)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalCompact(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func ensureParentDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return nil
}

var _ ports.LicenseOutputPort = OutputFileAdapter{}
