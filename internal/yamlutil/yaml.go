// Package yamlutil decodes and encodes the YAML found in site config files
// and front matter blocks. Callers never import the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a single document. Front matter and config files are
// small; anything past 1MB is almost certainly a mistake.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// MapSlice is an ordered mapping; key order survives a decode/encode cycle.
type MapSlice = yaml.MapSlice

// MapItem is one key/value pair of a MapSlice.
type MapItem = yaml.MapItem

// decode checks the input bounds, then runs the decoder with opts.
func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Unmarshal decodes data into v, ignoring keys v has no field for.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict is Unmarshal but fails on unknown keys. Config files use
// it so a misspelled setting is reported instead of silently dropped.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// UnmarshalOrdered decodes a top-level mapping keeping key order, nested
// mappings included, so Marshal can write it back in the same order.
func UnmarshalOrdered(data []byte) (MapSlice, error) {
	var ms MapSlice
	if err := decode(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return ms, nil
}

// Marshal encodes v. A MapSlice keeps its key order.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
