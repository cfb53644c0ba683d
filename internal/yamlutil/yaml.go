// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData       = errors.New("yamlutil: nil or empty data")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// Decode parses YAML into its untyped representation: mappings become
// map[string]any, sequences []any. Scalar timestamps may decode to
// time.Time depending on how the document writes them; callers must
// handle both shapes.
func Decode(data []byte) (any, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return v, nil
}

// DecodeString is Decode for string input, the common case when content
// arrives from a text fetch.
func DecodeString(text string) (any, error) {
	return Decode([]byte(text))
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data); err != nil {
		return err
	}
	if v == nil {
		return errors.New("yamlutil: nil destination pointer")
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}
