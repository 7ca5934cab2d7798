package model

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidModel is returned when a model file parses but does not describe
// a usable model.
var ErrInvalidModel = errors.New("invalid model")

// ParseModelFile reads and parses a model file from disk.
//
// Parameters:
//   - path: Path to the model file, e.g., "data/models/gloves.yaml"
//
// Returns:
//   - *Model: The parsed model
//   - error: Read, parse or validation error
func ParseModelFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file '%s': %w", path, err)
	}

	m, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model file '%s': %w", path, err)
	}
	return m, nil
}

// ParseModel parses model YAML and validates it.
//
// A valid model has a name, at least one part, strictly positive part sizes
// and parseable colors.
func ParseModel(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func validate(m *Model) error {
	if m.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidModel)
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("%w: model '%s' has no parts", ErrInvalidModel, m.Name)
	}

	for i, p := range m.Parts {
		for axis, s := range p.Size {
			if s <= 0 {
				return fmt.Errorf("%w: part %d (%s) has non-positive size on axis %d", ErrInvalidModel, i, p.Name, axis)
			}
		}
		if _, err := ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: part %d (%s): %v", ErrInvalidModel, i, p.Name, err)
		}
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into an RGBA color.
// Colors without an alpha component are fully opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
