// Package model provides the data structures and parser for the simple
// box-part model files used by the AR scene (for example the glove model).
// A model is a named list of axis-aligned box parts, each with an offset
// from the model origin, a size and a flat color.
package model

// Model is the root structure of a model file.
type Model struct {
	// Name identifies the model in logs, e.g. "gloves"
	Name string `yaml:"name"`

	// Parts is the list of boxes that make up the model
	Parts []Part `yaml:"parts"`
}

// Part is a single box of a model.
type Part struct {
	// Name is the part name, e.g. "left_palm"
	Name string `yaml:"name"`

	// Offset is the box center relative to the model origin, in model units
	Offset [3]float64 `yaml:"offset"`

	// Size is the box extent along x, y and z, in model units
	Size [3]float64 `yaml:"size"`

	// Color is a hex color, "#RRGGBB" or "#RRGGBBAA"
	Color string `yaml:"color"`
}
