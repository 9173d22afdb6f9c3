package selection

import (
	"slices"

	dErrors "caseboard/pkg/domain-errors"
	strs "caseboard/pkg/platform/strings"
)

// AllRegions is the sentinel name that selects every record.
const AllRegions = "All Districts"

var (
	// ErrInvalidSelection matches every rejected selection under errors.Is.
	ErrInvalidSelection = dErrors.New(dErrors.CodeInvalidSelection, "invalid selection")
	// ErrRegionNotFound is returned when a single named region has no record.
	ErrRegionNotFound = dErrors.New(dErrors.CodeNotFound, "region not found")
)

// Shape is the response shape a selection resolves to.
type Shape string

const (
	ShapeAll    Shape = "all"
	ShapeSingle Shape = "single"
	ShapeMulti  Shape = "multi"
)

// Selection is a validated, de-duplicated set of requested region names.
type Selection struct {
	names []string
	all   bool
}

// Parse trims and de-duplicates names and enforces the composition rules:
// the set must be non-empty and the sentinel must stand alone.
func Parse(names []string) (Selection, error) {
	cleaned := strs.DedupeAndTrim(names)
	if len(cleaned) == 0 {
		return Selection{}, dErrors.New(dErrors.CodeInvalidSelection, "at least one district must be selected")
	}
	if slices.Contains(cleaned, AllRegions) {
		if len(cleaned) > 1 {
			return Selection{}, dErrors.New(dErrors.CodeInvalidSelection, `"All Districts" cannot be combined with other districts`)
		}
		return Selection{all: true}, nil
	}
	return Selection{names: cleaned}, nil
}

// Shape reports which branch of the resolution policy applies.
func (s Selection) Shape() Shape {
	switch {
	case s.all:
		return ShapeAll
	case len(s.names) == 1:
		return ShapeSingle
	default:
		return ShapeMulti
	}
}

// Names returns the explicit names in request order; empty for the sentinel.
func (s Selection) Names() []string {
	return slices.Clone(s.names)
}

func (s Selection) set() map[string]struct{} {
	out := make(map[string]struct{}, len(s.names))
	for _, n := range s.names {
		out[n] = struct{}{}
	}
	return out
}
