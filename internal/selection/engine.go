// Package selection decides what a region selection resolves to.
//
// The policy is a three-way branch on the parsed selection: the sentinel
// returns the whole dataset, one explicit name returns a single record (or a
// proportion chart), several names return the matching rows in dataset order
// (or a stacked chart). The engine only reads its immutable dataset, so a
// single Engine serves any number of concurrent requests.
package selection

import (
	"errors"
	"fmt"

	"caseboard/internal/dataset"
	dErrors "caseboard/pkg/domain-errors"
	strs "caseboard/pkg/platform/strings"
)

// RecordSet is the result of ResolveRecords.
type RecordSet struct {
	Shape   Shape
	Records []dataset.Record
}

// Single returns the record of a single-name selection.
func (rs *RecordSet) Single() (dataset.Record, bool) {
	if rs.Shape != ShapeSingle || len(rs.Records) != 1 {
		return dataset.Record{}, false
	}
	return rs.Records[0], true
}

// Engine resolves selections against a dataset.
type Engine struct {
	data *dataset.Dataset
}

// New constructs an Engine over data.
func New(data *dataset.Dataset) (*Engine, error) {
	if data == nil {
		return nil, errors.New("dataset is required")
	}
	return &Engine{data: data}, nil
}

// DatasetSize reports the number of records served.
func (e *Engine) DatasetSize() int {
	return e.data.Len()
}

// ListRegions returns the sentinel followed by the distinct region names.
func (e *Engine) ListRegions() []string {
	regions := append([]string{AllRegions}, e.data.Regions()...)
	// A region literally named like the sentinel must not be listed twice.
	return strs.DedupeAndTrim(regions)
}

// ResolveRecords returns the rows selected by names.
func (e *Engine) ResolveRecords(names []string) (*RecordSet, error) {
	sel, err := Parse(names)
	if err != nil {
		return nil, err
	}

	switch sel.Shape() {
	case ShapeAll:
		return &RecordSet{Shape: ShapeAll, Records: e.data.Records()}, nil
	case ShapeSingle:
		rec, err := e.single(sel)
		if err != nil {
			return nil, err
		}
		return &RecordSet{Shape: ShapeSingle, Records: []dataset.Record{rec}}, nil
	default:
		return &RecordSet{Shape: ShapeMulti, Records: e.data.Filter(sel.set())}, nil
	}
}

// ResolveChart aggregates the rows selected by names for rendering.
func (e *Engine) ResolveChart(names []string) (*Chart, error) {
	sel, err := Parse(names)
	if err != nil {
		return nil, err
	}

	switch sel.Shape() {
	case ShapeAll:
		return BuildStacked(e.data.Records(), ScopeAll), nil
	case ShapeSingle:
		rec, err := e.single(sel)
		if err != nil {
			return nil, err
		}
		return BuildProportion(rec), nil
	default:
		return BuildStacked(e.data.Filter(sel.set()), ScopeSelected), nil
	}
}

func (e *Engine) single(sel Selection) (dataset.Record, error) {
	name := sel.Names()[0]
	rec, ok := e.data.First(name)
	if !ok {
		return dataset.Record{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("district %q not found", name))
	}
	return rec, nil
}
