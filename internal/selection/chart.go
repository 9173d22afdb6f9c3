package selection

import "caseboard/internal/dataset"

// ChartKind identifies which aggregation a Chart carries.
type ChartKind string

const (
	ChartStacked    ChartKind = "stacked"
	ChartProportion ChartKind = "proportion"
)

// Scope records how the charted records were selected. Renderers use it for titles.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSelected Scope = "selected"
	ScopeSingle   Scope = "single"
)

// Chart is a render-agnostic aggregation. Exactly one of Stacked and
// Proportion is set, according to Kind.
type Chart struct {
	Kind       ChartKind
	Scope      Scope
	Stacked    *StackedSeries
	Proportion *Proportion
}

// StackedSeries holds one series per status and one point per charted record.
// Regions are the category labels in record order and may repeat.
type StackedSeries struct {
	Regions []string
	Series  []Series
}

// Series is the stack layer for a single status.
type Series struct {
	Status dataset.Status
	Points []StackPoint
}

// StackPoint is a bar segment: Baseline is the sum of the lower layers'
// values for the same record.
type StackPoint struct {
	Region   string
	Value    int64
	Baseline int64
}

// Top is where the segment ends.
func (p StackPoint) Top() int64 {
	return p.Baseline + p.Value
}

// Empty reports whether there is nothing to draw.
func (s *StackedSeries) Empty() bool {
	return len(s.Regions) == 0
}

// Proportion is the parts-of-a-whole view of a single record.
type Proportion struct {
	Region string
	Parts  []Part
}

// Part is one status slice.
type Part struct {
	Status dataset.Status
	Value  int64
}

// Total is the sum of all parts.
func (p *Proportion) Total() int64 {
	var total int64
	for _, part := range p.Parts {
		total += part.Value
	}
	return total
}

// Percentages returns each part's share of the total, in part order.
// A zero total yields zero for every part.
func (p *Proportion) Percentages() []float64 {
	out := make([]float64, len(p.Parts))
	total := p.Total()
	if total == 0 {
		return out
	}
	for i, part := range p.Parts {
		out[i] = float64(part.Value) * 100 / float64(total)
	}
	return out
}

// BuildStacked stacks the statuses of each record in canonical status order.
// Pure function: no I/O, no shared state.
func BuildStacked(records []dataset.Record, scope Scope) *Chart {
	stacked := &StackedSeries{
		Regions: make([]string, len(records)),
		Series:  make([]Series, len(dataset.Statuses)),
	}
	for i, status := range dataset.Statuses {
		stacked.Series[i] = Series{Status: status, Points: make([]StackPoint, len(records))}
	}

	for r, rec := range records {
		stacked.Regions[r] = rec.Region
		var baseline int64
		for i, status := range dataset.Statuses {
			v := rec.Count(status)
			stacked.Series[i].Points[r] = StackPoint{Region: rec.Region, Value: v, Baseline: baseline}
			baseline += v
		}
	}

	return &Chart{Kind: ChartStacked, Scope: scope, Stacked: stacked}
}

// BuildProportion slices a single record by status.
func BuildProportion(rec dataset.Record) *Chart {
	prop := &Proportion{Region: rec.Region, Parts: make([]Part, len(dataset.Statuses))}
	for i, status := range dataset.Statuses {
		prop.Parts[i] = Part{Status: status, Value: rec.Count(status)}
	}
	return &Chart{Kind: ChartProportion, Scope: ScopeSingle, Proportion: prop}
}
