// Package dataset holds the in-memory table of regional case counts.
//
// A Dataset is built once at startup and never mutated afterwards, so it can be
// shared by any number of concurrent readers without locking. Accessors return
// copies; callers cannot reach the backing slices.
package dataset

import (
	"fmt"
	"strings"
)

// Dataset is an immutable, ordered sequence of Records.
type Dataset struct {
	records []Record
	regions []string
	index   map[string]int // region -> position of its first record
}

// New validates records and returns a Dataset owning a private copy of them.
func New(records []Record) (*Dataset, error) {
	d := &Dataset{
		records: make([]Record, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		rec.Region = strings.TrimSpace(rec.Region)
		if rec.Region == "" {
			return nil, fmt.Errorf("record %d: region is required", i)
		}
		if rec.Active < 0 || rec.Deceased < 0 || rec.Recovered < 0 {
			return nil, fmt.Errorf("record %d (%s): counts must be non-negative", i, rec.Region)
		}
		d.records[i] = rec
		if _, seen := d.index[rec.Region]; !seen {
			d.index[rec.Region] = i
			d.regions = append(d.regions, rec.Region)
		}
	}
	return d, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns every record in original order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Regions returns the distinct region names in order of first appearance.
func (d *Dataset) Regions() []string {
	out := make([]string, len(d.regions))
	copy(out, d.regions)
	return out
}

// First returns the first record for region.
func (d *Dataset) First(region string) (Record, bool) {
	i, ok := d.index[region]
	if !ok {
		return Record{}, false
	}
	return d.records[i], true
}

// Filter returns every record whose region is in regions, in original order.
func (d *Dataset) Filter(regions map[string]struct{}) []Record {
	out := make([]Record, 0, len(regions))
	for _, rec := range d.records {
		if _, ok := regions[rec.Region]; ok {
			out = append(out, rec)
		}
	}
	return out
}
