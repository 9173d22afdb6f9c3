package dataset

// Status is one of the case-count categories carried by every Record.
type Status string

const (
	StatusActive    Status = "active"
	StatusDeceased  Status = "deceased"
	StatusRecovered Status = "recovered"
)

// Statuses lists the categories in their canonical order. Charts stack and
// slice in this order.
var Statuses = []Status{StatusActive, StatusDeceased, StatusRecovered}

// Label returns the display name used in chart legends and spreadsheet headers.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusDeceased:
		return "Deceased"
	case StatusRecovered:
		return "Recovered"
	default:
		return string(s)
	}
}

// Record is one row of the dataset. Region is the grouping key and may repeat.
type Record struct {
	Region    string `json:"region"`
	Active    int64  `json:"active"`
	Deceased  int64  `json:"deceased"`
	Recovered int64  `json:"recovered"`
}

// Count returns the value of the given status.
func (r Record) Count(s Status) int64 {
	switch s {
	case StatusActive:
		return r.Active
	case StatusDeceased:
		return r.Deceased
	case StatusRecovered:
		return r.Recovered
	default:
		return 0
	}
}

// Total is the sum of all status counts.
func (r Record) Total() int64 {
	return r.Active + r.Deceased + r.Recovered
}
