package handler

import "caseboard/internal/dataset"

// RecordResponse is one district row in POST /district responses.
type RecordResponse struct {
	District  string `json:"district"`
	Active    int64  `json:"active"`
	Deceased  int64  `json:"deceased"`
	Recovered int64  `json:"recovered"`
}

// FromRecord converts a dataset record to its HTTP representation.
func FromRecord(rec dataset.Record) RecordResponse {
	return RecordResponse{
		District:  rec.Region,
		Active:    rec.Active,
		Deceased:  rec.Deceased,
		Recovered: rec.Recovered,
	}
}

// FromRecords converts records, always returning a non-nil slice.
func FromRecords(records []dataset.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRecord(rec))
	}
	return out
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}
