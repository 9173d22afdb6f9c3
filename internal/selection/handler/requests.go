package handler

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	dErrors "caseboard/pkg/domain-errors"
	"caseboard/pkg/platform/validation"
)

// SelectionRequest is the body of the POST /district routes.
// It accepts a bare JSON array of names or an object {"districts": [...]}.
type SelectionRequest struct {
	Districts []string `json:"districts"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SelectionRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &r.Districts)
	}
	type object SelectionRequest
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Districts = obj.Districts
	return nil
}

// Validate implements httputil.Validatable. Composition rules (empty
// selections, the sentinel) belong to the selection engine.
func (r *SelectionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// Limits bounds the size of a selection request.
type Limits struct {
	MaxSelection  int
	MaxNameLength int
}

// CheckLimits rejects selections with too many names or overlong names.
// Zero limits are not enforced.
func (r *SelectionRequest) CheckLimits(l Limits) error {
	if l.MaxSelection > 0 {
		if err := validation.Var("districts", r.Districts, fmt.Sprintf("max=%d", l.MaxSelection)); err != nil {
			return err
		}
	}
	if l.MaxNameLength > 0 {
		if err := validation.Var("districts", r.Districts, fmt.Sprintf("dive,max=%d", l.MaxNameLength)); err != nil {
			return err
		}
	}
	return nil
}
