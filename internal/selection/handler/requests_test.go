package handler

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "caseboard/pkg/domain-errors"
)

func TestSelectionRequestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr bool
	}{
		{name: "array", body: `["Pune","Nagpur"]`, want: []string{"Pune", "Nagpur"}},
		{name: "array with leading whitespace", body: "  \n[\"Pune\"]", want: []string{"Pune"}},
		{name: "object", body: `{"districts":["Thane"]}`, want: []string{"Thane"}},
		{name: "empty array", body: `[]`, want: []string{}},
		{name: "object without districts", body: `{}`},
		{name: "numbers", body: `[1]`, wantErr: true},
		{name: "string", body: `"Pune"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SelectionRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Districts)
			assert.NoError(t, req.Validate())
		})
	}
}

func TestSelectionRequestCheckLimits(t *testing.T) {
	limits := Limits{MaxSelection: 2, MaxNameLength: 6}

	t.Run("within limits", func(t *testing.T) {
		req := SelectionRequest{Districts: []string{"Pune", "Thane"}}
		assert.NoError(t, req.CheckLimits(limits))
	})

	t.Run("too many names", func(t *testing.T) {
		req := SelectionRequest{Districts: []string{"A", "B", "C"}}
		err := req.CheckLimits(limits)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Contains(t, err.Error(), "districts must be at most 2")
	})

	t.Run("name too long", func(t *testing.T) {
		req := SelectionRequest{Districts: []string{"Pune", "Ahmednagar"}}
		err := req.CheckLimits(limits)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("zero limits are not enforced", func(t *testing.T) {
		req := SelectionRequest{Districts: []string{"A", "B", "C", "Ahmednagar"}}
		assert.NoError(t, req.CheckLimits(Limits{}))
	})
}

func TestValidateNilRequest(t *testing.T) {
	var req *SelectionRequest
	err := req.Validate()
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
