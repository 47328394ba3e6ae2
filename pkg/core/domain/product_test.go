package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestProductJSONTimestamps(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := Product{ID: "p1", Title: "Mic", AffiliateURL: "https://x", CreatedAt: created, UpdatedAt: created}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"createdAt":"2024-05-01T10:00:00Z"`, `"updatedAt":"2024-05-01T10:00:00Z"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("json missing %s: %s", want, raw)
		}
	}
	if strings.Contains(string(raw), `"price"`) {
		t.Errorf("nil price should be omitted: %s", raw)
	}
}

func TestProductUnmarshalDefaults(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		active bool
	}{
		{"missing isActive", `{"_id":"p1","title":"Mic"}`, true},
		{"explicit false", `{"_id":"p1","title":"Mic","isActive":false}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatal(err)
			}
			if p.IsActive != tt.active {
				t.Errorf("IsActive = %v, want %v", p.IsActive, tt.active)
			}

			var in ProductInput
			if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
				t.Fatal(err)
			}
			if in.IsActive != tt.active {
				t.Errorf("input IsActive = %v, want %v", in.IsActive, tt.active)
			}
		})
	}
}
