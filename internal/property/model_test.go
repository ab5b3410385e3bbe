package property

import (
	"encoding/json"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want bool
	}{
		{"residential", TypeResidential, true},
		{"land", TypeLand, true},
		{"lowercase", Type("residential"), false},
		{"empty", Type(""), false},
		{"unknown", Type("CASTLE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.IsValid(); got != tt.want {
				t.Errorf("Type(%q).IsValid() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		in   Status
		want string
	}{
		{StatusActive, "Active"},
		{StatusListedForSale, "Listed for sale"},
		{StatusListedForRent, "Listed for rent"},
		{Status("DEMOLISHED"), "DEMOLISHED"},
	}

	for _, tt := range tests {
		if got := tt.in.Label(); got != tt.want {
			t.Errorf("%q.Label() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPropertyJSONKeys(t *testing.T) {
	data, err := json.Marshal(&Property{ID: 1, Name: "Property 1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"id", "name", "address", "type", "status", "size", "yearBuilt", "value"}
	if len(m) != len(want) {
		t.Errorf("got %d keys, want %d: %v", len(m), len(want), m)
	}
	for _, k := range want {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
}
