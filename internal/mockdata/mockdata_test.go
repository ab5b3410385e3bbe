package mockdata

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/evcraddock/rems/internal/expense"
	"github.com/evcraddock/rems/internal/payment"
	"github.com/evcraddock/rems/internal/property"
	"github.com/evcraddock/rems/internal/random"
	"github.com/evcraddock/rems/internal/task"
	"github.com/evcraddock/rems/internal/tenant"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Type
		wantErr bool
	}{
		{"properties", "properties", Properties, false},
		{"tenants", "tenants", Tenants, false},
		{"payments", "payments", Payments, false},
		{"expenses", "expenses", Expenses, false},
		{"tasks", "tasks", Tasks, false},
		{"empty", "", "", true},
		{"unknown", "bogus", "", true},
		{"uppercase", "PROPERTIES", "", true},
		{"singular", "property", "", true},
		{"padded", " tasks", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnrecognizedType) {
					t.Fatalf("err = %v, want ErrUnrecognizedType", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypesAreValid(t *testing.T) {
	types := Types()
	if len(types) != 5 {
		t.Fatalf("got %d types, want 5", len(types))
	}
	for _, typ := range types {
		if !typ.IsValid() {
			t.Errorf("%q should be valid", typ)
		}
		if typ.Label() == string(typ) {
			t.Errorf("%q has no label", typ)
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	now := time.Now()
	tests := []struct {
		typ  Type
		want reflect.Type
	}{
		{Properties, reflect.TypeOf([]*property.Property{})},
		{Tenants, reflect.TypeOf([]*tenant.Tenant{})},
		{Payments, reflect.TypeOf([]*payment.Payment{})},
		{Expenses, reflect.TypeOf([]*expense.Expense{})},
		{Tasks, reflect.TypeOf([]*task.Task{})},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got, err := Generate(tt.typ, random.NewSeeded(1), now)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if reflect.TypeOf(got) != tt.want {
				t.Errorf("type = %v, want %v", reflect.TypeOf(got), tt.want)
			}
			if n := reflect.ValueOf(got).Len(); n != 5 {
				t.Errorf("len = %d, want 5", n)
			}
		})
	}
}

func TestGenerateUnknownType(t *testing.T) {
	got, err := Generate(Type("bogus"), random.NewSeeded(1), time.Now())
	if !errors.Is(err, ErrUnrecognizedType) {
		t.Fatalf("err = %v, want ErrUnrecognizedType", err)
	}
	if got != nil {
		t.Errorf("expected nil result, got %v", got)
	}
}

func TestGenerateAll(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.FixedZone("EST", -5*3600))
	ds := GenerateAll(random.NewSeeded(2), now)

	if len(ds.Properties) != 5 || len(ds.Tenants) != 5 || len(ds.Payments) != 5 ||
		len(ds.Expenses) != 5 || len(ds.Tasks) != 5 {
		t.Fatalf("unexpected collection sizes: %+v", ds)
	}

	// Offsets are whole days, so the sub-second part and zone come from Stamp.
	d := ds.Payments[0].PaymentDate
	if d.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", d.Location())
	}
	if d.Nanosecond() != 123000000 {
		t.Errorf("nanoseconds = %d, want millisecond precision", d.Nanosecond())
	}
}

func TestStamp(t *testing.T) {
	in := time.Date(2026, 1, 2, 3, 4, 5, 678901234, time.UTC)
	got := Stamp(in)
	want := time.Date(2026, 1, 2, 3, 4, 5, 678000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Stamp = %v, want %v", got, want)
	}
}
