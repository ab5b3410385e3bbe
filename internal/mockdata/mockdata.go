// Package mockdata maps entity types to their sample generators.
package mockdata

import (
	"errors"
	"time"

	"github.com/evcraddock/rems/internal/expense"
	"github.com/evcraddock/rems/internal/payment"
	"github.com/evcraddock/rems/internal/property"
	"github.com/evcraddock/rems/internal/random"
	"github.com/evcraddock/rems/internal/task"
	"github.com/evcraddock/rems/internal/tenant"
)

// ErrUnrecognizedType is returned for a missing or unknown entity type.
var ErrUnrecognizedType = errors.New("unrecognized data type")

// Type names one of the sample entity collections.
type Type string

const (
	Properties Type = "properties"
	Tenants    Type = "tenants"
	Payments   Type = "payments"
	Expenses   Type = "expenses"
	Tasks      Type = "tasks"
)

// Types returns every entity type in display order.
func Types() []Type {
	return []Type{Properties, Tenants, Payments, Expenses, Tasks}
}

// IsValid checks if an entity type is recognized.
func (t Type) IsValid() bool {
	switch t {
	case Properties, Tenants, Payments, Expenses, Tasks:
		return true
	}
	return false
}

// Label returns a human-readable label for the entity type.
func (t Type) Label() string {
	switch t {
	case Properties:
		return "Properties"
	case Tenants:
		return "Tenants"
	case Payments:
		return "Payments"
	case Expenses:
		return "Expenses"
	case Tasks:
		return "Tasks"
	default:
		return string(t)
	}
}

// ParseType converts s to a Type. Matching is exact and case-sensitive.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrUnrecognizedType
	}
	return t, nil
}

// Stamp normalizes a generation instant to UTC with millisecond precision.
func Stamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Millisecond)
}

// Generate fabricates the collection for t. The result is a slice of
// pointers to the entity's model type.
func Generate(t Type, src random.Source, now time.Time) (any, error) {
	now = Stamp(now)
	switch t {
	case Properties:
		return property.Generate(src, now), nil
	case Tenants:
		return tenant.Generate(src, now), nil
	case Payments:
		return payment.Generate(src, now), nil
	case Expenses:
		return expense.Generate(src, now), nil
	case Tasks:
		return task.Generate(src, now), nil
	default:
		return nil, ErrUnrecognizedType
	}
}

// Dataset holds one collection of each entity type.
type Dataset struct {
	Properties []*property.Property `json:"properties"`
	Tenants    []*tenant.Tenant     `json:"tenants"`
	Payments   []*payment.Payment   `json:"payments"`
	Expenses   []*expense.Expense   `json:"expenses"`
	Tasks      []*task.Task         `json:"tasks"`
}

// GenerateAll fabricates a fresh Dataset from src.
func GenerateAll(src random.Source, now time.Time) *Dataset {
	now = Stamp(now)
	return &Dataset{
		Properties: property.Generate(src, now),
		Tenants:    tenant.Generate(src, now),
		Payments:   payment.Generate(src, now),
		Expenses:   expense.Generate(src, now),
		Tasks:      task.Generate(src, now),
	}
}
