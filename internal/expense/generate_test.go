package expense

import (
	"reflect"
	"testing"
	"time"

	"github.com/evcraddock/rems/internal/random"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	oldest := now.AddDate(0, 0, -MaxAgeDays)

	for seed := uint64(0); seed < 50; seed++ {
		expenses := Generate(random.NewSeeded(seed), now)
		if len(expenses) != Count {
			t.Fatalf("seed %d: got %d expenses, want %d", seed, len(expenses), Count)
		}

		for i, e := range expenses {
			if e.ID != i+1 {
				t.Errorf("seed %d: expenses[%d].ID = %d, want %d", seed, i, e.ID, i+1)
			}
			if e.UserID < MinRefID || e.UserID >= MaxRefID {
				t.Errorf("seed %d: userId %d out of range", seed, e.UserID)
			}
			if e.PropertyID < MinRefID || e.PropertyID >= MaxRefID {
				t.Errorf("seed %d: propertyId %d out of range", seed, e.PropertyID)
			}
			if e.Amount < MinAmount || e.Amount >= MaxAmount {
				t.Errorf("seed %d: amount %d out of range", seed, e.Amount)
			}
			if e.Currency != "USD" {
				t.Errorf("seed %d: currency = %q", seed, e.Currency)
			}
			if !e.Category.IsValid() {
				t.Errorf("seed %d: invalid category %q", seed, e.Category)
			}
			if !e.Status.IsValid() {
				t.Errorf("seed %d: invalid status %q", seed, e.Status)
			}
			if e.ExpenseDate.After(now) || !e.ExpenseDate.After(oldest) {
				t.Errorf("seed %d: expenseDate %v outside last %d days", seed, e.ExpenseDate, MaxAgeDays)
			}
		}
	}
}

func TestGenerateDescription(t *testing.T) {
	expenses := Generate(random.NewSeeded(2), time.Now())
	if expenses[1].Description != "Expense 2 description" {
		t.Errorf("description = %q", expenses[1].Description)
	}
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	now := time.Now()
	if !reflect.DeepEqual(Generate(random.NewSeeded(11), now), Generate(random.NewSeeded(11), now)) {
		t.Error("expected identical output for identical seeds")
	}
}
