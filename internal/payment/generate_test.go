package payment

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
		payments := Generate(random.NewSeeded(seed), now)
		if len(payments) != Count {
			t.Fatalf("seed %d: got %d payments, want %d", seed, len(payments), Count)
		}

		for i, p := range payments {
			if p.ID != i+1 {
				t.Errorf("seed %d: payments[%d].ID = %d, want %d", seed, i, p.ID, i+1)
			}
			for name, ref := range map[string]int{"userId": p.UserID, "tenantId": p.TenantID, "propertyId": p.PropertyID} {
				if ref < MinRefID || ref >= MaxRefID {
					t.Errorf("seed %d: %s %d out of range", seed, name, ref)
				}
			}
			if p.Amount < MinAmount || p.Amount >= MaxAmount {
				t.Errorf("seed %d: amount %d out of range", seed, p.Amount)
			}
			if p.Currency != "USD" {
				t.Errorf("seed %d: currency = %q", seed, p.Currency)
			}
			if p.PaymentDate.After(now) {
				t.Errorf("seed %d: paymentDate %v is in the future", seed, p.PaymentDate)
			}
			if !p.PaymentDate.After(oldest) {
				t.Errorf("seed %d: paymentDate %v too old", seed, p.PaymentDate)
			}
			if !p.Method.IsValid() {
				t.Errorf("seed %d: invalid method %q", seed, p.Method)
			}
			if !p.Status.IsValid() {
				t.Errorf("seed %d: invalid status %q", seed, p.Status)
			}
		}
	}
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	now := time.Now()
	if !reflect.DeepEqual(Generate(random.NewSeeded(8), now), Generate(random.NewSeeded(8), now)) {
		t.Error("expected identical output for identical seeds")
	}
}

func TestMethodIsValid(t *testing.T) {
	if !MethodPayPal.IsValid() {
		t.Error("expected PAYPAL to be valid")
	}
	if Method("BITCOIN").IsValid() {
		t.Error("expected BITCOIN to be invalid")
	}
}
