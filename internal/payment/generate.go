package payment

import (
	"time"

	"github.com/evcraddock/rems/internal/random"
)

// Count is the number of records Generate returns.
const Count = 5

// Upper bounds are exclusive.
const (
	MinRefID   = 1
	MaxRefID   = 6
	MinAmount  = 800
	MaxAmount  = 3000
	MaxAgeDays = 90
)

// Generate fabricates Count payments with IDs 1..Count, dated within the
// last MaxAgeDays days.
func Generate(src random.Source, now time.Time) []*Payment {
	payments := make([]*Payment, 0, Count)
	for i := 1; i <= Count; i++ {
		payments = append(payments, &Payment{
			ID:          i,
			UserID:      random.Between(src, MinRefID, MaxRefID),
			TenantID:    random.Between(src, MinRefID, MaxRefID),
			PropertyID:  random.Between(src, MinRefID, MaxRefID),
			Amount:      random.Between(src, MinAmount, MaxAmount),
			Currency:    Currency,
			PaymentDate: now.AddDate(0, 0, -src.IntN(MaxAgeDays)),
			Method:      random.Choice(src, ValidMethods),
			Status:      random.Choice(src, ValidStatuses),
		})
	}
	return payments
}
