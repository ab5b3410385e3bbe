package expense

import (
	"fmt"
	"time"

	"github.com/evcraddock/rems/internal/random"
)

// Count is the number of records Generate returns.
const Count = 5

// Upper bounds are exclusive.
const (
	MinRefID   = 1
	MaxRefID   = 6
	MinAmount  = 100
	MaxAmount  = 2000
	MaxAgeDays = 90
)

// Generate fabricates Count expenses with IDs 1..Count, dated within the
// last MaxAgeDays days.
func Generate(src random.Source, now time.Time) []*Expense {
	expenses := make([]*Expense, 0, Count)
	for i := 1; i <= Count; i++ {
		expenses = append(expenses, &Expense{
			ID:          i,
			UserID:      random.Between(src, MinRefID, MaxRefID),
			PropertyID:  random.Between(src, MinRefID, MaxRefID),
			Amount:      random.Between(src, MinAmount, MaxAmount),
			Currency:    Currency,
			Category:    random.Choice(src, ValidCategories),
			Status:      random.Choice(src, ValidStatuses),
			ExpenseDate: now.AddDate(0, 0, -src.IntN(MaxAgeDays)),
			Description: fmt.Sprintf("Expense %d description", i),
		})
	}
	return expenses
}
