// Package overview aggregates a sample dataset into dashboard metrics.
package overview

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/evcraddock/rems/internal/expense"
	"github.com/evcraddock/rems/internal/mockdata"
	"github.com/evcraddock/rems/internal/payment"
	"github.com/evcraddock/rems/internal/property"
	"github.com/evcraddock/rems/internal/task"
)

// LeaseExpiryWindow is how far ahead a lease end counts as expiring soon.
const LeaseExpiryWindow = 90 * 24 * time.Hour

// Bucket is the number of records sharing one enumerated value.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AmountBucket is the summed amount of records sharing one enumerated value.
type AmountBucket struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary holds the portfolio, financial and maintenance metrics shown on
// the dashboard.
type Summary struct {
	TotalProperties    int             `json:"totalProperties"`
	ActiveProperties   int             `json:"activeProperties"`
	TotalTenants       int             `json:"totalTenants"`
	TotalPropertyValue decimal.Decimal `json:"totalPropertyValue"`
	MonthlyRent        decimal.Decimal `json:"monthlyRent"`
	LeasesExpiring     int             `json:"leasesExpiring"`

	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`

	PropertiesByType   []Bucket       `json:"propertiesByType"`
	PropertiesByStatus []Bucket       `json:"propertiesByStatus"`
	PaymentsByStatus   []Bucket       `json:"paymentsByStatus"`
	ExpensesByCategory []AmountBucket `json:"expensesByCategory"`
	TasksByStatus      []Bucket       `json:"tasksByStatus"`
	TasksByCategory    []Bucket       `json:"tasksByCategory"`
	TasksByPriority    []Bucket       `json:"tasksByPriority"`
}

// Summarize computes the metrics for ds. Every enumerated value gets a
// bucket, in declaration order, even when its count is zero.
func Summarize(ds *mockdata.Dataset, now time.Time) Summary {
	s := Summary{
		TotalProperties:    len(ds.Properties),
		TotalTenants:       len(ds.Tenants),
		TotalPropertyValue: decimal.Zero,
		MonthlyRent:        decimal.Zero,
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
	}

	for _, p := range ds.Properties {
		if p.Status == property.StatusActive {
			s.ActiveProperties++
		}
		s.TotalPropertyValue = s.TotalPropertyValue.Add(decimal.NewFromInt(int64(p.Value)))
	}

	for _, t := range ds.Tenants {
		s.MonthlyRent = s.MonthlyRent.Add(decimal.NewFromInt(int64(t.RentAmount)))
		if t.EndsWithin(now, LeaseExpiryWindow) {
			s.LeasesExpiring++
		}
	}

	for _, p := range ds.Payments {
		s.TotalIncome = s.TotalIncome.Add(decimal.NewFromInt(int64(p.Amount)))
	}
	for _, e := range ds.Expenses {
		s.TotalExpenses = s.TotalExpenses.Add(decimal.NewFromInt(int64(e.Amount)))
	}
	s.NetIncome = s.TotalIncome.Sub(s.TotalExpenses)

	s.PropertiesByType = countBy(property.ValidTypes, ds.Properties, func(p *property.Property) property.Type { return p.Type })
	s.PropertiesByStatus = countBy(property.ValidStatuses, ds.Properties, func(p *property.Property) property.Status { return p.Status })
	s.PaymentsByStatus = countBy(payment.ValidStatuses, ds.Payments, func(p *payment.Payment) payment.Status { return p.Status })
	s.TasksByStatus = countBy(task.ValidStatuses, ds.Tasks, func(t *task.Task) task.Status { return t.Status })
	s.TasksByCategory = countBy(task.ValidCategories, ds.Tasks, func(t *task.Task) task.Category { return t.Category })
	s.TasksByPriority = countBy(task.ValidPriorities, ds.Tasks, func(t *task.Task) task.Priority { return t.Priority })

	s.ExpensesByCategory = make([]AmountBucket, 0, len(expense.ValidCategories))
	for _, c := range expense.ValidCategories {
		sum := decimal.Zero
		for _, e := range ds.Expenses {
			if e.Category == c {
				sum = sum.Add(decimal.NewFromInt(int64(e.Amount)))
			}
		}
		s.ExpensesByCategory = append(s.ExpensesByCategory, AmountBucket{Key: string(c), Amount: sum})
	}

	return s
}

func countBy[K ~string, V any](keys []K, items []V, keyOf func(V) K) []Bucket {
	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		n := 0
		for _, it := range items {
			if keyOf(it) == k {
				n++
			}
		}
		buckets = append(buckets, Bucket{Key: string(k), Count: n})
	}
	return buckets
}
