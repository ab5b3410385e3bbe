// Package expense provides the property expense sample model and generator.
package expense

import "time"

// Currency is the only currency sample expenses are billed in.
const Currency = "USD"

// Category classifies what an expense paid for.
type Category string

const (
	CategoryRent        Category = "RENT"
	CategoryUtility     Category = "UTILITY"
	CategoryMaintenance Category = "MAINTENANCE"
	CategoryCleaning    Category = "CLEANING"
	CategoryInsurance   Category = "INSURANCE"
	CategoryTaxes       Category = "TAXES"
)

// ValidCategories is the set of allowed expense categories.
var ValidCategories = []Category{
	CategoryRent, CategoryUtility, CategoryMaintenance, CategoryCleaning, CategoryInsurance, CategoryTaxes,
}

// IsValid checks if an expense category is recognized.
func (c Category) IsValid() bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Status is the billing state of an expense.
type Status string

const (
	StatusDue           Status = "DUE"
	StatusPending       Status = "PENDING"
	StatusPaid          Status = "PAID"
	StatusPartiallyPaid Status = "PARTIALLY_PAID"
	StatusOverdue       Status = "OVERDUE"
)

// ValidStatuses is the set of allowed expense statuses.
var ValidStatuses = []Status{StatusDue, StatusPending, StatusPaid, StatusPartiallyPaid, StatusOverdue}

// IsValid checks if an expense status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Expense is a cost incurred for a property.
type Expense struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	PropertyID  int       `json:"propertyId"`
	Amount      int       `json:"amount"`
	Currency    string    `json:"currency"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	ExpenseDate time.Time `json:"expenseDate"`
	Description string    `json:"description"`
}
