// Package payment provides the rent payment sample model and generator.
package payment

import "time"

// Currency is the only currency sample payments are issued in.
const Currency = "USD"

// Method is how a payment was made.
type Method string

const (
	MethodCash         Method = "CASH"
	MethodCheck        Method = "CHECK"
	MethodCreditCard   Method = "CREDIT_CARD"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodPayPal       Method = "PAYPAL"
)

// ValidMethods is the set of allowed payment methods.
var ValidMethods = []Method{MethodCash, MethodCheck, MethodCreditCard, MethodBankTransfer, MethodPayPal}

// IsValid checks if a payment method is recognized.
func (m Method) IsValid() bool {
	for _, v := range ValidMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Status is the settlement state of a payment.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusFailed   Status = "FAILED"
	StatusRefunded Status = "REFUNDED"
)

// ValidStatuses is the set of allowed payment statuses.
var ValidStatuses = []Status{StatusPending, StatusPaid, StatusFailed, StatusRefunded}

// IsValid checks if a payment status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Payment is a rent payment received from a tenant.
type Payment struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	TenantID    int       `json:"tenantId"`
	PropertyID  int       `json:"propertyId"`
	Amount      int       `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentDate time.Time `json:"paymentDate"`
	Method      Method    `json:"method"`
	Status      Status    `json:"status"`
}
