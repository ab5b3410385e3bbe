// Package tenant provides the tenant sample model and generator.
package tenant

import "time"

// Tenant is a lease holder occupying a facility.
type Tenant struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	FacilityID int       `json:"facilityId"`
	LeaseStart time.Time `json:"leaseStart"`
	LeaseEnd   time.Time `json:"leaseEnd"`
	RentAmount int       `json:"rentAmount"` // dollars per month
	Name       string    `json:"name"`
}

// EndsWithin reports whether the lease ends in the window (now, now+d].
func (t *Tenant) EndsWithin(now time.Time, d time.Duration) bool {
	return t.LeaseEnd.After(now) && !t.LeaseEnd.After(now.Add(d))
}
