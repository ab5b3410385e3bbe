package tenant

import (
	"fmt"
	"time"

	"github.com/evcraddock/rems/internal/random"
)

// Count is the number of records Generate returns.
const Count = 5

// Upper bounds are exclusive.
const (
	MinFacilityID    = 1
	MaxFacilityID    = 6
	MinRent          = 800
	MaxRent          = 3000
	MinLeaseAgeDays  = 30
	MaxLeaseAgeDays  = 365
	MinLeaseTermDays = 180
	MaxLeaseTermDays = 730
	userIDOffset     = 9
)

// Generate fabricates Count tenants with IDs 1..Count. Leases started
// between 30 and 364 days before now and run 180 to 729 days.
func Generate(src random.Source, now time.Time) []*Tenant {
	tenants := make([]*Tenant, 0, Count)
	for i := 1; i <= Count; i++ {
		start := now.AddDate(0, 0, -random.Between(src, MinLeaseAgeDays, MaxLeaseAgeDays))
		end := start.AddDate(0, 0, random.Between(src, MinLeaseTermDays, MaxLeaseTermDays))

		tenants = append(tenants, &Tenant{
			ID:         i,
			UserID:     i + userIDOffset,
			FacilityID: random.Between(src, MinFacilityID, MaxFacilityID),
			LeaseStart: start,
			LeaseEnd:   end,
			RentAmount: random.Between(src, MinRent, MaxRent),
			Name:       fmt.Sprintf("Tenant %d", i),
		})
	}
	return tenants
}
