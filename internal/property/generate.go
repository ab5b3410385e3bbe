package property

import (
	"fmt"
	"time"

	"github.com/evcraddock/rems/internal/random"
)

// Count is the number of records Generate returns.
const Count = 5

const (
	MinSize      = 800
	MaxSize      = 5000
	MinYearBuilt = 1980
	MaxYearBuilt = 2023
	MinValue     = 200000
	MaxValue     = 2000000
)

// Generate fabricates Count properties with IDs 1..Count.
// Upper bounds are exclusive. now is unused; it keeps the generator
// signatures uniform.
func Generate(src random.Source, _ time.Time) []*Property {
	props := make([]*Property, 0, Count)
	for i := 1; i <= Count; i++ {
		props = append(props, &Property{
			ID:        i,
			Name:      fmt.Sprintf("Property %d", i),
			Address:   fmt.Sprintf("%d Main St, City %d", 99+i, i),
			Type:      random.Choice(src, ValidTypes),
			Status:    random.Choice(src, ValidStatuses),
			Size:      random.Between(src, MinSize, MaxSize),
			YearBuilt: random.Between(src, MinYearBuilt, MaxYearBuilt),
			Value:     random.Between(src, MinValue, MaxValue),
		})
	}
	return props
}
