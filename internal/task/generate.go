package task

import (
	"fmt"
	"time"

	"github.com/evcraddock/rems/internal/random"
)

// Count is the number of records Generate returns.
const Count = 5

// Upper bounds are exclusive.
const (
	MinRefID     = 1
	MaxRefID     = 6
	MaxDueInDays = 30
)

// Generate fabricates Count tasks with IDs 1..Count, due within the next
// MaxDueInDays days.
func Generate(src random.Source, now time.Time) []*Task {
	tasks := make([]*Task, 0, Count)
	for i := 1; i <= Count; i++ {
		tasks = append(tasks, &Task{
			ID:          i,
			UserID:      random.Between(src, MinRefID, MaxRefID),
			PropertyID:  random.Between(src, MinRefID, MaxRefID),
			Title:       fmt.Sprintf("Task %d", i),
			Description: fmt.Sprintf("Description for task %d", i),
			DueDate:     now.AddDate(0, 0, src.IntN(MaxDueInDays)),
			Status:      random.Choice(src, ValidStatuses),
			Category:    random.Choice(src, ValidCategories),
			Priority:    random.Choice(src, ValidPriorities),
		})
	}
	return tasks
}
