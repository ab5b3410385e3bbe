// Package task provides the property task sample model and generator.
package task

import "time"

// Status is the workflow state of a task.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// ValidStatuses is the set of allowed task statuses.
var ValidStatuses = []Status{StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled}

// IsValid checks if a task status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Category classifies the kind of work a task involves.
type Category string

const (
	CategoryMaintenance    Category = "MAINTENANCE"
	CategoryRepair         Category = "REPAIR"
	CategoryCleaning       Category = "CLEANING"
	CategoryInspection     Category = "INSPECTION"
	CategoryAdministrative Category = "ADMINISTRATIVE"
)

// ValidCategories is the set of allowed task categories.
var ValidCategories = []Category{
	CategoryMaintenance, CategoryRepair, CategoryCleaning, CategoryInspection, CategoryAdministrative,
}

// IsValid checks if a task category is recognized.
func (c Category) IsValid() bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Priority is how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ValidPriorities is the set of allowed task priorities, lowest first.
var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid checks if a task priority is recognized.
func (p Priority) IsValid() bool {
	for _, v := range ValidPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Task is a unit of property work assigned to a user.
type Task struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	PropertyID  int       `json:"propertyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      Status    `json:"status"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
}
