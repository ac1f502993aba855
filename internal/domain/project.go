package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a billable unit of work that time entries attach to.
//
// SecondsTracked is a denormalized running total maintained transactionally
// when entries are stopped or created manually. It exists for cheap dashboard
// reads only; reports recompute from entries and never trust it.
type Project struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Status         ProjectStatus
	SecondsTracked int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Task is an optional subdivision of a project. Deleting a task clears the
// TaskID on its entries without invalidating them.
type Task struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
