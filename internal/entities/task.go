package entities

import "time"

// TaskStatus is a task lifecycle state.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskCancelled  TaskStatus = "Cancelled"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
	PriorityUrgent TaskPriority = "Urgent"
)

// Task is a unit of work, optionally assigned and attached to a project.
type Task struct {
	ID             string
	Title          string
	Description    *string
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        *time.Time
	EstimatedHours *float64
	AssignedTo     *string
	AssignedUser   *UserRef
	ProjectID      *string
	Project        *ProjectRef
	CreatedBy      string
	CreatedUser    *UserRef
	Comments       []Comment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskRef is the short projection expanded on projects.
type TaskRef struct {
	ID           string
	Title        string
	Status       TaskStatus
	Priority     TaskPriority
	AssignedTo   *string
	AssignedName *string
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	Status     TaskStatus
	Priority   TaskPriority
	AssignedTo string
	ProjectID  string
	Search     string
	Limit      int
	Offset     int
}

// TaskUpdate carries a partial task update; nil fields are left untouched.
type TaskUpdate struct {
	Title          *string
	Description    *string
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	EstimatedHours *float64
	AssignedTo     *string
	ProjectID      *string
}
