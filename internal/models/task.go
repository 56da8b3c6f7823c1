package models

import "time"

type Task struct {
	ID              int64
	TaskName        string
	TaskDescription string
	DueDate         *time.Time
	Completed       bool
}

// Clone returns a deep copy of the task, so callers holding the
// copy can't mutate the stored value through the due date pointer.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}

	clone := *t
	if t.DueDate != nil {
		dueDate := *t.DueDate
		clone.DueDate = &dueDate
	}
	return &clone
}
