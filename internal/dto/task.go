package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DueDateLayout is the wire format of a due date, month first.
const DueDateLayout = "01-02-2006 15:04"

// DueDate is a timestamp encoded as DueDateLayout in the server's
// local time zone.
type DueDate time.Time

func NewDueDate(t time.Time) *DueDate {
	d := DueDate(t)
	return &d
}

func ParseDueDate(s string) (DueDate, error) {
	t, err := time.ParseInLocation(DueDateLayout, s, time.Local)
	if err != nil {
		return DueDate{}, fmt.Errorf("invalid due date %q, expected MM-dd-yyyy HH:mm: %w", s, err)
	}
	return DueDate(t), nil
}

func (d DueDate) Time() time.Time {
	return time.Time(d)
}

func (d DueDate) String() string {
	return time.Time(d).Format(DueDateLayout)
}

func (d DueDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	// A null never reaches here for a *DueDate field, the decoder sets
	// the pointer to nil instead.
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("due date must be a string: %w", err)
	}

	parsed, err := ParseDueDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TaskDTO is the task exchanged with clients on create, full edit and
// every response. Input fields are pointers so an absent field can be
// told apart from a zero one.
type TaskDTO struct {
	ID              int64    `json:"id,omitempty"`
	TaskName        *string  `json:"taskName" validate:"required,notblank"`
	TaskDescription *string  `json:"taskDescription" validate:"required"`
	DueDate         *DueDate `json:"dueDate" validate:"omitempty,future"`
	Completed       *bool    `json:"completed" validate:"required"`
}

// TaskPatchDTO carries a partial update. It has the same fields as
// TaskDTO but is never validated.
type TaskPatchDTO struct {
	TaskName        *string  `json:"taskName"`
	TaskDescription *string  `json:"taskDescription"`
	DueDate         *DueDate `json:"dueDate"`
	Completed       *bool    `json:"completed"`
}

func String(s string) *string {
	return &s
}

func Bool(b bool) *bool {
	return &b
}
