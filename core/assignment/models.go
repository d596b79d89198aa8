package assignment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mwenda/classtrack/core"
)

// Assignment is a unit of work posted by a teacher. Immutable once created.
type Assignment struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedBy   int       `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
}

// Submission is a student's response to a specific assignment. Multiple
// submissions per (assignment, student) are permitted.
type Submission struct {
	ID           int       `json:"id" db:"id"`
	AssignmentID int       `json:"assignment_id" db:"assignment_id"`
	StudentID    int       `json:"student_id" db:"student_id"`
	Content      string    `json:"content" db:"content"`
	SubmittedAt  time.Time `json:"submitted_at" db:"submitted_at"` // UTC
}

// NewAssignment contains information needed to post a new Assignment.
type NewAssignment struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	return validate.Struct(na)
}

// NewSubmission contains a student's submitted work.
type NewSubmission struct {
	Content string `json:"content" validate:"required"`
}

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.Content = core.CleanString(ns.Content)
	return validate.Struct(ns)
}
