package assignment

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		GetAssignmentByID(ctx context.Context, id int) (Assignment, error)
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
		CreateSubmission(ctx context.Context, sub Submission) (Submission, error)
		// FilterSubmissionsByAssignment returns submissions in insertion order.
		FilterSubmissionsByAssignment(ctx context.Context, assignmentID int) ([]Submission, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new assignment owned by the given teacher. The caller is
// responsible for the teacher role check.
func (svc *Service) Create(ctx context.Context, teacherID int, na NewAssignment) (Assignment, error) {
	asg := Assignment{
		Title:       na.Title,
		Description: na.Description,
		CreatedBy:   teacherID,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Assignment, error) {
	return svc.repo.GetAssignmentByID(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Assignment, error) {
	return svc.repo.QueryAllAssignments(ctx)
}

// Submit records a student's work for an existing assignment; it fails with
// ErrNotFound when the assignment does not exist.
func (svc *Service) Submit(ctx context.Context, studentID, assignmentID int, ns NewSubmission) (Submission, error) {
	if _, err := svc.repo.GetAssignmentByID(ctx, assignmentID); err != nil {
		return Submission{}, err
	}
	sub := Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      ns.Content,
		SubmittedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateSubmission(ctx, sub)
}

// ListSubmissions returns all submissions for an existing assignment in
// insertion order; an assignment with no submissions yields an empty list.
func (svc *Service) ListSubmissions(ctx context.Context, assignmentID int) ([]Submission, error) {
	if _, err := svc.repo.GetAssignmentByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	return svc.repo.FilterSubmissionsByAssignment(ctx, assignmentID)
}
