package sqliterepos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/mwenda/classtrack/core/assignment"
)

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	query := `INSERT INTO assignments (title, description, created_by, created_at) VALUES (?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query, asg.Title, asg.Description, asg.CreatedBy, asg.CreatedAt)
	if err != nil {
		return assignment.Assignment{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return assignment.Assignment{}, err
	}
	asg.ID = int(id)
	return asg, nil
}

func (repo *assignmentRepository) GetAssignmentByID(ctx context.Context, id int) (assignment.Assignment, error) {
	var asg assignment.Assignment
	query := `SELECT id, title, description, created_by, created_at FROM assignments WHERE id = ?`
	if err := repo.db.GetContext(ctx, &asg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, err
	}
	return asg, nil
}

func (repo *assignmentRepository) QueryAllAssignments(ctx context.Context) ([]assignment.Assignment, error) {
	var asgs []assignment.Assignment
	query := `SELECT id, title, description, created_by, created_at FROM assignments ORDER BY id`
	if err := repo.db.SelectContext(ctx, &asgs, query); err != nil {
		return nil, err
	}
	return asgs, nil
}

func (repo *assignmentRepository) CreateSubmission(ctx context.Context, sub assignment.Submission) (assignment.Submission, error) {
	query := `INSERT INTO submissions (assignment_id, student_id, content, submitted_at) VALUES (?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query, sub.AssignmentID, sub.StudentID, sub.Content, sub.SubmittedAt)
	if err != nil {
		return assignment.Submission{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return assignment.Submission{}, err
	}
	sub.ID = int(id)
	return sub, nil
}

func (repo *assignmentRepository) FilterSubmissionsByAssignment(ctx context.Context, assignmentID int) ([]assignment.Submission, error) {
	var subs []assignment.Submission
	query := `SELECT id, assignment_id, student_id, content, submitted_at FROM submissions WHERE assignment_id = ? ORDER BY id`
	if err := repo.db.SelectContext(ctx, &subs, query, assignmentID); err != nil {
		return nil, err
	}
	return subs, nil
}
