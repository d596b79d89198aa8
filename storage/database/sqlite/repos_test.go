package sqliterepos

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwenda/classtrack/core"
	"github.com/mwenda/classtrack/core/assignment"
	"github.com/mwenda/classtrack/core/user"
	"github.com/mwenda/classtrack/storage/database"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conf := &core.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.Open(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, repo user.Repository, name, email, role string) user.User {
	t.Helper()
	usr := user.User{Name: name, Email: email, Role: role, CreatedAt: time.Now().UTC()}
	require.NoError(t, usr.SetPassword("pwd"))
	usr, err := repo.CreateUser(context.Background(), usr)
	require.NoError(t, err)
	return usr
}

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t1 := createUser(t, repo, "T One", "t1@x.com", user.RoleTeacher)
	s1 := createUser(t, repo, "S One", "s1@x.com", user.RoleStudent)
	assert.NotZero(t, t1.ID)
	assert.NotEqual(t, t1.ID, s1.ID)

	t.Run("duplicate email", func(t *testing.T) {
		dup := user.User{Name: "T Two", Email: "t1@x.com", Role: user.RoleTeacher, CreatedAt: time.Now().UTC()}
		require.NoError(t, dup.SetPassword("pwd"))
		_, err := repo.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetUserByID(ctx, t1.ID)
		require.NoError(t, err)
		assert.Equal(t, t1.Email, got.Email)
		assert.Equal(t, user.RoleTeacher, got.Role)
		assert.NoError(t, got.CheckPassword("pwd"))
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := repo.GetUserByEmail(ctx, "s1@x.com")
		require.NoError(t, err)
		assert.Equal(t, s1.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetUserByID(ctx, 9999)
		assert.ErrorIs(t, err, user.ErrNotFound)
		_, err = repo.GetUserByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestAssignmentRepository(t *testing.T) {
	db := setupDB(t)
	usrRepo := NewUserRepository(db)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	teacher := createUser(t, usrRepo, "T One", "t1@x.com", user.RoleTeacher)
	student := createUser(t, usrRepo, "S One", "s1@x.com", user.RoleStudent)

	asg, err := repo.CreateAssignment(ctx, assignment.Assignment{
		Title:       "HW1",
		Description: "read chapter 1",
		CreatedBy:   teacher.ID,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotZero(t, asg.ID)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetAssignmentByID(ctx, asg.ID)
		require.NoError(t, err)
		assert.Equal(t, "HW1", got.Title)
		assert.Equal(t, teacher.ID, got.CreatedBy)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetAssignmentByID(ctx, 9999)
		assert.ErrorIs(t, err, assignment.ErrNotFound)
	})

	t.Run("query all", func(t *testing.T) {
		asgs, err := repo.QueryAllAssignments(ctx)
		require.NoError(t, err)
		require.Len(t, asgs, 1)
		assert.Equal(t, asg.ID, asgs[0].ID)
	})

	t.Run("submissions in insertion order", func(t *testing.T) {
		for _, content := range []string{"first", "second", "third"} {
			_, err := repo.CreateSubmission(ctx, assignment.Submission{
				AssignmentID: asg.ID,
				StudentID:    student.ID,
				Content:      content,
				SubmittedAt:  time.Now().UTC(),
			})
			require.NoError(t, err)
		}

		subs, err := repo.FilterSubmissionsByAssignment(ctx, asg.ID)
		require.NoError(t, err)
		require.Len(t, subs, 3)
		assert.Equal(t, "first", subs[0].Content)
		assert.Equal(t, "second", subs[1].Content)
		assert.Equal(t, "third", subs[2].Content)
		for _, sub := range subs {
			assert.Equal(t, student.ID, sub.StudentID)
			assert.Equal(t, asg.ID, sub.AssignmentID)
		}
	})

	t.Run("no submissions yields empty", func(t *testing.T) {
		empty, err := repo.CreateAssignment(ctx, assignment.Assignment{
			Title:     "HW2",
			CreatedBy: teacher.ID,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		subs, err := repo.FilterSubmissionsByAssignment(ctx, empty.ID)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})
}
