// Package sqliterepos implements the domain repositories on SQLite.
package sqliterepos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/mwenda/classtrack/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	query := `INSERT INTO users (name, email, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query, usr.Name, usr.Email, usr.Role, usr.PasswordHash, usr.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return user.User{}, err
	}
	usr.ID = int(id)
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var usr user.User
	query := `SELECT id, name, email, role, password_hash, created_at FROM users WHERE id = ?`
	if err := repo.db.GetContext(ctx, &usr, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var usr user.User
	query := `SELECT id, name, email, role, password_hash, created_at FROM users WHERE email = ?`
	if err := repo.db.GetContext(ctx, &usr, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
