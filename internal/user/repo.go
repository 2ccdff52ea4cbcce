package user

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
)

var (
	ErrNotFound     = fmt.Errorf("user %w", store.ErrNotFound)
	ErrAlreadyExist = fmt.Errorf("user already exists: %w", store.ErrDuplicateID)
)

type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct {
	db      store.DBTX
	timeout time.Duration
}

// NewPGRepo binds the repository to a pool or to an open transaction.
func NewPGRepo(db store.DBTX, timeout time.Duration) *PGRepo {
	return &PGRepo{db: db, timeout: timeout}
}

const selectUsers = `SELECT id, first_name, last_name, age, email, role, phone FROM users`

func (r *PGRepo) List(ctx context.Context) ([]User, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, selectUsers+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	var u User
	err := r.db.QueryRow(ctx, selectUsers+` WHERE id=$1`, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
	if err != nil {
		if store.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, age, email, role, phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrAlreadyExist
		}
		return err
	}
	return nil
}

// Update replaces every column of the row at u.ID.
func (r *PGRepo) Update(ctx context.Context, u *User) error {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, age = $4, email = $5, role = $6, phone = $7
		WHERE id = $1
	`, u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete reports whether a row was removed; a missing id is not an error.
func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
