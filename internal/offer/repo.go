package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
)

var (
	ErrNotFound     = fmt.Errorf("offer %w", store.ErrNotFound)
	ErrAlreadyExist = fmt.Errorf("offer already exists: %w", store.ErrDuplicateID)
)

type Repository interface {
	List(ctx context.Context) ([]Offer, error)
	ListByOrder(ctx context.Context, orderID int64) ([]Offer, error)
	ListByExecutor(ctx context.Context, executorID int64) ([]Offer, error)
	GetByID(ctx context.Context, id int64) (*Offer, error)
	Create(ctx context.Context, o *Offer) error
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct {
	db      store.DBTX
	timeout time.Duration
}

func NewPGRepo(db store.DBTX, timeout time.Duration) *PGRepo {
	return &PGRepo{db: db, timeout: timeout}
}

func (r *PGRepo) list(ctx context.Context, where string, args ...any) ([]Offer, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, order_id, executor_id FROM offers `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Offer, 0)
	for rows.Next() {
		var o Offer
		if err := rows.Scan(&o.ID, &o.OrderID, &o.ExecutorID); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) List(ctx context.Context) ([]Offer, error) { return r.list(ctx, "") }

func (r *PGRepo) ListByOrder(ctx context.Context, orderID int64) ([]Offer, error) {
	return r.list(ctx, "WHERE order_id=$1", orderID)
}

func (r *PGRepo) ListByExecutor(ctx context.Context, executorID int64) ([]Offer, error) {
	return r.list(ctx, "WHERE executor_id=$1", executorID)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Offer, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	var o Offer
	err := r.db.QueryRow(ctx, `SELECT id, order_id, executor_id FROM offers WHERE id=$1`, id).
		Scan(&o.ID, &o.OrderID, &o.ExecutorID)
	if err != nil {
		if store.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Offer) error {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `INSERT INTO offers (id, order_id, executor_id) VALUES ($1,$2,$3)`,
		o.ID, o.OrderID, o.ExecutorID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrAlreadyExist
		}
		return err
	}
	return nil
}

func (r *PGRepo) Update(ctx context.Context, o *Offer) error {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE offers SET order_id = $2, executor_id = $3 WHERE id = $1`,
		o.ID, o.OrderID, o.ExecutorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
