package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
)

var (
	ErrNotFound     = fmt.Errorf("order %w", store.ErrNotFound)
	ErrAlreadyExist = fmt.Errorf("order already exists: %w", store.ErrDuplicateID)
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct {
	db      store.DBTX
	timeout time.Duration
}

func NewPGRepo(db store.DBTX, timeout time.Duration) *PGRepo {
	return &PGRepo{db: db, timeout: timeout}
}

// price is NUMERIC; it crosses the wire as text and is converted with decimal.
const selectOrders = `
	SELECT id, name, description, start_date, end_date, address, price::text, customer_id, executor_id
	FROM orders`

func scanOrder(row pgx.Row) (Order, error) {
	var (
		o     Order
		price string
	)
	if err := row.Scan(&o.ID, &o.Name, &o.Description, &o.StartDate, &o.EndDate,
		&o.Address, &price, &o.CustomerID, &o.ExecutorID); err != nil {
		return Order{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return Order{}, fmt.Errorf("order %d: bad price %q: %w", o.ID, price, err)
	}
	o.Price = d.InexactFloat64()
	return o, nil
}

func priceParam(p float64) string { return decimal.NewFromFloat(p).String() }

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	return r.list(ctx, selectOrders+` ORDER BY id`)
}

func (r *PGRepo) ListByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	return r.list(ctx, selectOrders+` WHERE customer_id=$1 ORDER BY id`, customerID)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, selectOrders+` WHERE id=$1`, id))
	if err != nil {
		if store.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, name, description, start_date, end_date, address, price, customer_id, executor_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, priceParam(o.Price), o.CustomerID, o.ExecutorID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrAlreadyExist
		}
		return err
	}
	return nil
}

func (r *PGRepo) Update(ctx context.Context, o *Order) error {
	ctx, cancel := store.CallTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET name = $2, description = $3, start_date = $4, end_date = $5, address = $6,
		    price = $7, customer_id = $8, executor_id = $9
		WHERE id = $1
	`, o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, priceParam(o.Price), o.CustomerID, o.ExecutorID)
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

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
