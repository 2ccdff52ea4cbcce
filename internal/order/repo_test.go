package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-ofertas/internal/order"
	"github.com/MikeMC777/ordenes-ofertas/internal/store"
	"github.com/MikeMC777/ordenes-ofertas/internal/store/storetest"
)

func fixSink(id, customer int64, executor *int64) *order.Order {
	return &order.Order{
		ID:          id,
		Name:        "Fix sink",
		Description: "leaky",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-05",
		Address:     "1 Main St",
		Price:       120.5,
		CustomerID:  customer,
		ExecutorID:  executor,
	}
}

func TestPGRepo_RoundTripAndReplace(t *testing.T) {
	gw := storetest.Open(t)
	repo := order.NewPGRepo(gw.DB(), gw.Timeout())
	ctx := context.Background()

	exec := int64(2)
	in := fixSink(10, 1, &exec)
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, *in, *got)

	// full replacement: executor cleared, price changed
	repl := fixSink(10, 3, nil)
	repl.Price = 99.99
	require.NoError(t, repo.Update(ctx, repl))
	got, err = repo.GetByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, *repl, *got)
	require.Nil(t, got.ExecutorID)
}

func TestPGRepo_DanglingReferencesAccepted(t *testing.T) {
	gw := storetest.Open(t)
	repo := order.NewPGRepo(gw.DB(), gw.Timeout())

	missing := int64(12345)
	require.NoError(t, repo.Create(context.Background(), fixSink(1, 999, &missing)))
}

func TestPGRepo_ErrorsAndDelete(t *testing.T) {
	gw := storetest.Open(t)
	repo := order.NewPGRepo(gw.DB(), gw.Timeout())
	ctx := context.Background()

	require.ErrorIs(t, repo.Update(ctx, fixSink(5, 1, nil)), order.ErrNotFound)

	require.NoError(t, repo.Create(ctx, fixSink(5, 1, nil)))
	require.ErrorIs(t, repo.Create(ctx, fixSink(5, 2, nil)), store.ErrDuplicateID)

	ok, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = repo.GetByID(ctx, 5)
	require.ErrorIs(t, err, order.ErrNotFound)

	ok, err = repo.Delete(ctx, 5)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPGRepo_ListByCustomer(t *testing.T) {
	gw := storetest.Open(t)
	repo := order.NewPGRepo(gw.DB(), gw.Timeout())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, fixSink(1, 1, nil)))
	require.NoError(t, repo.Create(ctx, fixSink(2, 2, nil)))
	require.NoError(t, repo.Create(ctx, fixSink(3, 1, nil)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mine, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, int64(1), mine[0].ID)
	require.Equal(t, int64(3), mine[1].ID)

	none, err := repo.ListByCustomer(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}
