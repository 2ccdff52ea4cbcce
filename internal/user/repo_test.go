package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
	"github.com/MikeMC777/ordenes-ofertas/internal/store/storetest"
	"github.com/MikeMC777/ordenes-ofertas/internal/user"
)

func sample(id int64) *user.User {
	return &user.User{
		ID:        id,
		FirstName: "Ana",
		LastName:  "Pérez",
		Age:       31,
		Email:     "ana@example.com",
		Role:      "customer",
		Phone:     "+34 600 000 000",
	}
}

func TestPGRepo_CreateGetUpdateDelete(t *testing.T) {
	gw := storetest.Open(t)
	repo := user.NewPGRepo(gw.DB(), gw.Timeout())
	ctx := context.Background()

	in := sample(1)
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, *in, *got)

	repl := user.User{ID: 1, FirstName: "Bea", LastName: "Ruiz", Age: 40, Email: "bea@example.com", Role: "executor", Phone: "1"}
	require.NoError(t, repo.Update(ctx, &repl))
	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, repl, *got)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = repo.GetByID(ctx, 1)
	require.ErrorIs(t, err, user.ErrNotFound)
	require.ErrorIs(t, err, store.ErrNotFound)

	deleted, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPGRepo_DuplicateIDKeepsFirst(t *testing.T) {
	gw := storetest.Open(t)
	repo := user.NewPGRepo(gw.DB(), gw.Timeout())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sample(7)))
	other := sample(7)
	other.FirstName = "Other"
	err := repo.Create(ctx, other)
	require.True(t, errors.Is(err, store.ErrDuplicateID), "got %v", err)

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Ana", got.FirstName)
}

func TestPGRepo_UpdateMissingIsNotFound(t *testing.T) {
	gw := storetest.Open(t)
	repo := user.NewPGRepo(gw.DB(), gw.Timeout())

	err := repo.Update(context.Background(), sample(99))
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestPGRepo_ListAndCount(t *testing.T) {
	gw := storetest.Open(t)
	repo := user.NewPGRepo(gw.DB(), gw.Timeout())
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	for _, id := range []int64{3, 1, 2} {
		require.NoError(t, repo.Create(ctx, sample(id)))
	}
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []int64{1, 2, 3}, []int64{list[0].ID, list[1].ID, list[2].ID})

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
