package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
	"github.com/MikeMC777/ordenes-ofertas/internal/order"
	"github.com/MikeMC777/ordenes-ofertas/internal/seed"
	"github.com/MikeMC777/ordenes-ofertas/internal/store/storetest"
	"github.com/MikeMC777/ordenes-ofertas/internal/user"
)

func TestPGSeeder_RestartKeepsCounts(t *testing.T) {
	gw := storetest.Open(t)
	ctx := context.Background()

	d, err := seed.Default()
	require.NoError(t, err)
	s := seed.New(seed.NewPGTxRunner(gw), d)

	seeded, err := s.SeedIfEmpty(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = s.SeedIfEmpty(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	users, err := user.NewPGRepo(gw.DB(), gw.Timeout()).List(ctx)
	require.NoError(t, err)
	orders, err := order.NewPGRepo(gw.DB(), gw.Timeout()).List(ctx)
	require.NoError(t, err)
	offers, err := offer.NewPGRepo(gw.DB(), gw.Timeout()).List(ctx)
	require.NoError(t, err)

	require.Len(t, users, 3)
	require.Len(t, orders, 2)
	require.Len(t, offers, 2)
	require.Equal(t, d.Orders, orders)
}

func TestPGSeeder_RollbackOnFailure(t *testing.T) {
	gw := storetest.Open(t)
	ctx := context.Background()

	d, err := seed.Default()
	require.NoError(t, err)
	d.Orders = append(d.Orders, d.Orders[0])

	_, err = seed.New(seed.NewPGTxRunner(gw), d).SeedIfEmpty(ctx)
	require.Error(t, err)

	n, err := user.NewPGRepo(gw.DB(), gw.Timeout()).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
