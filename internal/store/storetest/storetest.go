// Package storetest opens a live Postgres for integration tests.
package storetest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
)

const envDSN = "TEST_POSTGRES_DSN"

// Open returns a gateway with a freshly created, empty schema, or skips the
// test when TEST_POSTGRES_DSN is unset. Tests using it must not run in parallel.
func Open(t *testing.T) *store.Gateway {
	t.Helper()

	dsn := os.Getenv(envDSN)
	if dsn == "" {
		t.Skipf("%s not set; skipping postgres integration test", envDSN)
	}

	ctx := context.Background()
	gw, err := store.Open(ctx, dsn, store.Options{MaxConns: 4, Timeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(gw.Close)

	require.NoError(t, gw.EnsureSchema(ctx))
	Truncate(t, gw)
	return gw
}

func Truncate(t *testing.T, gw *store.Gateway) {
	t.Helper()
	_, err := gw.DB().Exec(context.Background(), `TRUNCATE users, orders, offers`)
	require.NoError(t, err)
}
