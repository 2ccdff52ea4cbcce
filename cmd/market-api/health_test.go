package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct{ fail atomic.Bool }

func (p *fakePinger) Ping(context.Context) error {
	if p.fail.Load() {
		return errors.New("db down")
	}
	return nil
}

func overall(hs *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestProbeStorage(t *testing.T) {
	_, hs := newGRPCServer()
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, overall(hs))

	p := &fakePinger{}
	probeStorage(context.Background(), p, hs)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, overall(hs))

	p.fail.Store(true)
	probeStorage(context.Background(), p, hs)
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, overall(hs))
}

func TestWatchStorage_FollowsPingerUntilCancelled(t *testing.T) {
	_, hs := newGRPCServer()
	p := &fakePinger{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchStorage(ctx, p, hs, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return overall(hs) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	p.fail.Store(true)
	require.Eventually(t, func() bool {
		return overall(hs) == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchStorage did not return after cancel")
	}
}
