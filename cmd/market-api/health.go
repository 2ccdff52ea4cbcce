package main

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func newGRPCServer() (*grpc.Server, *health.Server) {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return s, hs
}

func probeStorage(ctx context.Context, db pinger, hs *health.Server) {
	st := healthpb.HealthCheckResponse_SERVING
	if err := db.Ping(ctx); err != nil {
		log.Printf("[health] storage ping failed: %v", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	hs.SetServingStatus("", st)
}

// watchStorage reports storage reachability as the overall serving status
// until ctx is done.
func watchStorage(ctx context.Context, db pinger, hs *health.Server, every time.Duration) {
	probeStorage(ctx, db, hs)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			probeStorage(ctx, db, hs)
		}
	}
}
