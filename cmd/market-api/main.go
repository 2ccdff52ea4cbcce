// @title       Orders & Offers API
// @version     1.0
// @description Users (customers/executors), work orders and the offers made on them.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-ofertas/internal/config"
	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
	"github.com/MikeMC777/ordenes-ofertas/internal/order"
	"github.com/MikeMC777/ordenes-ofertas/internal/seed"
	"github.com/MikeMC777/ordenes-ofertas/internal/store"
	"github.com/MikeMC777/ordenes-ofertas/internal/user"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := store.Open(ctx, cfg.PostgresDSN, store.Options{MaxConns: cfg.DBMaxConns, Timeout: cfg.DBTimeout})
	if err != nil {
		log.Fatalf("[main] %v", err)
	}
	defer gw.Close()

	if err := gw.EnsureSchema(ctx); err != nil {
		log.Fatalf("[main] %v", err)
	}

	// Seeding finishes before the listeners open. A failure is logged and the
	// service keeps running on whatever the store holds.
	if cfg.SeedEnabled {
		runSeed(ctx, gw, cfg.SeedFile)
	}

	db, t := gw.DB(), gw.Timeout()
	router := newRouter(repos{
		users:  user.NewPGRepo(db, t),
		orders: order.NewPGRepo(db, t),
		offers: offer.NewPGRepo(db, t),
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcSrv, hs := newGRPCServer()
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("[main] grpc listen %s: %v", cfg.GRPCAddr, err)
	}
	go watchStorage(ctx, gw, hs, 15*time.Second)
	go func() {
		log.Printf("[main] grpc health listening on %s", cfg.GRPCAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			log.Printf("[main] grpc serve: %v", err)
		}
	}()

	go func() {
		log.Printf("[main] http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")
	hs.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] http shutdown: %v", err)
	}
	grpcSrv.GracefulStop()
}

func runSeed(ctx context.Context, gw *store.Gateway, file string) {
	data, err := seed.Load(file)
	if err != nil {
		log.Printf("[seed] %v", err)
		return
	}
	if _, err := seed.New(seed.NewPGTxRunner(gw), data).SeedIfEmpty(ctx); err != nil {
		log.Printf("[seed] failed, nothing was inserted: %v", err)
	}
}
