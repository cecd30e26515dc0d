package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"panelstore/internal/config"
	"panelstore/internal/db"
	"panelstore/internal/httpserver"
	cartrepo "panelstore/internal/repository/cart"
	orderrepo "panelstore/internal/repository/order"
	"panelstore/internal/retention"
	cartsvc "panelstore/internal/service/cart"
	checkoutsvc "panelstore/internal/service/checkout"
	"panelstore/internal/service/confirmation"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer rdb.Close()

	cartRepo := cartrepo.NewRedis(rdb)
	orderRepo := orderrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, logger)
	checkoutService := checkoutsvc.New(cartService, cartRepo, orderRepo, cfg.CountryCode, logger)
	resolver := confirmation.NewResolver(orderRepo, cartRepo, logger)

	pruneCtx, stopPruner := context.WithCancel(ctx)
	defer stopPruner()
	go retention.NewPruner(orderRepo, cfg.OrderRetention, logger).Run(pruneCtx)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, rdb, httpserver.Deps{
		CartSvc:       cartService,
		CheckoutSvc:   checkoutService,
		Resolver:      resolver,
		AdminWhatsApp: cfg.AdminWhatsApp,
		MaxProofBytes: cfg.MaxProofBytes,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
