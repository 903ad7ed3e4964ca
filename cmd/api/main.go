package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"prizedraw/internal/config"
	"prizedraw/internal/db"
	"prizedraw/internal/gateway"
	"prizedraw/internal/httpserver"
	cartrepo "prizedraw/internal/repository/cart"
	competitionrepo "prizedraw/internal/repository/competition"
	orderrepo "prizedraw/internal/repository/order"
	cartsvc "prizedraw/internal/service/cart"
	catalogsvc "prizedraw/internal/service/catalog"
	checkoutsvc "prizedraw/internal/service/checkout"
	reconcilesvc "prizedraw/internal/service/reconcile"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var gw gateway.PaymentGateway
	if cfg.StripeSecretKey != "" {
		gw = gateway.NewStripe(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	} else {
		logger.Printf("STRIPE_SECRET_KEY not set, checkout and reconciliation are disabled")
	}

	competitionRepo := competitionrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)

	catalogService := catalogsvc.New(competitionRepo)
	cartService := cartsvc.New(cartRepo, competitionRepo)
	checkoutService := checkoutsvc.New(cartRepo, competitionRepo, orderRepo, gw, logger)
	reconcileService := reconcilesvc.New(orderRepo, competitionRepo, gw, logger, cfg.GatewayTimeout)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:   catalogService,
		CartSvc:      cartService,
		CheckoutSvc:  checkoutService,
		ReconcileSvc: reconcileService,
	}, cfg.AllowedOrigins)
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
