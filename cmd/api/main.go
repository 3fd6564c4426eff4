package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopapi/internal/config"
	"shopapi/internal/httpserver"
	"shopapi/internal/logging"
	"shopapi/internal/seed"
	authsvc "shopapi/internal/service/auth"
	cartsvc "shopapi/internal/service/cart"
	categorysvc "shopapi/internal/service/category"
	ordersvc "shopapi/internal/service/order"
	productsvc "shopapi/internal/service/product"
	usersvc "shopapi/internal/service/user"
	"shopapi/internal/store"
)

func main() {
	cfg, err := config.Load("./configs", os.Getenv("APP_ENV"))
	if err != nil {
		logging.Base().Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)

	st := store.New()
	if cfg.Seed.Demo {
		if err := seed.Apply(st); err != nil {
			logger.Error("seed demo data", "error", err)
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	srv := httpserver.New(cfg, logger, httpserver.Deps{
		ProductSvc:  productsvc.New(st),
		CategorySvc: categorysvc.New(st),
		UserSvc:     usersvc.New(st),
		CartSvc:     cartsvc.New(st),
		OrderSvc:    ordersvc.New(st),
		AuthSvc:     authsvc.New(st, cfg.Auth.TokenTTL),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", cfg.App.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		logger.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	} else {
		logger.Info("server stopped")
	}
}
