// Package server boots the application: config, Mongo, cache, storage,
// the payment client, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/turboost/store/app/controllers"
	"github.com/turboost/store/app/repositories"
	"github.com/turboost/store/app/routes"
	"github.com/turboost/store/app/services"
	"github.com/turboost/store/config"
	"github.com/turboost/store/pkg/cache"
	"github.com/turboost/store/pkg/database"
	"github.com/turboost/store/pkg/logger"
	"github.com/turboost/store/pkg/router"
	"github.com/turboost/store/pkg/storage"
)

const shutdownTimeout = 15 * time.Second

// Run boots every subsystem and serves until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := database.Connect(ctx, config.MongoURI(), config.MongoDB())
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongo disconnect", "error", err)
		}
	}()

	if name := config.Get("LOG_MONGO_COLLECTION", ""); name != "" {
		sink := logger.AttachMongo(db.Collection(name))
		defer sink.Close()
	}

	cache.Connect()
	storage.Connect()

	admins := repositories.NewAdminRepository(db)
	if err := admins.EnsureIndexes(ctx); err != nil {
		logger.Warn("admin indexes", "error", err)
	}
	products := repositories.NewProductRepository(db)
	settings := repositories.NewSettingsRepository(db)

	uploader := services.NewUploader(storage.Default())

	var payments controllers.PreferenceCreator
	if token := config.MercadoPagoToken(); token != "" {
		svc, err := services.NewPaymentService(token)
		if err != nil {
			return err
		}
		payments = svc
	} else {
		logger.Warn("MERCADOPAGO_ACCESS_TOKEN not set, payment route disabled")
	}

	r := router.New()
	routes.Register(r, routes.Controllers{
		Auth:     controllers.NewAuthController(admins),
		Products: controllers.NewProductController(products, uploader),
		Settings: controllers.NewSettingsController(settings, uploader),
		Checkout: controllers.NewCheckoutController(payments),
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}

// NewRouter builds the full route table without starting a listener.
// The CLI uses it to print routes.
func NewRouter() *router.Router {
	r := router.New()
	routes.Register(r, routes.Controllers{
		Auth:     controllers.NewAuthController(nil),
		Products: controllers.NewProductController(nil, nil),
		Settings: controllers.NewSettingsController(nil, nil),
		Checkout: controllers.NewCheckoutController(nil),
	})
	return r
}
