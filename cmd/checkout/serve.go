package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/config"
	"github.com/DanielPopoola/centroeduc-checkout/internal/infrastructure/cielo"
	"github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/centroeduc-checkout/internal/observability"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the checkout HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(*configPath)
		},
	}
}

func serve(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Cielo.RequireCredentials(); err != nil {
		return err
	}

	logger := cfg.Logger.NewLoggerFor(cfg.Primary.Env)
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"cielo_url", cfg.Cielo.APIURL(),
		"capture_immediately", cfg.Payment.CaptureImmediately,
		"capture_immediately_donation", cfg.Payment.CaptureImmediatelyDonation,
		"enable_3ds", cfg.Payment.Enable3DS,
	)

	shutdownTracer, err := observability.InitTracer(cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	catalog, err := cfg.Catalog.Build()
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	gateway := cielo.NewClient(cfg.Cielo)

	checkoutService := services.NewCheckoutService(gateway, catalog, services.CheckoutOptions{
		MonthlyRate:                cfg.Payment.MonthlyRate(),
		CaptureImmediately:         cfg.Payment.CaptureImmediately,
		CaptureImmediatelyDonation: cfg.Payment.CaptureImmediatelyDonation,
		Authenticate:               cfg.Payment.Enable3DS,
		SoftDescriptor:             cfg.Payment.SoftDescriptor,
	}, logger)
	captureService := services.NewCaptureService(gateway, logger)
	voidService := services.NewVoidService(gateway, logger)
	quoteService := services.NewQuoteService(catalog, cfg.Payment.MonthlyRate())

	h := handlers.NewHandlers(
		checkoutService,
		captureService,
		voidService,
		quoteService,
		logger,
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handlers.NewRouter(h, logger, cfg.Tracing.ServiceName),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
	return nil
}
