package main

import (
	"context"
	"converter/internal/api"
	"converter/internal/api/handler/v1handler"
	"converter/internal/config"
	"converter/internal/converter"
	"converter/pkg/logger"
	"converter/pkg/metrics"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// setupTelemetry registers an OpenTelemetry meter provider exporting into reg
// and returns it along with a cleanup function flushing it.
func setupTelemetry(ctx context.Context, reg metrics.Registry) (converter.Deps, func(ctx context.Context)) {
	mp, err := metrics.NewMeterProvider(reg)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	deps := converter.Deps{
		MeterProvider:  mp,
		TracerProvider: otel.GetTracerProvider(),
	}

	return deps, func(ctx context.Context) {
		logger.Info(ctx, "stopping meter provider...")
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API server",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := metrics.NewRegistry()
			telemetry, stopTelemetry := setupTelemetry(ctx, reg)

			conv, err := converter.New(telemetry, converter.NewOptions(a.cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create converter", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, a.cfg, api.Deps{
				Deps:     v1handler.Deps{Converter: conv},
				Registry: reg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopTelemetry(shutdownCtx)
		},
	}

	return cmd
}
