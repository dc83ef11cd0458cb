package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/sixes-backend/internal/config"
	"github.com/rocketscienceinc/sixes-backend/internal/telemetry"
	"github.com/rocketscienceinc/sixes-backend/internal/transport/console"
	"github.com/rocketscienceinc/sixes-backend/internal/usecase"
	"go.opentelemetry.io/otel"
)

const tracerName = "github.com/rocketscienceinc/sixes-backend/internal/usecase"

// RunApp - runs a console game session until input ends, the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	shutdownTracing, err := telemetry.Setup(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("could not set up tracing: %w", err)
	}

	defer func() {
		if err = shutdownTracing(context.Background()); err != nil {
			log.Error("could not flush traces", "error", err)
		}
	}()

	gameUseCase := usecase.NewGameManager(logger, otel.Tracer(tracerName))

	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console session")
		consoleServer := console.New(logger, gameUseCase, conf.Console)
		consoleErrCh <- consoleServer.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		log.Info("Console session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
