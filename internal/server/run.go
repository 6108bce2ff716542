package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"go.uber.org/zap"
)

// Run serves handler on the configured address until ctx is cancelled, then
// shuts the server down gracefully. If ready is non-nil the bound address is
// offered on it once the listener is open. The send never blocks, so callers
// should pass a buffered channel.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, handler http.Handler, ready chan<- string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:           cfg.Address,
		Handler:        handler,
		ReadTimeout:    cfg.ReadTimeoutDuration(),
		MaxHeaderBytes: int(cfg.MaxHeaderBytes()),
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}

	logger.Info("dashboard server listening",
		zap.String("op", "server.Run"),
		zap.String("address", listener.Addr().String()),
	)
	if ready != nil {
		select {
		case ready <- listener.Addr().String():
		default:
			logger.Warn("ready channel not accepting, address not published", zap.String("op", "server.Run"))
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeoutSeconds*time.Second)
	defer cancel()

	logger.Info("shutting down dashboard server", zap.String("op", "server.Run"))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
