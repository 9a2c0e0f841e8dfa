package shutdown

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func CreateGracefulShutdownChannel() chan os.Signal {
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	return gracefulShutdown
}

// ListenForShutdown blocks until a signal arrives or done is closed, then runs
// callback and waits at most timeout for it to finish.
func ListenForShutdown(
	notify chan os.Signal,
	done chan bool,
	callback func(),
	timeout time.Duration,
	logger *zap.Logger,
) {
	select {
	case sig := <-notify:
		logger.Sugar().Infow("Received shutdown signal", zap.String("signal", sig.String()))
	case <-done:
		logger.Sugar().Infow("Process finished, shutting down")
	}

	finished := make(chan struct{})
	go func() {
		callback()
		close(finished)
	}()

	select {
	case <-finished:
		logger.Sugar().Infow("Shutdown complete")
	case <-time.After(timeout):
		logger.Sugar().Warnw("Shutdown timed out", zap.Duration("timeout", timeout))
	}
}
