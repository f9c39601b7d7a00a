package servehttp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var ShutdownTimeout = 3 * time.Second

// Serve runs srv until ctx is done, then shuts it down gracefully. New requests are rejected
// once shutdown starts, in-flight requests get ShutdownTimeout to complete.
func Serve(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("http server listening on %s", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logrus.Infof("[QUIT] shutdown signal has been received, the service will exit in %s.", ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logrus.Info("[QUIT] http server is shutdown gracefully")
	return nil
}
