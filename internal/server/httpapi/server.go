package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/logging"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type HTTPServer struct {
	address string
	handler http.Handler
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, h http.Handler) *HTTPServer {
	return &HTTPServer{
		address: a,
		handler: h,
		logger:  l.With("module", "http_server"),
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: readHeaderTimeout}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
