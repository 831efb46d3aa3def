package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server hosts the mock API on a bound listener. Binding happens in
// NewServer so callers can ask for port 0 and read the real address
// before any request arrives.
type Server struct {
	listener net.Listener
	server   *http.Server
	log      *zap.Logger
}

// NewServer binds addr and prepares the mock API. Close or Serve must
// be called to release the listener.
func NewServer(addr string, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind mock api: %w", err)
	}
	return &Server{
		listener: listener,
		server:   &http.Server{Handler: newHandler(log).routes()},
		log:      log,
	}, nil
}

// Addr reports the bound address, including any ephemeral port.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// BaseURL reports the http URL of the bound address.
func (s *Server) BaseURL() string {
	return "http://" + s.Addr()
}

// Serve blocks until the context is cancelled or the server fails,
// shutting down gracefully on cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		return errors.New("mockapi: context is nil")
	}
	s.log.Info("mock api listening", zap.String("addr", s.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}

// Start runs Serve on a goroutine and returns a stop function that
// shuts the server down and waits for it to exit.
func (s *Server) Start(ctx context.Context) (stop func() error) {
	serveCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(serveCtx)
	}()
	return func() error {
		cancel()
		return <-done
	}
}

// Close releases the listener without serving.
func (s *Server) Close() error {
	return s.listener.Close()
}
