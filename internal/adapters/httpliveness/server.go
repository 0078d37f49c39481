package httpliveness

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Server responde a sondas de uptime externas. No forma parte del protocolo del bot.
type Server struct {
	mux *http.ServeMux
	srv *http.Server
	log *slog.Logger
}

func New(log *slog.Logger) *Server {
	s := &Server{mux: http.NewServeMux(), log: log.With("component", "liveness")}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("running"))
}

func (s *Server) Handler() http.Handler { return s.mux }

// Start bloquea hasta que ctx se cancela o el listener falla.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("🌐 HTTP listening", "addr", addr)
		errCh <- s.srv.ListenAndServe()
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
		return s.srv.Shutdown(shutdownCtx)
	}
}
