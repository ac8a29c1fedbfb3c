package public

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/langowen/fxdash/deploy/config"
	mwLogger "github.com/langowen/fxdash/internal/dashboard/ports/http/public/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	Server   *http.Server
	cfg      *config.Config
	sessions Sessions
	prefs    Preferences
	metrics  http.Handler
}

func NewServer(server *http.Server, cfg *config.Config, sessions Sessions, prefs Preferences) *Server {
	return &Server{
		Server:   server,
		cfg:      cfg,
		sessions: sessions,
		prefs:    prefs,
		metrics:  promhttp.Handler(),
	}
}

// Router builds the full route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New())
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", s.metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Get("/translations", s.GetTranslations)

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", s.GetPreferences)
			r.Put("/", s.UpdatePreferences)
			r.Post("/theme/toggle", s.ToggleTheme)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.withSession)

			r.Get("/currencies", s.GetCurrencies)
			r.Get("/state", s.GetState)
			r.Put("/state/amount", s.SetAmount)
			r.Put("/state/from", s.SetFrom)
			r.Put("/state/to", s.SetTo)
			r.Put("/state/range", s.SetRange)
			r.Post("/convert", s.Convert)
			r.Post("/swap", s.Swap)
			r.Get("/chart", s.GetChart)
			r.Get("/history", s.GetHistory)
			r.Delete("/session", s.EndSession)
		})
	})

	return r
}

func StartServer(ctx context.Context, sessions Sessions, prefs Preferences, cfg *config.Config) <-chan struct{} {
	serverConfig := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	server := NewServer(serverConfig, cfg, sessions, prefs)
	serverConfig.Handler = server.Router()

	doneChan := make(chan struct{})

	go func() {
		if err := server.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string, details ...string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	errorText := message
	if len(details) > 0 {
		errorText += "\nDetails: " + details[0]
	}

	if _, err := w.Write([]byte(errorText)); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
