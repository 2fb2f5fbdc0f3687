package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpadapter "svw.info/battleship/internal/adapters/http"
	"svw.info/battleship/internal/infrastructure/sessions"
	"svw.info/battleship/internal/logging"
	"svw.info/battleship/internal/usecase"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func requestLogger(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Int("bytes", sw.bytes).
			Dur("dur", time.Since(start)).
			Msg("http")
	})
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and heatmaps over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Addr = addr
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Format, nil)

			store, err := sessions.NewLRU(cfg.Sessions.Capacity, func(id string) {
				log.Debug().Str("session", id).Msg("session released")
			})
			if err != nil {
				return err
			}
			uc := usecase.NewService(store, usecase.Defaults{
				Rows:    cfg.Board.Rows,
				Cols:    cfg.Board.Cols,
				MaxRows: cfg.Board.MaxRows,
				MaxCols: cfg.Board.MaxCols,
				Fleet:   cfg.Fleet,
			}, log)
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			h.Register(mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           requestLogger(log, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Info().
				Str("addr", cfg.Addr).
				Int("rows", cfg.Board.Rows).
				Int("cols", cfg.Board.Cols).
				Int("ships", len(cfg.Fleet)).
				Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("server error")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
