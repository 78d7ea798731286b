package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/TwistedSD/Financial-Calculators/internal/server"
	"github.com/TwistedSD/Financial-Calculators/internal/store"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON API",
		Long: `Starts an HTTP server exposing every calculator under /api/v1.

Endpoints:
  GET    /api/v1/health
  GET    /api/v1/calculators
  POST   /api/v1/{calculator}        (?save=true keeps the inputs)
  POST   /api/v1/batch               (?format=html|csv|yaml|... renders a report)
  GET    /api/v1/{calculator}/saved
  DELETE /api/v1/{calculator}/saved`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = opts.app.ListenAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, err := store.Open(ctx, opts.app)
			if err != nil {
				return fmt.Errorf("open %s store: %w", opts.app.Store, err)
			}
			defer st.Close()

			srv := server.New(opts.engine(),
				server.WithStore(st),
				server.WithLogger(opts.logger),
				server.WithDisplay(opts.currency, opts.locale),
			)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				opts.logger.Infof("listening on %s (store: %s)", addr, opts.app.Store)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			opts.logger.Infof("shutting down")
			return httpServer.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default FINCALC_LISTEN_ADDR or :8080)")
	return cmd
}
