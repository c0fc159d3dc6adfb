package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		addr      string
		namespace string
		clearIcon bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the configured fields over HTTP",
		Long: `Serve mounts every configured field and exposes its operations as JSON
routes under /fields, rendered markup under /fields/{name}/, the stylesheet
under /assets and Prometheus metrics under /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.logger()
			store, err := flags.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			options := []server.Option{
				server.WithLogger(logger),
				server.WithNamespace(namespace),
			}
			if clearIcon {
				options = append(options, server.WithIconHandler(func(name string, h field.Handle) {
					logger.Debug("icon cleared field", "field", name)
					h.Clear()
				}))
			}
			srv, err := server.New(store, options...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr, "fields", store.Names())
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
			logger.Info("shutting down")
			return httpServer.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&namespace, "metrics-namespace", "textfield", "Prometheus metrics namespace")
	cmd.Flags().BoolVar(&clearIcon, "clear-icon", true, "clear a field when its icon is clicked")

	return cmd
}
