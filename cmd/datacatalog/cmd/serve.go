package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbase/datacatalog/internal/server"
	"github.com/kbase/datacatalog/pkg/logging"
)

var (
	serveHost string
	servePort int
)

// serveCmd serves the loaded catalog over a read-only HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over a read-only HTTP API",
	Long: `Serve loads the catalog once and exposes it over HTTP. The catalog is
immutable for the lifetime of the process; restart the server to pick up
document changes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		cfg := server.DefaultConfig()
		cfg.Host = serveHost
		cfg.Port = servePort

		srv := server.New(cat, cfg, logging.Default())

		// Shut down when the signal context is cancelled.
		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
