package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the cipher HTTP server",
	Long: `Run the cipher HTTP server.

Endpoints:
  GET  /                      server status
  GET  /algorithms            enabled algorithms
  POST /{mode}/{algorithm}    body {"text": "...", "key": "..."}

The listen address defaults to BIND_ADDRESS and PORT, or the bind_address
and port configuration attributes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("bind-address") {
			cfg.BindAddress, _ = cmd.Flags().GetString("bind-address")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, newCipherServer())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("bind-address", "b", "0.0.0.0", "server bind address")
	serverCmd.Flags().IntP("port", "p", 8000, "server listen port")
}

func newCipherServer() *server.Server {
	s := server.NewServer(cfg, server.WithAccessLog(os.Stdout), server.WithLogger(slog.Default()))
	endpoints.RegisterAll(s, cipherOptions...)
	return s
}

// runServer serves until ctx is done, then drains in-flight requests.
func runServer(ctx context.Context, s *server.Server) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.Start()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}
