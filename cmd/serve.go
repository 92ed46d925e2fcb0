package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/imgprint/imgprint/internal/config"
	"github.com/imgprint/imgprint/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hashing API server",
	Long: `Start the imgprint HTTP API.
The API accepts image uploads and responds with their perceptual
fingerprints, and can compare two uploads by Hamming distance.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (0 = config default)")
	serveCmd.Flags().String("host", "", "Host to bind to (empty = config default)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	host := cfg.Server.Host
	if v := mustGetString(cmd, "host"); v != "" {
		host = v
	}
	port := cfg.Server.Port
	if v := mustGetInt(cmd, "port"); v > 0 {
		port = v
	}

	srv := web.NewServer(cfg, host, port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
