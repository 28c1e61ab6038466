package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"ragdemo/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve retrieval and answering over HTTP",
	Long: `Start an HTTP server with the following endpoints:

  GET  /health     status, model and document count
  GET  /documents  the loaded knowledge base
  POST /retrieve   {"query": "...", "min_score": 1}
  POST /prompt     {"query": "...", "mode": "naive|rag"}
  POST /answer     {"query": "...", "mode": "naive|rag|both"}

Examples:
  ragdemo serve
  ragdemo serve --addr 127.0.0.1:9000 --provider ollama`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := buildComponents()
	if err != nil {
		return err
	}
	answerUC, model, err := buildAnswer(c)
	if err != nil {
		return err
	}

	addr := GetConfig().Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(server.Deps{
		Retrieve: c.retrieve,
		Prompts:  c.prompts,
		Answer:   answerUC,
		Model:    model.ModelName(),
		Logger:   GetLogger(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	GetLogger().Info("shutting down", zap.String("addr", addr))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
