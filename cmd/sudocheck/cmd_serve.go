package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "svw.info/sudocheck/internal/adapters/http"
	"svw.info/sudocheck/internal/filler"
	"svw.info/sudocheck/internal/infrastructure/storage"
	"svw.info/sudocheck/internal/usecase"
	"svw.info/sudocheck/internal/validator"
)

var (
	serveAddr     string
	servePersist  string
	serveLogLevel string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the check and fill API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
	SilenceUsage: true,
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory")
	commandServe.Flags().StringVar(&serveLogLevel, "log-level", "info", "debug|info|warn|error")
	mainCommand.AddCommand(commandServe)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		lvl,
	)), nil
}

func serve() error {
	logger, err := newLogger(serveLogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := os.MkdirAll(servePersist, 0o755); err != nil {
		return err
	}
	st := storage.NewFS(servePersist)
	uc := usecase.NewService(validator.New(), filler.New(), st, logger)
	h := httpadapter.New(uc, logger)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	logger.Info("listening",
		zap.String("addr", serveAddr),
		zap.String("persist", servePersist),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
