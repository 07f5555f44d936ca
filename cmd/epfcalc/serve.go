package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Amanile/epf-calculator/internal/config"
	"github.com/Amanile/epf-calculator/internal/logging"
	"github.com/Amanile/epf-calculator/internal/server"
	"github.com/Amanile/epf-calculator/pkg/constants"
	"github.com/Amanile/epf-calculator/pkg/epf"
)

var (
	flagServerConfig string
	flagAddress      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web calculator and JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&flagAddress, "address", "", "listen address override")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	serverConf, err := server.LoadConfig(flagServerConfig)
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}
	if flagAddress != "" {
		serverConf.Address = flagAddress
	}

	logger, err := logging.NewLogger(serverConf.Logging, flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// The scenario configuration is optional here; it only seeds the form
	// defaults served by /api/defaults.
	defaults := epf.DefaultInput()
	if conf, confErr := config.LoadConfiguration(flagConfig); confErr == nil {
		defaults = conf.Defaults.Input()
	} else {
		logger.Debug("scenario configuration not loaded; using built-in defaults",
			zap.String("op", "main"),
			zap.Error(confErr),
		)
	}

	handler := server.NewHandler(logger, serverConf.RequestSizeBytes(), version, defaults)

	srv := &http.Server{
		Addr:         serverConf.Address,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server started",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server encountered an error",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logger.Info("shutdown signal received, stopping server",
		zap.String("op", "main"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server gracefully: %w", err)
	}

	logger.Info("server stopped",
		zap.String("op", "main"),
	)
	return nil
}
