package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/salarymoon/internal/config"
	"github.com/iwvelando/salarymoon/internal/server"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveServerConfig string
	serveRatesConfig  string
	serveAddress      string
	serveMaxFormSize  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison web server",
	Long:  `Start an HTTP server that serves the landing page and the /evaluate comparison endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveServerConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serveRatesConfig, "config", "", "path to jurisdiction rate configuration (overrides ratesFile)")
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address override")
	serveCmd.Flags().StringVar(&serveMaxFormSize, "max-form-size", "", "maximum evaluate form size override (e.g. 64K)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	serverConf, err := server.LoadConfig(serveServerConfig)
	if err != nil {
		return fmt.Errorf("failed to load server configuration at %s: %w", serveServerConfig, err)
	}
	if err := applyServeOverrides(serverConf, serveAddress, serveMaxFormSize); err != nil {
		return err
	}

	logger, err := initializeLogger(serverConf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ratesPath := serverConf.RatesFile
	if serveRatesConfig != "" {
		ratesPath = serveRatesConfig
	}
	conf, err := loadRates(ratesPath)
	if err != nil {
		return err
	}
	rates, err := conf.RateTable()
	if err != nil {
		return fmt.Errorf("failed to build rate table: %w", err)
	}
	logger.Info("jurisdiction rates loaded",
		zap.String("op", "main.runServe"),
		zap.Int("jurisdictions", rates.Len()),
		zap.String("source", ratesSource(ratesPath)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.NewHandler(logger, rates, serverConf.FormSizeBytes(), version)
	return server.Serve(ctx, logger, serverConf.Address, handler)
}

// applyServeOverrides lets non-empty command line values win over the server config file.
func applyServeOverrides(conf *server.Config, address, maxFormSize string) error {
	if address != "" {
		conf.Address = address
	}
	if maxFormSize != "" {
		if err := conf.SetMaxFormSize(maxFormSize); err != nil {
			return fmt.Errorf("--max-form-size: %w", err)
		}
	}
	return nil
}

// loadRates reads the rate configuration at path, or the built-in reference
// table when path is empty.
func loadRates(path string) (*config.Configuration, error) {
	if path == "" {
		return config.DefaultConfiguration(), nil
	}
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}
	return conf, nil
}

func ratesSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
