package cmd

import (
	"assetplanner/api"
	"assetplanner/internal/app"
	"assetplanner/internal/config"
	"assetplanner/internal/logger"
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// Env holds the process-level settings; everything about the
// simulation itself lives in the config document instead.
type Env struct {
	Port       int    `env:"PLANNER_PORT" envDefault:"3009"`
	ConfigPath string `env:"PLANNER_CONFIG" envDefault:"asset_planner_config.json"`
}

func InitializeDependencies() (*api.ApiHandler, error) {
	return &api.ApiHandler{
		SimulationHandler: app.SimulationHandler{},
		Logger:            logger.New(),
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "assetplanner",
	Short: "Project personal asset growth from monthly contributions and compounding rates",
}

var (
	flagConfigPath string
	flagPort       int
)

func Execute() {
	settings := Env{}
	if err := env.Parse(&settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", settings.ConfigPath, "path to the config document")
	serveCmd.Flags().IntVarP(&flagPort, "port", "p", settings.Port, "port to listen on")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunContext() context.Context {
	return context.WithValue(context.Background(), logger.ContextKey, logger.New())
}

// loadConfigOrDefault recovers from a malformed config document by
// warning and running on the defaults; only a missing file is silent.
func loadConfigOrDefault(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("%v - falling back to defaults", err)
	}
	return cfg
}
