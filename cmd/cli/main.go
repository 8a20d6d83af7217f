package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/room-ranker/cmd/cli/commands"
	"github.com/jakechorley/room-ranker/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        = &commands.AppContext{Logger: zap.NewNop(), Out: os.Stdout}
	logFile    *os.File
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "room-ranker",
		Short: "Room Ranker CLI - Recommend study rooms",
		Long:  `A CLI tool that ranks free rooms against your preferences, recent history and appetite for variety.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Logger.Sync()
			if logFile != nil {
				logFile.Close()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "local", "Environment name, used as the log file prefix")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ./room_ranker_config.yaml or ~/room_ranker_config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.DemoCmd(app))
	rootCmd.AddCommand(commands.RankCmd(app))
	rootCmd.AddCommand(commands.RoomsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger and records the config location
func initApp() error {
	logger, f, err := logging.InitLogger(logging.Options{Env: env, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger = logger
	app.ConfigPath = configPath
	logFile = f

	app.Logger.Debug("Starting application",
		zap.String("environment", env),
		zap.String("config_path", configPath))

	return nil
}
