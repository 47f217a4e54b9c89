package cmd

import (
	"fmt"

	"golang-devtools/internal/adapter/infrastructure/file"
	"golang-devtools/internal/pkg/config"
	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/port"

	"github.com/spf13/cobra"
)

var (
	configFlag   string
	outputFlag   string
	logLevelFlag string

	cfg         *config.Config
	fileManager port.FileManager = file.NewManagerAdapter()
)

var rootCmd = &cobra.Command{
	Use:          "golang-devtools",
	Short:        "golang-devtools is a collection of developer utilities",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadWithEnv(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if logLevelFlag != "" {
			loaded.Logging.Level = logLevelFlag
		}

		logging.InitLogger(loaded.Logging)
		cfg = loaded

		return validateOutputFormat(outputFlag)
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", formatText, "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")
}
