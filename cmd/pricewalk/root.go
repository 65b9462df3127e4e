package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pricewalk/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pricewalk",
	Short: "pricewalk simulates stock prices with simple Markov processes",
	Long: `pricewalk generates independent price traces from three toy Markov models:
mean reversion to a level, momentum reversal, and frequency balancing.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "pricewalk.yaml", "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.GlobalOptions{ConfigPath: configPath, LogLevel: logLevel}
}
