package main

import (
	"os"

	"github.com/aretw0/pricewalk/internal/cli"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:     "simulate",
	Aliases: []string{"sim"},
	Short:   "Generate price traces and print a per-step summary",
	Long: `Generates num-traces independent traces of time-steps transitions each.
Flags override the simulation section of the config file.

Examples:
  pricewalk simulate --process level --param level=120 --param alpha=0.3
  pricewalk simulate --process frequency --seed 7 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.SimulateOptions{GlobalOptions: globalOptions(cmd)}
		flags := cmd.Flags()

		opts.Process, _ = flags.GetString("process")
		opts.Parallelism, _ = flags.GetInt("parallelism")
		opts.Params, _ = flags.GetStringToString("param")
		opts.JSON, _ = flags.GetBool("json")
		opts.Rows, _ = flags.GetInt("rows")

		if flags.Changed("start-price") {
			v, _ := flags.GetInt("start-price")
			opts.StartPrice = &v
		}
		if flags.Changed("time-steps") {
			v, _ := flags.GetInt("time-steps")
			opts.TimeSteps = &v
		}
		if flags.Changed("num-traces") {
			v, _ := flags.GetInt("num-traces")
			opts.NumTraces = &v
		}
		if flags.Changed("seed") {
			v, _ := flags.GetUint64("seed")
			opts.Seed = &v
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunSimulate(ctx, os.Stdout, opts)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringP("process", "p", "", "Process kind: level, momentum or frequency")
	simulateCmd.Flags().Int("start-price", 0, "Initial price of every trace")
	simulateCmd.Flags().IntP("time-steps", "t", 0, "Transitions per trace")
	simulateCmd.Flags().IntP("num-traces", "n", 0, "Number of independent traces")
	simulateCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (random when omitted)")
	simulateCmd.Flags().Int("parallelism", 0, "Traces generated concurrently")
	simulateCmd.Flags().StringToString("param", nil, "Process parameter as key=value (repeatable)")
	simulateCmd.Flags().Bool("json", false, "Print the full simulation as JSON")
	simulateCmd.Flags().Int("rows", 0, "Steps shown in the summary table")
}
