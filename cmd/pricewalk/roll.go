package main

import (
	"os"

	"github.com/aretw0/pricewalk/internal/cli"
	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll dice and print the total of each throw",
	Long: `Rolls the given dice and prints one total per throw.

Example:
  pricewalk roll --sides 15,6 --rolls 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RollOptions{GlobalOptions: globalOptions(cmd)}
		opts.Sides, _ = cmd.Flags().GetIntSlice("sides")
		opts.Rolls, _ = cmd.Flags().GetInt("rolls")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		if cmd.Flags().Changed("seed") {
			v, _ := cmd.Flags().GetUint64("seed")
			opts.Seed = &v
		}
		return cli.RunRoll(cmd.Context(), os.Stdout, opts)
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().IntSlice("sides", []int{6}, "Side count of each die")
	rollCmd.Flags().IntP("rolls", "r", 1, "Number of throws")
	rollCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (random when omitted)")
	rollCmd.Flags().Bool("json", false, "Print the roll as JSON")
}
