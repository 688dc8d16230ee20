package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// networthCmd represents the networth command
var networthCmd = &cobra.Command{
	Use:   "networth <profile.json> <player>",
	Short: "Value a player in a saved profile document",
	Long:  `Reads a profile document from disk, values the given player against live market data and prints the breakdown.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		profile, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		nw, err := rt.engine.Calculate(cmd.Context(), profile, args[1])
		if err != nil {
			return err
		}
		rt.logger.Info("Networth calculated", zap.String("player", nw.Owner), zap.Float64("total", nw.Total()))

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(nw, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode breakdown: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, nw.Summary())
		return nil
	},
}

func init() {
	networthCmd.Flags().Bool("json", false, "Print the breakdown as JSON")
	RootCmd.AddCommand(networthCmd)
}
