package cmd

import (
	"fmt"
	"math"

	"networth/feature/item"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// itemCmd represents the item command
var itemCmd = &cobra.Command{
	Use:   "item <item_bytes>",
	Short: "Value a single encoded item",
	Long:  `Decodes a base64 gzip item stack, as carried by auction listings, and prints its craft cost and market value.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		it, err := rt.engine.Codec().Item(args[0])
		if err != nil {
			return err
		}
		a := rt.engine.Appraise(cmd.Context(), it)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, it.String())
		fmt.Fprintf(out, "Craft cost: %s coins\n", coins(a.CraftCost))
		fmt.Fprintf(out, "Value:      %s coins (%s)\n", coins(a.Value), a.Outcome)
		if a.Match != nil {
			fmt.Fprintf(out, "Compared to %s listed at %s coins (similarity %.3f)\n",
				a.Match.Item.ID, coins(a.Match.Price), item.Similarity(it, a.Match.Item))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
}

func coins(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
