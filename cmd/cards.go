package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rogersnm/folio/internal/markdown"
	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List post cards with thumbnails and links, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := st.ListPostCards()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cards)
		}
		fmt.Fprintln(out, markdown.RenderCardTable(cards, shortDate.FormatString))
		return nil
	},
}

func init() {
	cardsCmd.Flags().Bool("json", false, "print cards as JSON")
	rootCmd.AddCommand(cardsCmd)
}
