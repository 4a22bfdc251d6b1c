package cmd

import (
	"fmt"

	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/model"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Browse categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := st.ListCategories()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(categories) == 0 {
			fmt.Fprintln(out, site.Home.EmptyMessage)
			return nil
		}
		fmt.Fprintln(out, markdown.RenderCategoryTable(categories, site.PostCount, shortDate.FormatString))
		return nil
	},
}

var categoryShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "List the posts of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := st.PostsInCategory(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, markdown.RenderEntityHeader(model.Capitalize(args[0]), []string{site.PostCount(len(posts))}))
		if len(posts) == 0 {
			fmt.Fprintln(out, site.Category.EmptyMessage)
			return nil
		}
		fmt.Fprintln(out, markdown.RenderPostTable(posts, longDate.FormatString))
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryShowCmd)
	rootCmd.AddCommand(categoryCmd)
}
