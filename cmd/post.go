package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/folio/internal/editor"
	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/model"
	"github.com/rogersnm/folio/internal/store"
	"github.com/spf13/cobra"
)

var slugsCmd = &cobra.Command{
	Use:   "slugs",
	Short: "List every post slug",
	RunE: func(cmd *cobra.Command, args []string) error {
		slugs, err := st.ListSlugs()
		if err != nil {
			return err
		}
		for _, s := range slugs {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Read and create posts",
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := st.ListPostSummaries()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderPostTable(posts, shortDate.FormatString))
		return nil
	},
}

var postShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show a post",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var slug string
		if len(args) == 1 {
			slug = args[0]
		} else {
			var err error
			if slug, err = pickPost(); err != nil {
				return err
			}
		}

		p, err := st.LoadPost(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("post %s not found", slug)
			}
			return err
		}

		out := cmd.OutOrStdout()
		if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
			fmt.Fprintln(out, p.HTML)
			return nil
		}
		fields := []string{
			markdown.RenderField("Slug", p.Slug),
			markdown.RenderField("Category", markdown.RenderCategory(p.Category)),
			markdown.RenderField("Date", longDate.FormatString(p.Date)),
		}
		fmt.Fprint(out, markdown.RenderEntityHeader(p.Title, fields))
		if strings.TrimSpace(p.Content) != "" {
			rendered, err := markdown.RenderMarkdown(p.Content)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		}
		return nil
	},
}

var postNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a post and open it in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		dateFlag, _ := cmd.Flags().GetString("date")
		noEdit, _ := cmd.Flags().GetBool("no-edit")

		date := time.Now()
		if dateFlag != "" {
			var err error
			if date, err = model.ParseDate(dateFlag); err != nil {
				return fmt.Errorf("--date: %w", err)
			}
		}

		slug, err := st.CreatePost(category, args[0], date)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), slug)
		if noEdit {
			return nil
		}
		path, err := st.Path(slug)
		if err != nil {
			return err
		}
		return editor.Open(path)
	},
}

var postEditCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit a post in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := st.Path(args[0])
		if err != nil {
			return err
		}
		return editor.Open(path)
	},
}

// pickPost asks for a post interactively.
func pickPost() (string, error) {
	posts, err := st.ListPostSummaries()
	if err != nil {
		return "", err
	}
	if len(posts) == 0 {
		return "", fmt.Errorf("no posts found in %s", st.Root)
	}
	opts := make([]huh.Option[string], len(posts))
	for i, p := range posts {
		opts[i] = huh.NewOption(fmt.Sprintf("%s  %s  (%s)", p.Date, p.Title, p.Slug), p.Slug)
	}
	var slug string
	if err := huh.NewSelect[string]().
		Title("Select a post").
		Options(opts...).
		Value(&slug).
		Run(); err != nil {
		return "", fmt.Errorf("selection cancelled")
	}
	return slug, nil
}

func init() {
	postShowCmd.Flags().Bool("html", false, "print the rendered HTML instead of terminal output")
	postNewCmd.Flags().StringP("category", "c", "", "category directory (default: content root)")
	postNewCmd.Flags().String("date", "", "post date, YYYY-MM-DD (default: today)")
	postNewCmd.Flags().Bool("no-edit", false, "do not open the editor")
	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postNewCmd)
	postCmd.AddCommand(postEditCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(slugsCmd)
}
