package cmd

import (
	"fmt"

	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/model"
	"github.com/rogersnm/folio/internal/store"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search post titles, categories and link titles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tiles, err := st.Search(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(tiles) == 0 {
			fmt.Fprintln(out, "No posts found.")
			return nil
		}

		// Group by kind
		grouped := map[store.TileKind][]store.Tile{}
		for _, t := range tiles {
			grouped[t.Kind] = append(grouped[t.Kind], t)
		}

		headings := map[store.TileKind]string{
			store.TilePost:  "Posts",
			store.TileVideo: "Videos",
			store.TileLink:  "Links",
		}
		for _, kind := range []store.TileKind{store.TilePost, store.TileVideo, store.TileLink} {
			items, ok := grouped[kind]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "\n%s:\n", headings[kind])
			for _, item := range items {
				date := shortDate.FormatString(item.Date)
				if item.Post != nil {
					fmt.Fprintf(out, "  %s  %s  %s  %s\n", date, markdown.RenderCategory(item.Post.Category), item.Post.Title, item.Post.Slug)
					continue
				}
				fmt.Fprintf(out, "  %s  %s  %s\n", date, markdown.RenderLinkKind(item.Link.Kind()), item.Link.Title)
				fmt.Fprintf(out, "    %s\n", linkDetail(item.Link))
			}
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, resultCount(len(tiles)))
		return nil
	},
}

// linkDetail is the thumbnail for videos and the host for everything else.
func linkDetail(l *model.Link) string {
	if thumb := l.Thumbnail(); thumb != "" {
		return l.URL + "  " + thumb
	}
	return l.URL + "  (" + l.Host() + ")"
}

func resultCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
