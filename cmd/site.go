package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/folio/internal/config"
	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/siteroot"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create the site layout: config/site.json and content/posts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := siteDir
		if len(args) == 1 {
			dir = args[0]
		}
		content := filepath.Join(dir, siteroot.ContentDir)
		if err := os.MkdirAll(content, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", content, err)
		}
		out := cmd.OutOrStdout()
		if _, err := os.Stat(config.Path(dir)); err == nil {
			fmt.Fprintf(out, "Kept existing %s\n", config.Path(dir))
		} else {
			if err := config.Save(dir, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", config.Path(dir))
		}
		fmt.Fprintf(out, "Posts go in %s\n", content)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective site configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(site)
		}
		fields := []string{
			markdown.RenderField("Site", siteDir),
			markdown.RenderField("Content", st.Root),
			markdown.RenderField("Description", site.Site.Description),
			markdown.RenderField("Date format", site.DateFormat.Locale+" "+longDate.FormatString("2024-06-01")),
			markdown.RenderField("Short date format", site.DateFormatShort.Locale+" "+shortDate.FormatString("2024-06-01")),
		}
		fmt.Fprint(out, markdown.RenderEntityHeader(site.Site.Title, fields))
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("json", false, "print the configuration as JSON")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}
