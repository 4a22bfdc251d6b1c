package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/folio/internal/config"
	"github.com/rogersnm/folio/internal/datefmt"
	"github.com/rogersnm/folio/internal/logging"
	"github.com/rogersnm/folio/internal/siteroot"
	"github.com/rogersnm/folio/internal/store"
	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	siteDir    string
	contentDir string
	logLevel   string

	st        *store.Store
	site      *config.SiteConfig
	longDate  *datefmt.Formatter
	shortDate *datefmt.Formatter
)

var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "Read a markdown blog: posts, cards and categories from a content directory",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("log-level") {
			logLevel = env.LogLevel
		}
		logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return err
		}

		dir := siteDir
		if !flags.Changed("site-dir") {
			dir, err = resolveSiteDir(env.SiteDir)
			if err != nil {
				return err
			}
		}
		content := contentDir
		if !flags.Changed("content-dir") {
			content = env.ContentDir
		}
		if content == "" {
			content = filepath.Join(dir, siteroot.ContentDir)
		}

		site, err = config.Load(dir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if longDate, err = datefmt.New(site.DateFormat); err != nil {
			return fmt.Errorf("dateFormat: %w", err)
		}
		if shortDate, err = datefmt.New(site.DateFormatShort); err != nil {
			return fmt.Errorf("dateFormatShort: %w", err)
		}

		logger.Debug("site resolved", "site", dir, "content", content)
		st = store.New(content).WithLogger(logger.With(slog.String("component", "store")))
		siteDir = dir
		return nil
	},
	SilenceUsage: true,
}

// resolveSiteDir picks the site from the environment, then the nearest
// enclosing site, then the working directory.
func resolveSiteDir(fromEnv string) (string, error) {
	if fromEnv != "" {
		return fromEnv, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ".", nil
	}
	found, err := siteroot.Find(cwd)
	if err != nil {
		return "", fmt.Errorf("locating site: %w", err)
	}
	if found == "" {
		return cwd, nil
	}
	return found, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteDir, "site-dir", "", "site directory (default: nearest directory with content/posts)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", "", "content root (default: <site-dir>/content/posts)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"slugs": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "One post slug per line, category/name or name",
				},
			},
			"post list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of posts with slug, title, category and date, newest first",
				},
			},
			"post show": {
				Examples: []mtp.Example{
					{Description: "Show a post in the terminal", Command: "folio post show tech/intro"},
					{Description: "Print the rendered HTML of a post", Command: "folio post show tech/intro --html"},
				},
			},
			"post new": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Slug of the created post",
				},
				Examples: []mtp.Example{
					{Description: "Create a post in a category without opening an editor", Command: "folio post new \"Hello World\" --category tech --no-edit"},
				},
			},
			"cards": {
				Stdout: &mtp.IODescriptor{
					ContentType: "application/json",
					Description: "Post cards with image and links when --json is given, a table otherwise",
				},
				Examples: []mtp.Example{
					{Description: "Export cards for a static page", Command: "folio cards --json > cards.json"},
				},
			},
			"category list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of categories with post count and latest post date",
				},
			},
			"category show": {
				Examples: []mtp.Example{
					{Description: "List posts of one category", Command: "folio category show tech"},
				},
			},
			"search": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Matching posts, videos and links",
				},
				Examples: []mtp.Example{
					{Description: "Search titles, categories and link titles", Command: "folio search golang"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
