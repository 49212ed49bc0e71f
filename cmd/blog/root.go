package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/chandlera/chandler-family-blog/config"
	"github.com/chandlera/chandler-family-blog/internal/post/repository"
	"github.com/chandlera/chandler-family-blog/internal/post/repository/notion"
	"github.com/chandlera/chandler-family-blog/pkg/log"
)

var (
	cfgFile   string
	appConfig *config.Config
	logger    log.Logger
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "blog",
	Short:   "Family blog content pipeline",
	Long:    `Pulls published posts from a Notion database, flattens their properties, renders their blocks to markup, and hands the result to the static site as markdown files or serves it as a live preview feed.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./config, ., /etc/app)")
}

// bootstrap loads configuration and initializes the logger. Every command
// that does real work calls this first.
func bootstrap() error {
	// .env files are a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	appConfig = cfg
	logger = log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	return nil
}

// newContentRepository wires the Notion API client and the caching
// repository on top of it from the loaded config.
func newContentRepository() repository.ContentRepository {
	client := notion.NewClient(appConfig.Notion.BaseURL, appConfig.Notion.Token)
	return notion.New(client, appConfig.Notion.CacheTTL, logger)
}

func queryOptions() repository.QueryPostsOptions {
	return repository.QueryPostsOptions{
		StatusField:   appConfig.Query.StatusField,
		StatusValue:   appConfig.Query.StatusValue,
		SortField:     appConfig.Query.SortField,
		SortDirection: appConfig.Query.SortDirection,
	}
}
