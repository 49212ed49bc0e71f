package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chandlera/chandler-family-blog/internal/export"
	"github.com/chandlera/chandler-family-blog/internal/post/usecase"
)

var (
	exportDir string
	noIndex   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch published posts and write the markdown export",
	Long:  `Runs the pipeline once: resolves the database's data source, queries published posts, renders their blocks to markup, and writes one markdown file per post plus an optional index.json feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(); err != nil {
			return err
		}
		if err := appConfig.ValidateNotion(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		repo := newContentRepository()
		uc := usecase.New(logger, repo, appConfig.Notion.DatabaseID, queryOptions(), appConfig.Pipeline.Workers)

		out := uc.BuildPosts(ctx)

		dir := appConfig.Export.Dir
		if exportDir != "" {
			dir = exportDir
		}
		writeIndex := appConfig.Export.WriteIndex && !noIndex

		w := export.NewWriter(dir, writeIndex, logger)
		return w.WriteAll(ctx, out.Posts)
	},
}

func init() {
	buildCmd.Flags().StringVar(&exportDir, "out", "", "export directory (overrides export.dir)")
	buildCmd.Flags().BoolVar(&noIndex, "no-index", false, "skip writing index.json")
	rootCmd.AddCommand(buildCmd)
}
