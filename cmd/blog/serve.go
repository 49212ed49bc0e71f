package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chandlera/chandler-family-blog/internal/feed"
	"github.com/chandlera/chandler-family-blog/internal/httpserver"
	postHTTP "github.com/chandlera/chandler-family-blog/internal/post/delivery/http"
	"github.com/chandlera/chandler-family-blog/internal/post/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the preview feed over HTTP",
	Long:  `Builds an in-memory snapshot of the published posts and serves it on /api/v1/posts, refreshing on the configured cron schedule. Serving never blocks on Notion; a degraded build serves an empty feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(); err != nil {
			return err
		}
		if err := appConfig.ValidateNotion(); err != nil {
			return err
		}

		ctx := context.Background()

		// 1. Pipeline
		repo := newContentRepository()
		uc := usecase.New(logger, repo, appConfig.Notion.DatabaseID, queryOptions(), appConfig.Pipeline.Workers)

		// 2. Feed snapshot, filled before the server accepts traffic
		store := feed.NewStore()
		refresher := feed.NewRefresher(uc, store, appConfig.HTTPServer.RefreshCron, logger)
		refresher.Refresh(ctx)

		if err := refresher.Start(); err != nil {
			return err
		}
		defer refresher.Stop()

		// 3. HTTP server
		handler := postHTTP.New(logger, store)

		srv, err := httpserver.New(logger, httpserver.Config{
			Port:        appConfig.HTTPServer.Port,
			Mode:        appConfig.HTTPServer.Mode,
			Environment: appConfig.Environment.Name,
			PostHandler: handler,
		})
		if err != nil {
			return err
		}

		return srv.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
