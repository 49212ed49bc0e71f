package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chandlera/chandler-family-blog/internal/model"
	"github.com/chandlera/chandler-family-blog/internal/post"
)

// BuildPosts runs resolve -> query -> flatten -> render. Bodies are
// rendered concurrently across posts; results are collected by input
// position, so output ordering always matches the sorted query ordering.
// Resolution and query failures degrade the build to an empty post list
// instead of failing the caller.
func (uc *implUseCase) BuildPosts(ctx context.Context) post.BuildOutput {
	dataSourceID, err := uc.repo.ResolveDataSource(ctx, uc.databaseID)
	if err != nil {
		uc.l.Errorf(ctx, "BuildPosts: failed to resolve data source for database %s: %v", uc.databaseID, err)
		return post.BuildOutput{Posts: []model.Post{}}
	}

	rawPosts, err := uc.repo.QueryPosts(ctx, dataSourceID, uc.queryOpts)
	if err != nil {
		uc.l.Errorf(ctx, "BuildPosts: failed to query data source %s: %v", dataSourceID, err)
		return post.BuildOutput{Posts: []model.Post{}}
	}

	uc.l.Infof(ctx, "BuildPosts: query returned %d posts", len(rawPosts))

	posts := make([]model.Post, len(rawPosts))
	for i, raw := range rawPosts {
		posts[i] = uc.flattenPost(ctx, raw)
	}

	var g errgroup.Group
	g.SetLimit(uc.workers)
	for i := range posts {
		i := i
		g.Go(func() error {
			posts[i].Body = uc.renderPostBody(ctx, posts[i].ID)
			return nil
		})
	}
	// Render workers degrade internally and never return an error; Wait
	// only fences the fan-out.
	_ = g.Wait()

	return post.BuildOutput{Posts: posts}
}
