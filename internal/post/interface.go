package post

import (
	"context"
)

// UseCase defines the business logic interface for the post domain.
type UseCase interface {
	// BuildPosts runs the full content pipeline: resolve the data source,
	// query published posts, flatten each post's properties, and render
	// each post's blocks into a markup body. It never returns an error;
	// a failure before flattening degrades the build to an empty post list.
	BuildPosts(ctx context.Context) BuildOutput
}
