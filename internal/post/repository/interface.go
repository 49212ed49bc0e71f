package repository

import (
	"context"
)

// ContentRepository is the interface for Notion content access operations.
type ContentRepository interface {
	// ResolveDataSource returns the ID of the first data source backing the
	// given database. Fails with ErrNoDataSource when the database lists none.
	ResolveDataSource(ctx context.Context, databaseID string) (string, error)

	// QueryPosts issues a single filtered, sorted query against a data source
	// and returns its results verbatim.
	QueryPosts(ctx context.Context, dataSourceID string, opt QueryPostsOptions) ([]RawPost, error)

	// ListBlocks returns the child blocks of a page or block, following
	// pagination cursors until exhausted.
	ListBlocks(ctx context.Context, blockID string) ([]Block, error)
}
