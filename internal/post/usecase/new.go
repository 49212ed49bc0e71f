package usecase

import (
	"github.com/chandlera/chandler-family-blog/internal/post/repository"
	pkgLog "github.com/chandlera/chandler-family-blog/pkg/log"
)

// DefaultRenderWorkers bounds how many posts have their blocks fetched at
// the same time when the config leaves it unset.
const DefaultRenderWorkers = 4

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.ContentRepository
	databaseID string
	queryOpts  repository.QueryPostsOptions
	workers    int
}

// New creates a new post UseCase instance. databaseID is the Notion
// database the pipeline pulls from; workers bounds the block-rendering
// fan-out (values below one fall back to DefaultRenderWorkers).
func New(
	l pkgLog.Logger,
	repo repository.ContentRepository,
	databaseID string,
	queryOpts repository.QueryPostsOptions,
	workers int,
) *implUseCase {
	if workers < 1 {
		workers = DefaultRenderWorkers
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		databaseID: databaseID,
		queryOpts:  queryOpts,
		workers:    workers,
	}
}
