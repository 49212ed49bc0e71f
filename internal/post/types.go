package post

import (
	"github.com/chandlera/chandler-family-blog/internal/model"
)

// BuildOutput is the result of a pipeline run. Posts keeps the ordering of
// the sorted query, never nil.
type BuildOutput struct {
	Posts []model.Post
}
