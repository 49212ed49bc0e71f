package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chandlera/chandler-family-blog/internal/model"
	pkgLog "github.com/chandlera/chandler-family-blog/pkg/log"
)

// Handler is the public interface for the post HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
}

// PostSource is the read side of the feed snapshot the handlers serve
// from. Lookups never touch Notion.
type PostSource interface {
	Snapshot() []model.Post
	GetBySlug(slug string) (model.Post, error)
	UpdatedAt() time.Time
}

type handler struct {
	l    pkgLog.Logger
	feed PostSource
}

// New creates a new HTTP handler for the post domain.
func New(l pkgLog.Logger, feed PostSource) Handler {
	return &handler{
		l:    l,
		feed: feed,
	}
}
