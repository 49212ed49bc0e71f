package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chandlera/chandler-family-blog/internal/post"
	"github.com/chandlera/chandler-family-blog/pkg/response"
)

// List returns every post in the current snapshot, in build order.
func (h *handler) List(c *gin.Context) {
	posts := h.feed.Snapshot()
	response.OK(c, h.newListResp(posts, h.feed.UpdatedAt()))
}

// Detail returns one post by slug. With ?format=html the markup body is
// additionally rendered to an HTML fragment.
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.feed.GetBySlug(req.Slug)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		h.l.Errorf(ctx, "feed.GetBySlug: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(ctx, p, req.Format))
}
