package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	postHTTP "github.com/chandlera/chandler-family-blog/internal/post/delivery/http"
)

// setupPostDomain registers the post domain routes.
//
// The post handler is constructed in the command layer, where it shares the
// feed store with the background refresher, and arrives through Config:
//  1. Validate Handler:    injected via Config.PostHandler
//  2. Register Routes:     postHTTP.RegisterRoutes registers /api/v1/posts
func (srv HTTPServer) setupPostDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.postHandler == nil {
		return errors.New("post handler is required")
	}

	postHTTP.RegisterRoutes(api, srv.postHandler)

	srv.l.Infof(ctx, "Post domain registered")
	return nil
}
