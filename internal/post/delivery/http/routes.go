package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The feed
// is read-only and public.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	posts := rg.Group("/posts")
	{
		posts.GET("", h.List)
		posts.GET("/:slug", h.Detail)
	}
}
