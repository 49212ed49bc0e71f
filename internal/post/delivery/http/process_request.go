package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

var errMissingSlug = errors.New("slug is required")

// processDetailReq binds and validates the detail request path and query.
func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	req := detailReq{
		Slug:   c.Param("slug"),
		Format: c.Query("format"),
	}
	if req.Slug == "" {
		return req, errMissingSlug
	}
	if req.Format != "" && req.Format != FormatHTML {
		return req, fmt.Errorf("unsupported format %q, only %q is supported", req.Format, FormatHTML)
	}
	return req, nil
}
