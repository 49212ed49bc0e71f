package http

import (
	"bytes"
	"context"
	"time"

	"github.com/yuin/goldmark"

	"github.com/chandlera/chandler-family-blog/internal/model"
)

// --- Request DTOs ---

// FormatHTML asks Detail to render the markup body to an HTML fragment.
const FormatHTML = "html"

type detailReq struct {
	Slug   string
	Format string // empty or FormatHTML
}

// --- Response DTOs ---

type listResp struct {
	Posts     []model.Post `json:"posts"`
	Count     int          `json:"count"`
	UpdatedAt string       `json:"updated_at,omitempty"`
}

func (h *handler) newListResp(posts []model.Post, updated time.Time) listResp {
	resp := listResp{
		Posts: posts,
		Count: len(posts),
	}
	if !updated.IsZero() {
		resp.UpdatedAt = updated.UTC().Format(time.RFC3339)
	}
	return resp
}

type detailResp struct {
	Post model.Post `json:"post"`
	HTML string     `json:"html,omitempty"`
}

func (h *handler) newDetailResp(ctx context.Context, p model.Post, format string) detailResp {
	resp := detailResp{Post: p}
	if format != FormatHTML {
		return resp
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.Body), &buf); err != nil {
		// Degrade to the raw markup body already present in the record.
		h.l.Warnf(ctx, "render html for post %s: %v", p.ID, err)
		return resp
	}
	resp.HTML = buf.String()
	return resp
}
