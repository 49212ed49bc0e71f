package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/chandlera/chandler-family-blog/internal/post/repository"
)

// renderPostBody fetches a post's child blocks and joins their markup
// lines. A fetch failure degrades the whole body to empty; a single
// unrenderable block degrades to a dropped line. Neither aborts the post.
func (uc *implUseCase) renderPostBody(ctx context.Context, postID string) string {
	blocks, err := uc.repo.ListBlocks(ctx, postID)
	if err != nil {
		uc.l.Warnf(ctx, "render: failed to list blocks for post %s, leaving body empty: %v", postID, err)
		return ""
	}

	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		line, ok := blockLine(b)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// blockLine converts one block into a line of lightweight markup. ok is
// false when the block carries nothing renderable.
func blockLine(b repository.Block) (string, bool) {
	if b.Type == "image" {
		url, ok := b.ImageURL()
		if !ok {
			return "", false
		}
		return fmt.Sprintf("![post block related](%s)", url), true
	}

	// Every other kind renders its first text run, best-effort for kinds
	// without a dedicated prefix.
	text, ok := b.FirstText()
	if !ok || text == "" {
		return "", false
	}

	prefix := blockPrefix(b.Type)
	if prefix == "" {
		return text, true
	}
	return prefix + " " + text, true
}

// blockPrefix returns the markup marker for prefixed block kinds.
func blockPrefix(kind string) string {
	switch kind {
	case "heading_1":
		return "#"
	case "heading_2":
		return "##"
	case "heading_3":
		return "###"
	case "bulleted_list_item":
		return "-"
	}
	return ""
}
