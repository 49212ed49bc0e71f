package usecase_test

import (
	"context"
	"testing"

	"github.com/chandlera/chandler-family-blog/internal/post/repository"
	"github.com/chandlera/chandler-family-blog/internal/post/usecase"
)

// renderOne runs the pipeline over one post backed by the given blocks and
// returns the rendered body.
func renderOne(t *testing.T, blocks []repository.Block) string {
	t.Helper()

	repo := &mockContentRepo{
		posts:  []repository.RawPost{rawPost("p1", "Post")},
		blocks: map[string][]repository.Block{"p1": blocks},
	}
	uc := usecase.New(&mockLogger{}, repo, "db-1", repository.QueryPostsOptions{}, 1)

	out := uc.BuildPosts(context.Background())
	if len(out.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(out.Posts))
	}
	return out.Posts[0].Body
}

func TestRenderBlocks(t *testing.T) {
	t.Run("heading paragraph image", func(t *testing.T) {
		body := renderOne(t, []repository.Block{
			textBlock("b1", "heading_1", "Intro"),
			textBlock("b2", "paragraph", "Body text"),
			imageBlock("b3", "http://x/y.png"),
		})

		want := "# Intro\nBody text\n![post block related](http://x/y.png)"
		if body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
	})

	t.Run("all prefixed kinds", func(t *testing.T) {
		body := renderOne(t, []repository.Block{
			textBlock("b1", "heading_1", "One"),
			textBlock("b2", "heading_2", "Two"),
			textBlock("b3", "heading_3", "Three"),
			textBlock("b4", "bulleted_list_item", "Point"),
		})

		want := "# One\n## Two\n### Three\n- Point"
		if body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
	})

	t.Run("text bearing kinds without a prefix render bare", func(t *testing.T) {
		body := renderOne(t, []repository.Block{
			textBlock("b1", "quote", "Said once"),
			textBlock("b2", "numbered_list_item", "Counted"),
		})

		want := "Said once\nCounted"
		if body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
	})

	t.Run("unrenderable blocks are dropped", func(t *testing.T) {
		body := renderOne(t, []repository.Block{
			textBlock("b1", "paragraph", "kept"),
			{ID: "b2", Type: "divider"},
			{ID: "b3", Type: "paragraph"},
			{ID: "b4", Type: "image", Image: &repository.FileRef{Type: "file"}},
			textBlock("b5", "paragraph", ""),
			textBlock("b6", "paragraph", "also kept"),
		})

		want := "kept\nalso kept"
		if body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
	})

	t.Run("no blocks yield empty body", func(t *testing.T) {
		if body := renderOne(t, nil); body != "" {
			t.Errorf("body = %q, want empty", body)
		}
	})
}
