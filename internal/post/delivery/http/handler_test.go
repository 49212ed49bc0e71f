package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chandlera/chandler-family-blog/internal/model"
	"github.com/chandlera/chandler-family-blog/internal/post"
	postHTTP "github.com/chandlera/chandler-family-blog/internal/post/delivery/http"
	"github.com/chandlera/chandler-family-blog/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubSource struct {
	posts   []model.Post
	updated time.Time
}

func (s *stubSource) Snapshot() []model.Post { return s.posts }

func (s *stubSource) GetBySlug(slug string) (model.Post, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Post{}, post.ErrNotFound
}

func (s *stubSource) UpdatedAt() time.Time { return s.updated }

func newTestRouter(src *stubSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := postHTTP.New(&mockLogger{}, src)
	postHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestListHandler(t *testing.T) {
	src := &stubSource{
		posts: []model.Post{
			{ID: "p1", Slug: "first", Fields: map[string]string{"Title": "First"}, Body: "one"},
			{ID: "p2", Slug: "second", Fields: map[string]string{"Title": "Second"}, Body: "two"},
		},
		updated: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	r := newTestRouter(src)

	w, resp := doRequest(t, r, "/api/v1/posts")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", resp.ErrorCode)
	}

	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("data has unexpected shape: %T", resp.Data)
	}
	if data["count"] != float64(2) {
		t.Errorf("count = %v, want 2", data["count"])
	}
	if data["updated_at"] != "2024-05-01T10:00:00Z" {
		t.Errorf("updated_at = %v", data["updated_at"])
	}

	posts, ok := data["posts"].([]any)
	if !ok || len(posts) != 2 {
		t.Fatalf("posts = %v", data["posts"])
	}
	first, _ := posts[0].(map[string]any)
	if first["slug"] != "first" || first["Title"] != "First" || first["block"] != "one" {
		t.Errorf("unexpected first post: %v", first)
	}
}

func TestDetailHandler(t *testing.T) {
	src := &stubSource{
		posts: []model.Post{
			{ID: "p1", Slug: "my-post", Fields: map[string]string{"Title": "My Post"}, Body: "# Intro\nBody text"},
		},
	}
	r := newTestRouter(src)

	t.Run("found", func(t *testing.T) {
		w, resp := doRequest(t, r, "/api/v1/posts/my-post")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		data := resp.Data.(map[string]any)
		p, ok := data["post"].(map[string]any)
		if !ok {
			t.Fatalf("post has unexpected shape: %v", data)
		}
		if p["id"] != "p1" || p["block"] != "# Intro\nBody text" {
			t.Errorf("unexpected post: %v", p)
		}
		if _, hasHTML := data["html"]; hasHTML {
			t.Error("html must be absent without format=html")
		}
	})

	t.Run("html format renders the body", func(t *testing.T) {
		w, resp := doRequest(t, r, "/api/v1/posts/my-post?format=html")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		data := resp.Data.(map[string]any)
		html, _ := data["html"].(string)
		if !strings.Contains(html, "<h1>Intro</h1>") {
			t.Errorf("html = %q, want rendered heading", html)
		}
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		w, resp := doRequest(t, r, "/api/v1/posts/nope")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if resp.ErrorCode != response.NotFoundErrorCode {
			t.Errorf("error_code = %d, want %d", resp.ErrorCode, response.NotFoundErrorCode)
		}
	})

	t.Run("unsupported format is rejected", func(t *testing.T) {
		w, _ := doRequest(t, r, "/api/v1/posts/my-post?format=pdf")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
