package feed

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/chandlera/chandler-family-blog/internal/post"
	pkgLog "github.com/chandlera/chandler-family-blog/pkg/log"
)

// Refresher rebuilds the store on a cron schedule. A refresh always
// replaces the snapshot, even when the pipeline degraded to an empty
// list: the feed mirrors what a site rebuild at that moment would have
// published.
type Refresher struct {
	uc    post.UseCase
	store *Store
	spec  string
	l     pkgLog.Logger
	cron  *cron.Cron
}

// NewRefresher creates a refresher driven by the given cron spec. An empty
// spec disables scheduling; Refresh can still be called directly.
func NewRefresher(uc post.UseCase, store *Store, spec string, l pkgLog.Logger) *Refresher {
	return &Refresher{
		uc:    uc,
		store: store,
		spec:  spec,
		l:     l,
	}
}

// Refresh runs the pipeline once and swaps the snapshot.
func (r *Refresher) Refresh(ctx context.Context) {
	out := r.uc.BuildPosts(ctx)
	r.store.Replace(out.Posts)
	r.l.Infof(ctx, "feed: snapshot refreshed with %d posts", len(out.Posts))
}

// Start begins the schedule. It is a no-op when the cron spec is empty.
func (r *Refresher) Start() error {
	if r.spec == "" {
		r.l.Info(context.Background(), "feed: refresh schedule disabled")
		return nil
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.spec, func() {
		r.Refresh(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid refresh cron spec %q: %w", r.spec, err)
	}
	r.cron.Start()
	r.l.Infof(context.Background(), "feed: refresh scheduled at %q", r.spec)
	return nil
}

// Stop halts the schedule. Safe to call when Start never ran.
func (r *Refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}
