package notion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/chandlera/chandler-family-blog/internal/post/repository"
	pkgLog "github.com/chandlera/chandler-family-blog/pkg/log"
)

type implRepository struct {
	client       *Client
	l            pkgLog.Logger
	resolveCache *expirable.LRU[string, string]
	queryCache   *expirable.LRU[string, []repository.RawPost]
}

// New creates a new Notion content repository. Database resolution and
// query results are cached for cacheTTL; zero means DefaultCacheTTL.
func New(client *Client, cacheTTL time.Duration, l pkgLog.Logger) repository.ContentRepository {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &implRepository{
		client:       client,
		l:            l,
		resolveCache: expirable.NewLRU[string, string](resolveCacheSize, nil, cacheTTL),
		queryCache:   expirable.NewLRU[string, []repository.RawPost](queryCacheSize, nil, cacheTTL),
	}
}

func (r *implRepository) ResolveDataSource(ctx context.Context, databaseID string) (string, error) {
	databaseID = normalizeID(databaseID)

	if id, ok := r.resolveCache.Get(databaseID); ok {
		return id, nil
	}

	db, err := r.client.GetDatabase(ctx, databaseID)
	if err != nil {
		r.l.Errorf(ctx, "notion repository: failed to fetch database %s: %v", databaseID, err)
		return "", err
	}
	if len(db.DataSources) == 0 {
		return "", repository.ErrNoDataSource
	}

	id := db.DataSources[0].ID
	r.resolveCache.Add(databaseID, id)
	r.l.Debugf(ctx, "notion repository: database %s resolved to data source %s", databaseID, id)
	return id, nil
}

func (r *implRepository) QueryPosts(ctx context.Context, dataSourceID string, opt repository.QueryPostsOptions) ([]repository.RawPost, error) {
	dataSourceID = normalizeID(dataSourceID)
	opt = opt.Normalized()

	req := QueryRequest{
		Filter: &PropertyFilter{
			Property: opt.StatusField,
			Select:   &SelectCondition{Equals: opt.StatusValue},
		},
		Sorts: []Sort{{Property: opt.SortField, Direction: opt.SortDirection}},
	}

	key, err := queryCacheKey(dataSourceID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to build query cache key: %w", err)
	}
	if posts, ok := r.queryCache.Get(key); ok {
		return posts, nil
	}

	resp, err := r.client.QueryDataSource(ctx, dataSourceID, req)
	if err != nil {
		r.l.Errorf(ctx, "notion repository: failed to query data source %s: %v", dataSourceID, err)
		return nil, err
	}

	r.queryCache.Add(key, resp.Results)
	return resp.Results, nil
}

func (r *implRepository) ListBlocks(ctx context.Context, blockID string) ([]repository.Block, error) {
	blockID = normalizeID(blockID)

	var blocks []repository.Block
	cursor := ""
	for {
		resp, err := r.client.GetBlockChildren(ctx, blockID, cursor)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return blocks, nil
}

// queryCacheKey hashes the serialized payload into the key so differing
// filters never collide on the same data source.
func queryCacheKey(dataSourceID string, req QueryRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return dataSourceID + ":" + hex.EncodeToString(sum[:]), nil
}

// normalizeID canonicalizes a Notion ID to its dashed UUID form. The API
// accepts both forms; normalizing keeps cache keys stable. Unparseable
// values pass through untouched.
func normalizeID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}
