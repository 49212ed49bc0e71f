package notion

import "time"

const (
	// DefaultBaseURL is the production Notion API origin.
	DefaultBaseURL = "https://api.notion.com"

	// APIVersion is sent as the Notion-Version header on every request.
	// Data-source endpoints require this version or later.
	APIVersion = "2025-09-03"

	// DefaultCacheTTL bounds how long resolved data sources and query
	// results stay fresh. The database-to-data-source mapping changes
	// rarely, so a day is acceptable staleness for both.
	DefaultCacheTTL = 24 * time.Hour

	// requestsPerSecond matches Notion's documented average rate limit.
	requestsPerSecond = 3

	blockPageSize = 100

	resolveCacheSize = 16
	queryCacheSize   = 32
)
