package repository

import "errors"

// Errors returned by ContentRepository implementations.
var (
	// ErrNoDataSource means the database exists but lists no data sources,
	// so no query can proceed.
	ErrNoDataSource = errors.New("database has no data sources")
)
