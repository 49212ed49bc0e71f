package middleware

import (
	"github.com/chandlera/chandler-family-blog/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers shared by all routes.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
