package repository

// Defaults for QueryPostsOptions fields left unset.
const (
	DefaultStatusField   = "Status"
	DefaultStatusValue   = "Published"
	DefaultSortField     = "Published"
	DefaultSortDirection = "ascending"
)

// QueryPostsOptions holds the filter and sort applied to a post query.
type QueryPostsOptions struct {
	StatusField   string // Select property holding publication state
	StatusValue   string // Value a post must carry to be included
	SortField     string // Property the results are ordered by
	SortDirection string // "ascending" or "descending"
}

// Normalized returns a copy with unset fields replaced by defaults.
func (o QueryPostsOptions) Normalized() QueryPostsOptions {
	if o.StatusField == "" {
		o.StatusField = DefaultStatusField
	}
	if o.StatusValue == "" {
		o.StatusValue = DefaultStatusValue
	}
	if o.SortField == "" {
		o.SortField = DefaultSortField
	}
	if o.SortDirection == "" {
		o.SortDirection = DefaultSortDirection
	}
	return o
}
