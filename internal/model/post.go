package model

import "encoding/json"

// Post represents a published blog post flattened from a Notion page.
type Post struct {
	ID      string            // Notion page ID
	Created string            // RFC3339 creation time string from the Notion API
	URL     string            // Public URL of the Notion page
	Slug    string            // URL slug derived from the Title property
	Fields  map[string]string // Flattened page properties keyed by property name
	Body    string            // Page content rendered as lightweight markup
}

// reservedKeys are the fixed output keys. A page property sharing one of
// these names is dropped rather than allowed to shadow them.
var reservedKeys = map[string]bool{
	"id":      true,
	"created": true,
	"url":     true,
	"slug":    true,
	"block":   true,
}

// MarshalJSON emits the flattened properties and the fixed keys as a
// single flat object, the shape downstream templates consume.
func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(p.Fields)+5)
	for k, v := range p.Fields {
		if reservedKeys[k] {
			continue
		}
		out[k] = v
	}

	out["id"] = p.ID
	out["created"] = p.Created
	out["url"] = p.URL
	out["slug"] = p.Slug
	out["block"] = p.Body

	return json.Marshal(out)
}
