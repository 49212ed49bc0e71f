package usecase

import (
	"context"

	"github.com/chandlera/chandler-family-blog/internal/model"
	"github.com/chandlera/chandler-family-blog/internal/post/repository"
	"github.com/chandlera/chandler-family-blog/pkg/slug"
)

// titleField is the property the slug is derived from.
const titleField = "Title"

// flattenPost converts a raw page into a flat post record. Each property
// maps independently; one that carries no displayable value is skipped, so
// a malformed property costs that field and nothing else.
func (uc *implUseCase) flattenPost(ctx context.Context, raw repository.RawPost) model.Post {
	fields := make(map[string]string, len(raw.Properties))

	for name, prop := range raw.Properties {
		value, ok := prop.DisplayValue()
		if !ok {
			uc.l.Debugf(ctx, "flatten: post %s property %q (%s) has no value, skipping", raw.ID, name, prop.Type)
			continue
		}
		fields[name] = value
	}

	return model.Post{
		ID:      raw.ID,
		Created: raw.CreatedTime,
		URL:     raw.URL,
		Slug:    slug.Make(fields[titleField]),
		Fields:  fields,
	}
}
