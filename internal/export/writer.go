// Package export writes the built posts to disk as markdown files with
// YAML frontmatter, the hand-off format for the static site generator.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chandlera/chandler-family-blog/internal/model"
	pkgLog "github.com/chandlera/chandler-family-blog/pkg/log"
)

// IndexFile is the name of the JSON feed written next to the post files.
const IndexFile = "index.json"

// Writer persists a post list into a directory, one markdown file per
// post named by its slug.
type Writer struct {
	l          pkgLog.Logger
	dir        string
	writeIndex bool
}

// NewWriter creates a writer targeting dir. When writeIndex is set,
// WriteAll also emits an index.json holding the whole flattened feed.
func NewWriter(dir string, writeIndex bool, l pkgLog.Logger) *Writer {
	return &Writer{
		l:          l,
		dir:        dir,
		writeIndex: writeIndex,
	}
}

// WriteAll writes every post. A post without a slug falls back to its ID
// for the filename. Slug collisions are not resolved: the later post
// overwrites the earlier file, with a warning.
func (w *Writer) WriteAll(ctx context.Context, posts []model.Post) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	seen := make(map[string]string, len(posts))
	for _, p := range posts {
		name := p.Slug
		if name == "" {
			name = p.ID
		}
		if prev, ok := seen[name]; ok {
			w.l.Warnf(ctx, "export: posts %s and %s share slug %q, overwriting the earlier file", prev, p.ID, name)
		}
		seen[name] = p.ID

		path := filepath.Join(w.dir, name+".md")
		if err := os.WriteFile(path, []byte(Marshal(p)), 0644); err != nil {
			return fmt.Errorf("writing post %s: %w", p.ID, err)
		}
	}

	if w.writeIndex {
		if err := w.writeIndexFile(posts); err != nil {
			return err
		}
	}

	w.l.Infof(ctx, "export: wrote %d posts to %s", len(posts), w.dir)
	return nil
}

func (w *Writer) writeIndexFile(posts []model.Post) error {
	if posts == nil {
		posts = []model.Post{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(w.dir, IndexFile), data, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// Marshal converts a post into a markdown document with YAML frontmatter.
// Fixed keys come first, then the flattened data fields alphabetically so
// output is deterministic across builds.
func Marshal(p model.Post) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("id: %s\n", yamlScalar(p.ID)))
	b.WriteString(fmt.Sprintf("created: %s\n", yamlScalar(p.Created)))
	b.WriteString(fmt.Sprintf("url: %s\n", yamlScalar(p.URL)))
	b.WriteString(fmt.Sprintf("slug: %s\n", yamlScalar(p.Slug)))

	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s: %s\n", yamlScalar(k), yamlScalar(p.Fields[k])))
	}

	b.WriteString("---\n\n")
	b.WriteString(p.Body)
	if !strings.HasSuffix(p.Body, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

// yamlScalar renders v as a single-line YAML scalar, quoted exactly when
// YAML requires it.
func yamlScalar(v string) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return strconv.Quote(v)
	}

	s := strings.TrimSuffix(string(out), "\n")
	// Marshal switches to a block scalar for values with newlines, which
	// cannot sit inline after "key: ". Fall back to an escaped quote.
	if strings.Contains(s, "\n") {
		return strconv.Quote(v)
	}
	return s
}
