package repository

// Wire types for the Notion API (version 2025-09-03). Kind payloads are
// pointer fields discriminated by Type; only the one matching Type is
// populated. Unrecognized kinds decode with every payload empty and are
// ignored downstream, not errored.

// RawPost is a page as returned by a data-source query, before flattening.
type RawPost struct {
	Object      string              `json:"object,omitempty"`
	ID          string              `json:"id"`
	CreatedTime string              `json:"created_time"`
	URL         string              `json:"url"`
	Properties  map[string]Property `json:"properties"`
}

// Property is one page property value, discriminated by Type.
type Property struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Text     []RichText    `json:"text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Files    []FileRef     `json:"files,omitempty"`
}

// runs returns the text runs of the text-like kinds.
func (p Property) runs() []RichText {
	switch p.Type {
	case "title":
		return p.Title
	case "rich_text":
		return p.RichText
	case "text":
		return p.Text
	}
	return nil
}

// DisplayValue converts the property to its display string. ok is false
// when the kind is unhandled or the value is empty, in which case the
// property contributes nothing to the flattened post.
func (p Property) DisplayValue() (string, bool) {
	switch p.Type {
	case "title", "rich_text", "text":
		runs := p.runs()
		if len(runs) == 0 {
			return "", false
		}
		return runs[0].Content(), true
	case "select":
		if p.Select == nil {
			return "", false
		}
		return p.Select.Name, true
	case "files":
		if len(p.Files) == 0 {
			return "", false
		}
		return p.Files[0].URL(), true
	}
	return "", false
}

// SelectOption is a chosen select value.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RichText is a single run of rich text.
type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
	Href      string `json:"href,omitempty"`
}

// Text is the literal content of a text-type run.
type Text struct {
	Content string `json:"content"`
}

// Content returns the run's text, preferring the rendered plain text.
func (r RichText) Content() string {
	if r.PlainText != "" {
		return r.PlainText
	}
	if r.Text != nil {
		return r.Text.Content
	}
	return ""
}

// FileRef is a hosted or external file reference, the payload shape shared
// by files properties and image blocks.
type FileRef struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"` // file or external
	File *struct {
		URL        string `json:"url"`
		ExpiryTime string `json:"expiry_time,omitempty"`
	} `json:"file,omitempty"`
	External *struct {
		URL string `json:"url"`
	} `json:"external,omitempty"`
}

// URL returns the file's URL regardless of hosting kind, empty when absent.
func (f FileRef) URL() string {
	switch {
	case f.File != nil:
		return f.File.URL
	case f.External != nil:
		return f.External.URL
	}
	return ""
}

// Block is one unit of page content, discriminated by Type.
type Block struct {
	Object      string `json:"object,omitempty"`
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children,omitempty"`

	Paragraph        *TextBlock `json:"paragraph,omitempty"`
	Heading1         *TextBlock `json:"heading_1,omitempty"`
	Heading2         *TextBlock `json:"heading_2,omitempty"`
	Heading3         *TextBlock `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock `json:"numbered_list_item,omitempty"`
	Quote            *TextBlock `json:"quote,omitempty"`
	Callout          *TextBlock `json:"callout,omitempty"`
	ToDo             *TextBlock `json:"to_do,omitempty"`
	Toggle           *TextBlock `json:"toggle,omitempty"`
	Image            *FileRef   `json:"image,omitempty"`
}

// TextBlock is the payload shared by the text-bearing block kinds.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// textPayload returns the rich-text payload matching the block's type.
func (b Block) textPayload() *TextBlock {
	switch b.Type {
	case "paragraph":
		return b.Paragraph
	case "heading_1":
		return b.Heading1
	case "heading_2":
		return b.Heading2
	case "heading_3":
		return b.Heading3
	case "bulleted_list_item":
		return b.BulletedListItem
	case "numbered_list_item":
		return b.NumberedListItem
	case "quote":
		return b.Quote
	case "callout":
		return b.Callout
	case "to_do":
		return b.ToDo
	case "toggle":
		return b.Toggle
	}
	return nil
}

// FirstText returns the text of the block's first rich-text run. ok is
// false when the block carries no text payload or the payload is empty.
func (b Block) FirstText() (string, bool) {
	payload := b.textPayload()
	if payload == nil || len(payload.RichText) == 0 {
		return "", false
	}
	return payload.RichText[0].Content(), true
}

// ImageURL returns the URL of an image block's file. ok is false for
// non-image blocks and images without a resolvable URL.
func (b Block) ImageURL() (string, bool) {
	if b.Image == nil {
		return "", false
	}
	if url := b.Image.URL(); url != "" {
		return url, true
	}
	return "", false
}
