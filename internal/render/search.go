package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/journal"
)

// SearchDocument is the flattened, markup-free representation of one entry
// consumed by the client-side search script.
type SearchDocument struct {
	ID      string `json:"id"`
	Year    string `json:"year"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	FullURL string `json:"full_url"`
	Title   string `json:"title"`
	Text    string `json:"text"`
}

// BuildSearchDocuments flattens every surviving entry into a search document.
// Tag words are prepended to the text field so tag terms are searchable.
func BuildSearchDocuments(cfg config.Config, md *Markdown, years *journal.YearIndex) []SearchDocument {
	var docs []SearchDocument
	years.Walk(func(entry *journal.Entry) {
		url := entryURL(entry.Year, entry.Date)
		text := md.PlainText(entry.Body)
		if len(entry.Tags) > 0 {
			text = strings.TrimSpace(strings.Join(entry.Tags, " ") + " " + text)
		}

		docs = append(docs, SearchDocument{
			ID:      entry.ID(),
			Year:    entry.Year,
			Date:    entry.Date,
			URL:     url,
			FullURL: absoluteURL(cfg.SiteURL, url),
			Title:   entry.Date,
			Text:    text,
		})
	})
	return docs
}

// EncodeSearchIndex serializes the document set as the search_index.json
// artifact.
func EncodeSearchIndex(docs []SearchDocument) ([]byte, error) {
	if docs == nil {
		docs = []SearchDocument{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode search index: %w", err)
	}
	return append(data, '\n'), nil
}
