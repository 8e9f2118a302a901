package journal

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CollectOptions configures a content tree walk.
type CollectOptions struct {
	// Order arranges entries inside each year bucket. Defaults to reverse.
	Order Order
	// IncludeDrafts keeps entries flagged draft: true.
	IncludeDrafts bool
}

// Collect walks a content filesystem rooted at the content directory and
// produces the YearIndex. Immediate subdirectories whose name is entirely
// digits are year buckets; anything else (hidden directories, generated
// output) is ignored. Files inside a year are visited in lexical order so
// month-numbered files arrive chronologically. A heading date that fails to
// parse aborts the walk with a ParseError.
func Collect(fsys fs.FS, opts CollectOptions) (*YearIndex, error) {
	order := opts.Order
	if order == "" {
		order = OrderReverse
	}

	rootEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("journal: read content root: %w", err)
	}

	index := &YearIndex{buckets: map[string][]*Entry{}}

	for _, dir := range rootEntries {
		if !dir.IsDir() || !allDigits(dir.Name()) {
			continue
		}
		year := dir.Name()

		entries, err := collectYear(fsys, year, opts.IncludeDrafts)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}

		sortBucket(entries, order)
		index.years = append(index.years, year)
		index.buckets[year] = entries
	}

	sort.Strings(index.years)
	return index, nil
}

func collectYear(fsys fs.FS, year string, includeDrafts bool) ([]*Entry, error) {
	files, err := fs.ReadDir(fsys, year)
	if err != nil {
		return nil, fmt.Errorf("journal: read year %s: %w", year, err)
	}

	var entries []*Entry
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}
		rel := path.Join(year, file.Name())

		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return nil, fmt.Errorf("journal: read %s: %w", rel, err)
		}

		for _, raw := range ParseMonthFile(string(data)) {
			meta, body := ExtractMetadata(raw.Body)
			if meta.Draft && !includeDrafts {
				continue
			}

			ts, err := time.Parse(dateLayout, raw.Date)
			if err != nil {
				return nil, &ParseError{Path: rel, Date: raw.Date, Err: err}
			}

			entries = append(entries, &Entry{
				Date:         raw.Date,
				HeadingLevel: raw.HeadingLevel,
				Body:         body,
				Tags:         meta.Tags,
				Draft:        meta.Draft,
				Year:         year,
				Timestamp:    ts,
				SourceFile:   rel,
			})
		}
	}
	return entries, nil
}

// sortBucket orders entries by timestamp. The sort is stable so entries
// sharing a date keep their file enumeration order.
func sortBucket(entries []*Entry, order Order) {
	if order == OrderChronological {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		})
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}

func allDigits(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
