package journal

import "time"

// Order controls how entries are arranged inside a year bucket.
type Order string

const (
	// OrderReverse lists newest entries first.
	OrderReverse Order = "reverse"
	// OrderChronological lists oldest entries first.
	OrderChronological Order = "chronological"
)

// Entry is one dated journal record extracted from a monthly source file.
// Entries are built once per run and never mutated afterwards.
type Entry struct {
	// Date is the literal YYYY-MM-DD string from the entry heading.
	Date string
	// HeadingLevel is the markdown heading depth, clamped to 2..6.
	HeadingLevel int
	// Body is the markdown source after the metadata block is stripped.
	Body string
	// Tags preserves insertion order from the source; duplicates allowed.
	Tags []string
	// Draft hides the entry from every index unless drafts are included.
	Draft bool
	// Year is the containing directory name. The directory is authoritative,
	// even when it disagrees with the date string.
	Year string
	// Timestamp is Date parsed for sorting.
	Timestamp time.Time
	// SourceFile is the slash-separated path of the monthly file, relative
	// to the content root. Used in diagnostics.
	SourceFile string
}

// ID returns the entry's stable identifier used in search documents.
func (e *Entry) ID() string {
	return e.Year + "-" + e.Date
}

// YearIndex groups surviving entries by their year label. Iteration helpers
// expose years in ascending label order; entries inside a bucket follow the
// configured direction.
type YearIndex struct {
	years   []string
	buckets map[string][]*Entry
}

// Years returns the year labels in ascending order.
func (ix *YearIndex) Years() []string {
	return ix.years
}

// Latest returns the most recent year label, or "" when the index is empty.
func (ix *YearIndex) Latest() string {
	if len(ix.years) == 0 {
		return ""
	}
	return ix.years[len(ix.years)-1]
}

// Entries returns the bucket for a year, in configured order.
func (ix *YearIndex) Entries(year string) []*Entry {
	return ix.buckets[year]
}

// Len reports the total number of entries across all years.
func (ix *YearIndex) Len() int {
	total := 0
	for _, entries := range ix.buckets {
		total += len(entries)
	}
	return total
}

// Walk visits every entry, years ascending, entries in bucket order.
func (ix *YearIndex) Walk(visit func(*Entry)) {
	for _, year := range ix.years {
		for _, entry := range ix.buckets[year] {
			visit(entry)
		}
	}
}

const (
	minHeadingLevel = 2
	maxHeadingLevel = 6
)

// ClampHeadingLevel bounds a heading depth to the renderable 2..6 range.
func ClampHeadingLevel(level int) int {
	if level < minHeadingLevel {
		return minHeadingLevel
	}
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}
