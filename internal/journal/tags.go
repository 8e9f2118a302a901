package journal

import (
	"regexp"
	"sort"
	"strings"
)

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugRepeats    = regexp.MustCompile(`-{2,}`)
)

// Slugify normalizes a raw tag into its URL-safe identifier: lowercase,
// whitespace/underscore runs become a single hyphen, everything outside
// [a-z0-9-] is dropped, repeated hyphens collapse, and leading/trailing
// hyphens are trimmed. A tag that normalizes to nothing maps to the literal
// slug "tag" so it still gets a page.
func Slugify(tag string) string {
	s := strings.ToLower(strings.TrimSpace(tag))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugRepeats.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "tag"
	}
	return s
}

// TagBucket groups the entries carrying one normalized tag.
type TagBucket struct {
	// Slug is the normalized identifier, also the page filename.
	Slug string
	// DisplayName is the first-encountered raw spelling for this slug.
	// Case and spacing variants collapse into one bucket but keep it.
	DisplayName string
	// Entries are always newest-first, independent of the global order.
	Entries []*Entry
}

// TagIndex maps slugs to their buckets. The slug insertion order is recorded
// explicitly so first-seen semantics never depend on map iteration.
type TagIndex struct {
	slugs   []string
	buckets map[string]*TagBucket
}

// BuildTagIndex derives the tag index from every surviving entry in the
// year index. Entries within each bucket are sorted newest-first.
func BuildTagIndex(years *YearIndex) *TagIndex {
	index := &TagIndex{buckets: map[string]*TagBucket{}}

	years.Walk(func(entry *Entry) {
		for _, tag := range entry.Tags {
			slug := Slugify(tag)
			bucket, ok := index.buckets[slug]
			if !ok {
				bucket = &TagBucket{Slug: slug, DisplayName: tag}
				index.buckets[slug] = bucket
				index.slugs = append(index.slugs, slug)
			}
			bucket.Entries = append(bucket.Entries, entry)
		}
	})

	for _, bucket := range index.buckets {
		sortBucket(bucket.Entries, OrderReverse)
	}
	return index
}

// Len reports the number of distinct slugs.
func (ix *TagIndex) Len() int {
	return len(ix.slugs)
}

// Slugs returns slugs in first-seen order.
func (ix *TagIndex) Slugs() []string {
	return ix.slugs
}

// Bucket returns the bucket for a slug, or nil.
func (ix *TagIndex) Bucket(slug string) *TagBucket {
	return ix.buckets[slug]
}

// SortedByName returns buckets ordered by display name, case-insensitively.
// Used by the tag directory page.
func (ix *TagIndex) SortedByName() []*TagBucket {
	buckets := make([]*TagBucket, 0, len(ix.slugs))
	for _, slug := range ix.slugs {
		buckets = append(buckets, ix.buckets[slug])
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return strings.ToLower(buckets[i].DisplayName) < strings.ToLower(buckets[j].DisplayName)
	})
	return buckets
}
