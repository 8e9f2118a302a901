package journal

import (
	"regexp"
	"strings"
)

// entryHeadingPattern matches headings like "## 2025-01-02". Two to six
// markers, whitespace, then a literal YYYY-MM-DD date ending the line.
var entryHeadingPattern = regexp.MustCompile(`^(#{2,6})\s+(\d{4}-\d{2}-\d{2})\s*$`)

// RawEntry is one dated block produced by ParseMonthFile, before metadata
// extraction.
type RawEntry struct {
	Date         string
	HeadingLevel int
	Body         string
}

// ParseMonthFile splits the text of one monthly file into raw entries, in
// source order. A date heading starts a new entry and flushes the previous
// one. Top-level "# " title lines that appear before the first date heading
// are dropped; they are month banners, not content. A file without a single
// date heading yields zero entries.
func ParseMonthFile(text string) []RawEntry {
	lines := strings.Split(text, "\n")

	var entries []RawEntry
	var current []string
	date := ""
	level := 0

	flush := func() {
		if date == "" {
			return
		}
		entries = append(entries, RawEntry{
			Date:         date,
			HeadingLevel: ClampHeadingLevel(level),
			Body:         strings.TrimSpace(strings.Join(current, "\n")),
		})
		current = current[:0]
	}

	for _, line := range lines {
		if m := entryHeadingPattern.FindStringSubmatch(line); m != nil {
			flush()
			level = len(m[1])
			date = m[2]
			continue
		}
		if date == "" && strings.HasPrefix(line, "# ") {
			continue
		}
		current = append(current, line)
	}
	flush()

	return entries
}
