package journal

import (
	"strings"
	"testing"
)

func TestParseMonthFile(t *testing.T) {
	text := strings.Join([]string{
		"# December 2025",
		"",
		"## 2025-12-01",
		"First entry.",
		"",
		"Second paragraph.",
		"",
		"### 2025-12-02",
		"Short one.",
	}, "\n")

	entries := ParseMonthFile(text)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Date != "2025-12-01" {
		t.Fatalf("expected date 2025-12-01, got %q", first.Date)
	}
	if first.HeadingLevel != 2 {
		t.Fatalf("expected heading level 2, got %d", first.HeadingLevel)
	}
	if !strings.Contains(first.Body, "First entry.") || !strings.Contains(first.Body, "Second paragraph.") {
		t.Fatalf("body lost content: %q", first.Body)
	}
	if !strings.Contains(first.Body, "\n\n") {
		t.Fatalf("expected interior blank line preserved, got %q", first.Body)
	}

	second := entries[1]
	if second.Date != "2025-12-02" || second.HeadingLevel != 3 {
		t.Fatalf("unexpected second entry: %+v", second)
	}
	if second.Body != "Short one." {
		t.Fatalf("expected trimmed body, got %q", second.Body)
	}
}

func TestParseMonthFileDropsTitleBanner(t *testing.T) {
	entries := ParseMonthFile("# January 2024\n## 2024-01-02\nHello.")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if strings.Contains(entries[0].Body, "January 2024") {
		t.Fatalf("title banner leaked into body: %q", entries[0].Body)
	}
}

func TestParseMonthFileKeepsPreHeadingProse(t *testing.T) {
	// Non-title lines before the first date heading flow into the first
	// entry, matching the accumulation rule.
	entries := ParseMonthFile("stray line\n## 2024-01-02\nHello.")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Body, "stray line") {
		t.Fatalf("expected stray line at body start, got %q", entries[0].Body)
	}
}

func TestParseMonthFileNoHeadings(t *testing.T) {
	entries := ParseMonthFile("# Only a banner\n\nSome prose without entries.\n")
	if len(entries) != 0 {
		t.Fatalf("expected zero entries, got %d", len(entries))
	}
}

func TestParseMonthFileHeadingMatching(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		matches bool
	}{
		{"level two", "## 2024-03-10", true},
		{"level six", "###### 2024-03-10", true},
		{"trailing spaces", "## 2024-03-10   ", true},
		{"level one", "# 2024-03-10", false},
		{"level seven", "####### 2024-03-10", false},
		{"trailing text", "## 2024-03-10 extra", false},
		{"no space", "##2024-03-10", false},
		{"short date", "## 2024-3-10", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := ParseMonthFile(tc.line + "\nbody")
			if tc.matches && len(entries) != 1 {
				t.Fatalf("expected %q to start an entry", tc.line)
			}
			if !tc.matches && len(entries) != 0 {
				t.Fatalf("expected %q to be ignored, got %d entries", tc.line, len(entries))
			}
		})
	}
}

func TestParseMonthFileFlushesFinalEntry(t *testing.T) {
	entries := ParseMonthFile("## 2024-05-01\nlast body without trailing newline")
	if len(entries) != 1 {
		t.Fatalf("expected trailing entry to flush, got %d", len(entries))
	}
	if entries[0].Body != "last body without trailing newline" {
		t.Fatalf("unexpected body %q", entries[0].Body)
	}
}

func TestParseMonthFileEntryCountMatchesHeadings(t *testing.T) {
	text := "# Title\n## 2024-01-01\na\n## 2024-01-02\nb\n#### 2024-01-03\nc\n"

	headings := 0
	for _, line := range strings.Split(text, "\n") {
		if entryHeadingPattern.MatchString(line) {
			headings++
		}
	}
	entries := ParseMonthFile(text)
	if len(entries) != headings {
		t.Fatalf("expected %d entries for %d heading matches, got %d", headings, headings, len(entries))
	}
}
