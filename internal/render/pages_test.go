package render

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/journal"
)

func testConfig() config.Config {
	return config.Config{
		SiteTitle:    "Drift Notes",
		SiteTagline:  "A quiet log",
		Order:        journal.OrderReverse,
		EnableSearch: true,
	}
}

func testEntry(t *testing.T, year, date string, body string, tags ...string) *journal.Entry {
	t.Helper()
	ts, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return &journal.Entry{
		Date:         date,
		HeadingLevel: 2,
		Body:         body,
		Tags:         tags,
		Year:         year,
		Timestamp:    ts,
	}
}

func TestYearPage(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())
	entry := testEntry(t, "2024", "2024-01-02", "Hello **world**.", "hiking")

	out, err := pages.YearPage("2024", []string{"2023", "2024"}, []*journal.Entry{entry}, false)
	if err != nil {
		t.Fatalf("YearPage: %v", err)
	}

	for _, want := range []string{
		"<title>Drift Notes – 2024</title>",
		`<article id="2024-01-02" class="entry">`,
		`<time datetime="2024-01-02">2024-01-02</time>`,
		"<strong>world</strong>",
		`<a href="tag/hiking.html" class="entry-tag">hiking</a>`,
		`<a href="2024.html" class="year-link active">2024</a>`,
		`<a href="2023.html" class="year-link">2023</a>`,
		"Entries are shown in reverse chronological order.",
		`<section class="search-section">`,
		`<script src="lunr.js"></script>`,
		`<script src="theme.js"></script>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected year page to contain %q", want)
		}
	}

	// Sidebar years are newest first.
	if strings.Index(out, ">2024</a>") > strings.Index(out, ">2023</a>") {
		t.Fatal("expected 2024 before 2023 in sidebar navigation")
	}
}

func TestYearPageAsIndex(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())
	entry := testEntry(t, "2024", "2024-01-02", "body")

	out, err := pages.YearPage("2024", []string{"2024"}, []*journal.Entry{entry}, true)
	if err != nil {
		t.Fatalf("YearPage: %v", err)
	}
	if !strings.Contains(out, "<title>Drift Notes</title>") {
		t.Fatal("expected plain site title on index page")
	}
	if !strings.Contains(out, "Latest entries – 2024") {
		t.Fatal("expected latest-entries heading on index page")
	}
}

func TestYearPageSearchDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.EnableSearch = false
	pages := NewPages(cfg, NewMarkdown())
	entry := testEntry(t, "2024", "2024-01-02", "body")

	out, err := pages.YearPage("2024", []string{"2024"}, []*journal.Entry{entry}, false)
	if err != nil {
		t.Fatalf("YearPage: %v", err)
	}
	if strings.Contains(out, "search-section") || strings.Contains(out, "lunr.js") {
		t.Fatal("expected no search UI when search disabled")
	}
	if !strings.Contains(out, "theme.js") {
		t.Fatal("expected theme script regardless of search")
	}
}

func TestTagPage(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())
	bucket := &journal.TagBucket{
		Slug:        "outdoor-trips",
		DisplayName: "Outdoor Trips",
		Entries: []*journal.Entry{
			testEntry(t, "2024", "2024-01-02", "body", "Outdoor Trips"),
		},
	}

	out, err := pages.TagPage(bucket, []string{"2024"})
	if err != nil {
		t.Fatalf("TagPage: %v", err)
	}

	if !strings.Contains(out, "Tag: Outdoor Trips") {
		t.Fatal("expected tag heading")
	}
	if !strings.Contains(out, `<link rel="stylesheet" href="../style.css">`) {
		t.Fatal("expected ../ prefix on tag page assets")
	}
	if !strings.Contains(out, `<a href="../2024.html" class="year-link">2024</a>`) {
		t.Fatal("expected ../ prefix on sidebar year links")
	}
	if !strings.Contains(out, `<span class="entry-tag">Outdoor Trips</span>`) {
		t.Fatal("expected unlinked tag pills on tag pages")
	}
	if strings.Contains(out, `class="entry-tag" href`) || strings.Contains(out, `<a href="../tag/`) {
		t.Fatal("expected no self-links on tag pages")
	}
	if strings.Contains(out, "lunr.js") {
		t.Fatal("expected no search scripts on tag pages")
	}
}

func TestTagDirectoryPage(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())

	fsys := map[string]string{
		"2024/01.md": "## 2024-01-02\ntags: zebra, apple\n\none\n\n## 2024-01-03\ntags: apple\n\ntwo",
	}
	years := collectFixture(t, fsys)
	tags := journal.BuildTagIndex(years)

	out, err := pages.TagDirectoryPage(tags, years.Years())
	if err != nil {
		t.Fatalf("TagDirectoryPage: %v", err)
	}

	if !strings.Contains(out, `<a href="tag/apple.html" class="tag-index-link">apple</a> <span class="tag-index-count">(2)</span>`) {
		t.Fatalf("expected apple count of 2, got:\n%s", out)
	}
	if strings.Index(out, "tag/apple.html") > strings.Index(out, "tag/zebra.html") {
		t.Fatal("expected alphabetical tag listing")
	}
}

func TestTagDirectoryPageEmpty(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())
	years := collectFixture(t, map[string]string{"2024/01.md": "## 2024-01-02\nuntagged"})
	tags := journal.BuildTagIndex(years)

	out, err := pages.TagDirectoryPage(tags, years.Years())
	if err != nil {
		t.Fatalf("TagDirectoryPage: %v", err)
	}
	if !strings.Contains(out, "<p>No tags yet.</p>") {
		t.Fatal("expected empty-state paragraph")
	}
}

func TestOnThisDayPage(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())
	matches := []*journal.Entry{
		testEntry(t, "2024", "2024-03-10", "newer"),
		testEntry(t, "2023", "2023-03-10", "older"),
	}

	out, err := pages.OnThisDayPage("March 10", []string{"2023", "2024"}, matches)
	if err != nil {
		t.Fatalf("OnThisDayPage: %v", err)
	}
	if !strings.Contains(out, "On this day – March 10") {
		t.Fatal("expected day label in heading")
	}
	if !strings.Contains(out, `class="sidebar-link active">On this day</a>`) {
		t.Fatal("expected active sidebar link")
	}
	if strings.Index(out, `id="2024-03-10"`) > strings.Index(out, `id="2023-03-10"`) {
		t.Fatal("expected newest entry first")
	}
}

func TestOnThisDayPageEmptyState(t *testing.T) {
	pages := NewPages(testConfig(), NewMarkdown())

	out, err := pages.OnThisDayPage("December 25", []string{"2024"}, nil)
	if err != nil {
		t.Fatalf("OnThisDayPage: %v", err)
	}
	if !strings.Contains(out, "<p>No earlier entries for this date yet.</p>") {
		t.Fatal("expected distinct no-matches state")
	}
	if !strings.Contains(out, "No earlier entries found on December 25.") {
		t.Fatal("expected empty-state subtitle")
	}
}

func TestPageInjectsFragments(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraHead = []string{`<meta name="robots" content="noindex">`}
	cfg.ExtraFooter = []string{"<p>footer one</p>", "<p>footer two</p>"}
	pages := NewPages(cfg, NewMarkdown())

	out, err := pages.YearPage("2024", []string{"2024"}, nil, false)
	if err != nil {
		t.Fatalf("YearPage: %v", err)
	}
	if !strings.Contains(out, `<meta name="robots" content="noindex">`) {
		t.Fatal("expected head fragment injected verbatim")
	}
	if !strings.Contains(out, "<p>footer one</p>") || !strings.Contains(out, "<p>footer two</p>") {
		t.Fatal("expected footer fragments injected verbatim")
	}
}
