package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/journal"
)

// Pages renders every HTML artifact. All methods are pure: they read the
// immutable configuration and index data and return a document string.
type Pages struct {
	cfg config.Config
	md  *Markdown
}

// NewPages builds the page renderer.
func NewPages(cfg config.Config, md *Markdown) *Pages {
	return &Pages{cfg: cfg, md: md}
}

// YearLink is one sidebar navigation entry.
type YearLink struct {
	Label  string
	Href   string
	Active bool
}

// page is the layout template context. Navigation, body content, and injected
// fragments each get an explicit slot so escaping stays verifiable.
type page struct {
	Title           string
	SiteTitle       string
	SiteTagline     string
	Prefix          string
	Heading         string
	Subtitle        string
	YearNav         []YearLink
	OnThisDayActive bool
	ExtraHead       []template.HTML
	ExtraFooter     []template.HTML
	ShowSearchUI    bool
	SearchScripts   bool
	Content         template.HTML
}

type entryView struct {
	Date    string
	Heading template.HTML
	Tags    []tagPill
	Body    template.HTML
}

type tagPill struct {
	Label string
	Href  string
}

var (
	layoutTemplate = template.Must(template.New("layout").Parse(layoutText))
	entryTemplate  = template.Must(template.New("entry").Parse(entryText))
	tagDirTemplate = template.Must(template.New("tagdir").Parse(tagDirText))
)

// YearPage renders one year's archive. When isIndex is set the page carries
// the plain site title and a "Latest entries" heading; the artifact itself is
// identical otherwise.
func (p *Pages) YearPage(year string, years []string, entries []*journal.Entry, isIndex bool) (string, error) {
	content, err := p.renderEntries(entries, true, "")
	if err != nil {
		return "", err
	}

	pg := page{
		SiteTitle:     p.cfg.SiteTitle,
		SiteTagline:   p.cfg.SiteTagline,
		YearNav:       p.yearNav(years, year, ""),
		ExtraHead:     fragments(p.cfg.ExtraHead),
		ExtraFooter:   fragments(p.cfg.ExtraFooter),
		ShowSearchUI:  p.cfg.EnableSearch,
		SearchScripts: p.cfg.EnableSearch,
		Subtitle:      fmt.Sprintf("Entries are shown in %s order.", orderText(p.cfg.Order)),
		Content:       content,
	}
	if isIndex {
		pg.Title = p.cfg.SiteTitle
		pg.Heading = fmt.Sprintf("Latest entries – %s", year)
	} else {
		pg.Title = fmt.Sprintf("%s – %s", p.cfg.SiteTitle, year)
		pg.Heading = year
	}
	return renderLayout(pg)
}

// TagPage renders the archive for one tag. Tag pills are plain text here so a
// tag page never links to itself.
func (p *Pages) TagPage(bucket *journal.TagBucket, years []string) (string, error) {
	content, err := p.renderEntries(bucket.Entries, false, "../")
	if err != nil {
		return "", err
	}
	subtitle := "Entries across all years with this tag."
	if len(bucket.Entries) == 0 {
		content = template.HTML("<p>No entries yet for this tag.</p>")
		subtitle = "No entries found for this tag."
	}

	return renderLayout(page{
		Title:       fmt.Sprintf("%s – Tag: %s", p.cfg.SiteTitle, bucket.DisplayName),
		SiteTitle:   p.cfg.SiteTitle,
		SiteTagline: p.cfg.SiteTagline,
		Prefix:      "../",
		Heading:     fmt.Sprintf("Tag: %s", bucket.DisplayName),
		Subtitle:    subtitle,
		YearNav:     p.yearNav(years, "", "../"),
		ExtraHead:   fragments(p.cfg.ExtraHead),
		ExtraFooter: fragments(p.cfg.ExtraFooter),
		Content:     content,
	})
}

// TagDirectoryPage renders tags.html: every tag with its entry count, sorted
// by display name case-insensitively.
func (p *Pages) TagDirectoryPage(tags *journal.TagIndex, years []string) (string, error) {
	type item struct {
		Slug        string
		DisplayName string
		Count       int
	}
	var items []item
	for _, bucket := range tags.SortedByName() {
		items = append(items, item{Slug: bucket.Slug, DisplayName: bucket.DisplayName, Count: len(bucket.Entries)})
	}

	var buf bytes.Buffer
	if err := tagDirTemplate.Execute(&buf, items); err != nil {
		return "", fmt.Errorf("render: tag directory: %w", err)
	}

	subtitle := "All tags used in this journal."
	if len(items) == 0 {
		subtitle = "No tags found."
	}

	return renderLayout(page{
		Title:         fmt.Sprintf("%s – Tags", p.cfg.SiteTitle),
		SiteTitle:     p.cfg.SiteTitle,
		SiteTagline:   p.cfg.SiteTagline,
		Heading:       "Tags",
		Subtitle:      subtitle,
		YearNav:       p.yearNav(years, "", ""),
		ExtraHead:     fragments(p.cfg.ExtraHead),
		ExtraFooter:   fragments(p.cfg.ExtraFooter),
		SearchScripts: p.cfg.EnableSearch,
		Content:       template.HTML(buf.String()),
	})
}

// OnThisDayPage renders entries from different years sharing the build date's
// month and day. An empty match set renders a distinct "no matches" state.
func (p *Pages) OnThisDayPage(dayLabel string, years []string, matches []*journal.Entry) (string, error) {
	var content template.HTML
	var subtitle string
	if len(matches) > 0 {
		rendered, err := p.renderEntries(matches, true, "")
		if err != nil {
			return "", err
		}
		content = rendered
		subtitle = fmt.Sprintf("Entries from different years that happened on %s.", dayLabel)
	} else {
		content = template.HTML("<p>No earlier entries for this date yet.</p>")
		subtitle = fmt.Sprintf("No earlier entries found on %s.", dayLabel)
	}

	return renderLayout(page{
		Title:           fmt.Sprintf("%s – On this day", p.cfg.SiteTitle),
		SiteTitle:       p.cfg.SiteTitle,
		SiteTagline:     p.cfg.SiteTagline,
		Heading:         fmt.Sprintf("On this day – %s", dayLabel),
		Subtitle:        subtitle,
		YearNav:         p.yearNav(years, "", ""),
		OnThisDayActive: true,
		ExtraHead:       fragments(p.cfg.ExtraHead),
		ExtraFooter:     fragments(p.cfg.ExtraFooter),
		Content:         content,
	})
}

// renderEntries renders a sequence of articles. linkTags controls whether tag
// pills link to their tag pages; prefix adjusts hrefs for nested output
// directories.
func (p *Pages) renderEntries(entries []*journal.Entry, linkTags bool, prefix string) (template.HTML, error) {
	var buf bytes.Buffer
	for i, entry := range entries {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		body, err := p.md.Render(entry.Body)
		if err != nil {
			return "", fmt.Errorf("render: entry %s: %w", entry.ID(), err)
		}

		level := journal.ClampHeadingLevel(entry.HeadingLevel)
		view := entryView{
			Date: entry.Date,
			// Date strings are digits and hyphens by grammar, safe to splice.
			Heading: template.HTML(fmt.Sprintf(
				`<h%d class="entry-date"><time datetime="%s">%s</time></h%d>`,
				level, entry.Date, entry.Date, level)),
			Body: body,
		}
		for _, tag := range entry.Tags {
			pill := tagPill{Label: tag}
			if linkTags {
				pill.Href = prefix + "tag/" + journal.Slugify(tag) + ".html"
			}
			view.Tags = append(view.Tags, pill)
		}

		if err := entryTemplate.Execute(&buf, view); err != nil {
			return "", fmt.Errorf("render: entry %s: %w", entry.ID(), err)
		}
	}
	return template.HTML(buf.String()), nil
}

func (p *Pages) yearNav(years []string, active string, prefix string) []YearLink {
	// Newest first in the sidebar.
	links := make([]YearLink, 0, len(years))
	for i := len(years) - 1; i >= 0; i-- {
		year := years[i]
		links = append(links, YearLink{
			Label:  year,
			Href:   prefix + year + ".html",
			Active: year == active,
		})
	}
	return links
}

func renderLayout(pg page) (string, error) {
	var buf bytes.Buffer
	if err := layoutTemplate.Execute(&buf, pg); err != nil {
		return "", fmt.Errorf("render: layout: %w", err)
	}
	return buf.String(), nil
}

func fragments(raw []string) []template.HTML {
	if len(raw) == 0 {
		return nil
	}
	out := make([]template.HTML, 0, len(raw))
	for _, fragment := range raw {
		out = append(out, template.HTML(fragment))
	}
	return out
}

func orderText(order journal.Order) string {
	if order == journal.OrderChronological {
		return "chronological"
	}
	return "reverse chronological"
}

const layoutText = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="stylesheet" href="{{.Prefix}}style.css">
  <link rel="alternate" type="application/rss+xml" title="{{.SiteTitle}} – RSS" href="{{.Prefix}}rss.xml">
{{- range .ExtraHead}}
  {{.}}
{{- end}}
</head>
<body>
<input type="checkbox" id="theme-toggle" class="theme-toggle-checkbox" aria-label="Toggle dark mode">
<div class="layout">
  <aside class="sidebar">
    <header class="site-header">
      <h1 class="site-title"><a href="{{.Prefix}}index.html">{{.SiteTitle}}</a></h1>
      <p class="site-tagline">{{.SiteTagline}}</p>
    </header>

    <div class="theme-toggle-control">
      <label for="theme-toggle" class="theme-toggle-label">
        <span class="theme-toggle-icon theme-toggle-light" aria-hidden="true">☀️</span>
        <span class="theme-toggle-icon theme-toggle-dark" aria-hidden="true">🌙</span>
        <span class="theme-toggle-text">Theme</span>
      </label>
    </div>

    <div class="sidebar-extra-links">
      <a href="{{.Prefix}}on-this-day.html" class="sidebar-link{{if .OnThisDayActive}} active{{end}}">On this day</a>
      <a href="{{.Prefix}}tags.html" class="sidebar-link">Tags</a>
    </div>

    <nav class="year-nav">
      <h2 class="year-nav-title">Years</h2>
      <ul class="year-nav-list">
{{- range .YearNav}}
        <li><a href="{{.Href}}" class="year-link{{if .Active}} active{{end}}">{{.Label}}</a></li>
{{- end}}
      </ul>
    </nav>
  </aside>

  <main class="content">
    <div class="content-inner">
      <header class="content-header">
        <h2 class="year-title">{{.Heading}}</h2>
        <p class="content-subtitle">{{.Subtitle}}</p>
      </header>
{{- if .ShowSearchUI}}
      <section class="search-section">
        <form class="search-form" role="search" onsubmit="return false;">
          <label for="search-input" class="search-label">Search entries</label>
          <input id="search-input" class="search-input" type="search" placeholder="Search this journal">
        </form>
        <div id="search-results" class="search-results" aria-live="polite"></div>
      </section>
{{- end}}
      {{.Content}}
    </div>
  </main>
</div>

<footer class="site-footer">
{{- range .ExtraFooter}}
  {{.}}
{{- end}}
</footer>
{{- if .SearchScripts}}
<script src="{{.Prefix}}lunr.js"></script>
<script src="{{.Prefix}}search.js"></script>
{{- end}}
<script src="{{.Prefix}}theme.js"></script>

</body>
</html>
`

const entryText = `<article id="{{.Date}}" class="entry">
  <header class="entry-header">
    {{.Heading}}
    <a class="entry-permalink" href="#{{.Date}}" title="Permalink to this entry">¶</a>
{{- if .Tags}}
    <ul class="entry-tags">{{range .Tags}}<li>{{if .Href}}<a href="{{.Href}}" class="entry-tag">{{.Label}}</a>{{else}}<span class="entry-tag">{{.Label}}</span>{{end}}</li>{{end}}</ul>
{{- end}}
  </header>
  <div class="entry-body">
    {{.Body}}
  </div>
</article>
`

const tagDirText = `{{if .}}<ul class="tag-index-list">
{{- range .}}
  <li class="tag-index-item"><a href="tag/{{.Slug}}.html" class="tag-index-link">{{.DisplayName}}</a> <span class="tag-index-count">({{.Count}})</span></li>
{{- end}}
</ul>{{else}}<p>No tags yet.</p>{{end}}
`
