package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/journal"
)

// RSS builds the syndication document covering the most recent year's
// entries. Entry bodies travel as rendered HTML inside CDATA so aggregators
// receive the literal markup rather than a plain-text summary.
func RSS(cfg config.Config, md *Markdown, year string, entries []*journal.Entry, buildTime time.Time) (string, error) {
	channelLink := entryPageURL(cfg.SiteURL, year)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0">` + "\n")
	b.WriteString("<channel>\n")
	b.WriteString(fmt.Sprintf("  <title>%s – %s</title>\n", escapeXML(cfg.SiteTitle), escapeXML(year)))
	b.WriteString(fmt.Sprintf("  <link>%s</link>\n", escapeXML(channelLink)))
	b.WriteString(fmt.Sprintf("  <description>%s</description>\n", escapeXML(cfg.SiteTagline)))
	b.WriteString(fmt.Sprintf("  <lastBuildDate>%s</lastBuildDate>\n", buildTime.UTC().Format(time.RFC1123Z)))

	for _, entry := range entries {
		body, err := md.Render(entry.Body)
		if err != nil {
			return "", fmt.Errorf("render: feed entry %s: %w", entry.ID(), err)
		}
		link := absoluteURL(cfg.SiteURL, entryURL(year, entry.Date))

		b.WriteString("  <item>\n")
		b.WriteString(fmt.Sprintf("    <title>%s – %s</title>\n", escapeXML(entry.Date), escapeXML(cfg.SiteTitle)))
		b.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(link)))
		b.WriteString(fmt.Sprintf("    <guid>%s</guid>\n", escapeXML(link)))
		b.WriteString(fmt.Sprintf("    <pubDate>%s</pubDate>\n", entry.Timestamp.UTC().Format(time.RFC1123Z)))
		b.WriteString(fmt.Sprintf("    <description><![CDATA[%s]]></description>\n", string(body)))
		b.WriteString("  </item>\n")
	}

	b.WriteString("</channel>\n")
	b.WriteString("</rss>\n")
	return b.String(), nil
}

// entryURL is the site-relative location of one entry.
func entryURL(year, date string) string {
	return year + ".html#" + date
}

// entryPageURL is the location of a year page, absolute when a site URL is
// configured.
func entryPageURL(siteURL, year string) string {
	return absoluteURL(siteURL, year+".html")
}

// absoluteURL prefixes a site-relative path with the configured base URL when
// one is set; otherwise the relative path stands.
func absoluteURL(siteURL, rel string) string {
	if siteURL == "" {
		return rel
	}
	return siteURL + "/" + rel
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}
