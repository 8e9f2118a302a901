package generator

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/journal"
	"github.com/goliatone/driftnotes/internal/logging"
	"github.com/goliatone/driftnotes/internal/render"
)

// Service runs one complete build: collect entries, derive indices, render
// every artifact, and hand them to the writer. Indices are fully built before
// the first render since pages read global cross-references (the year list).
type Service struct {
	cfg    config.Config
	log    logging.Logger
	writer ArtifactWriter
	md     *render.Markdown
	now    func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger installs a logger. Defaults to no-op.
func WithLogger(log logging.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWriter replaces the artifact writer. Defaults to a filesystem writer
// rooted at the configured output directory.
func WithWriter(w ArtifactWriter) Option {
	return func(s *Service) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithClock overrides build time, which drives the on-this-day reference
// date and the feed's lastBuildDate.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a build service for the given configuration.
func New(cfg config.Config, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		log:    logging.NoOp(),
		writer: NewFilesystemWriter(cfg.OutputDir),
		md:     render.NewMarkdown(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildResult summarizes one run.
type BuildResult struct {
	Entries      int
	Years        int
	Tags         int
	PagesWritten int
	AssetsCopied int
	Duration     time.Duration
}

// Build executes the whole pipeline. It fails fast: the first error aborts
// the run. An empty corpus is a distinct fatal error (journal.ErrNoEntries).
func (s *Service) Build(ctx context.Context) (*BuildResult, error) {
	started := s.now()

	years, err := journal.Collect(os.DirFS(s.cfg.ContentRoot), journal.CollectOptions{
		Order:         s.cfg.Order,
		IncludeDrafts: s.cfg.IncludeDrafts,
	})
	if err != nil {
		return nil, err
	}
	if years.Len() == 0 {
		return nil, journal.ErrNoEntries
	}

	tags := journal.BuildTagIndex(years)
	buildTime := s.now()
	matches := journal.OnThisDay(years, buildTime)

	s.log.Info("collected entries",
		"entries", years.Len(), "years", len(years.Years()), "tags", tags.Len())

	result := &BuildResult{
		Entries: years.Len(),
		Years:   len(years.Years()),
		Tags:    tags.Len(),
	}

	if err := s.writer.EnsureDir(ctx, "."); err != nil {
		return nil, err
	}

	copied, err := copyAssets(ctx, s.writer, s.cfg, s.log)
	if err != nil {
		return nil, err
	}
	result.AssetsCopied = copied
	if err := writeThemeJS(ctx, s.writer); err != nil {
		return nil, err
	}

	pages := render.NewPages(s.cfg, s.md)
	yearLabels := years.Years()

	for _, year := range yearLabels {
		doc, err := pages.YearPage(year, yearLabels, years.Entries(year), false)
		if err != nil {
			return nil, err
		}
		if err := s.writeArtifact(ctx, year+".html", doc, result); err != nil {
			return nil, err
		}
	}

	latest := years.Latest()
	if s.cfg.LatestAsIndex {
		doc, err := pages.YearPage(latest, yearLabels, years.Entries(latest), true)
		if err != nil {
			return nil, err
		}
		if err := s.writeArtifact(ctx, "index.html", doc, result); err != nil {
			return nil, err
		}
	}

	feed, err := render.RSS(s.cfg, s.md, latest, years.Entries(latest), buildTime)
	if err != nil {
		return nil, err
	}
	if err := s.writeArtifact(ctx, "rss.xml", feed, result); err != nil {
		return nil, err
	}

	onThisDay, err := pages.OnThisDayPage(buildTime.Format("January 02"), yearLabels, matches)
	if err != nil {
		return nil, err
	}
	if err := s.writeArtifact(ctx, "on-this-day.html", onThisDay, result); err != nil {
		return nil, err
	}

	if tags.Len() > 0 {
		if err := s.writer.EnsureDir(ctx, "tag"); err != nil {
			return nil, err
		}
		for _, slug := range tags.Slugs() {
			doc, err := pages.TagPage(tags.Bucket(slug), yearLabels)
			if err != nil {
				return nil, err
			}
			if err := s.writeArtifact(ctx, "tag/"+slug+".html", doc, result); err != nil {
				return nil, err
			}
		}
	}

	tagDir, err := pages.TagDirectoryPage(tags, yearLabels)
	if err != nil {
		return nil, err
	}
	if err := s.writeArtifact(ctx, "tags.html", tagDir, result); err != nil {
		return nil, err
	}

	if s.cfg.EnableSearch {
		docs := render.BuildSearchDocuments(s.cfg, s.md, years)
		data, err := render.EncodeSearchIndex(docs)
		if err != nil {
			return nil, err
		}
		if err := s.writer.WriteFile(ctx, searchIndexName, data); err != nil {
			return nil, err
		}
		result.PagesWritten++
		s.log.Debug("wrote artifact", "path", searchIndexName)
	}

	result.Duration = s.now().Sub(started)
	s.log.Info("build complete",
		"pages", result.PagesWritten, "assets", result.AssetsCopied, "duration", result.Duration)
	return result, nil
}

func (s *Service) writeArtifact(ctx context.Context, path, doc string, result *BuildResult) error {
	if err := s.writer.WriteFile(ctx, path, []byte(doc)); err != nil {
		return fmt.Errorf("generator: artifact %s: %w", path, err)
	}
	result.PagesWritten++
	s.log.Debug("wrote artifact", "path", path)
	return nil
}
