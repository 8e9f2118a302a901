package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/driftnotes/internal/journal"
)

// ErrNotFound wraps a missing configuration file so the CLI can report it
// distinctly from parse failures.
var ErrNotFound = errors.New("config: file not found")

// Config is the immutable build configuration, read once per run and passed
// by value into every component.
type Config struct {
	SiteTitle   string
	SiteTagline string
	// SiteURL, when set, enables absolute links in the feed and search
	// documents. No trailing slash.
	SiteURL string

	// ContentRoot and OutputDir are absolute paths, resolved against the
	// directory containing the config file.
	ContentRoot string
	OutputDir   string

	Order         journal.Order
	LatestAsIndex bool
	IncludeDrafts bool
	EnableSearch  bool

	// ExtraHead and ExtraFooter are raw HTML fragments injected verbatim
	// into every page.
	ExtraHead   []string
	ExtraFooter []string

	// Assets are source paths for static files, resolved against the config
	// file directory.
	Assets AssetPaths
}

// AssetPaths locates the static files copied into the output directory.
type AssetPaths struct {
	Stylesheet string
	LunrJS     string
	SearchJS   string
}

// fileConfig is the YAML shape. Booleans that default to true are pointers so
// absence is distinguishable from an explicit false.
type fileConfig struct {
	SiteTitle     string       `yaml:"site_title"`
	SiteTagline   string       `yaml:"site_tagline"`
	SiteURL       string       `yaml:"site_url"`
	ContentRoot   string       `yaml:"content_root"`
	OutputDir     string       `yaml:"output_dir"`
	Order         string       `yaml:"order"`
	LatestAsIndex *bool        `yaml:"latest_as_index"`
	IncludeDrafts bool         `yaml:"include_drafts"`
	EnableSearch  *bool        `yaml:"enable_search"`
	ExtraHead     FragmentList `yaml:"extra_head"`
	ExtraFooter   FragmentList `yaml:"extra_footer"`
	Assets        struct {
		Stylesheet string `yaml:"stylesheet"`
		LunrJS     string `yaml:"lunr_js"`
		SearchJS   string `yaml:"search_js"`
	} `yaml:"assets"`
}

// FragmentList accepts either a single YAML scalar or a sequence of scalars.
type FragmentList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FragmentList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value string
		if err := node.Decode(&value); err != nil {
			return err
		}
		*f = FragmentList{value}
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*f = FragmentList(values)
		return nil
	default:
		return fmt.Errorf("config: fragment must be a string or list of strings")
	}
}

// Load reads, defaults, and validates the configuration at path. Relative
// content/output/asset paths resolve against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve base dir: %w", err)
	}

	cfg := fromFile(raw, baseDir)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

func fromFile(raw fileConfig, baseDir string) Config {
	cfg := Config{
		SiteTitle:     defaultString(raw.SiteTitle, "Journal"),
		SiteTagline:   raw.SiteTagline,
		SiteURL:       trimTrailingSlash(raw.SiteURL),
		ContentRoot:   resolvePath(baseDir, defaultString(raw.ContentRoot, "content")),
		OutputDir:     resolvePath(baseDir, defaultString(raw.OutputDir, "_site")),
		Order:         journal.Order(defaultString(raw.Order, string(journal.OrderReverse))),
		LatestAsIndex: defaultBool(raw.LatestAsIndex, true),
		IncludeDrafts: raw.IncludeDrafts,
		EnableSearch:  defaultBool(raw.EnableSearch, true),
		ExtraHead:     raw.ExtraHead,
		ExtraFooter:   raw.ExtraFooter,
		Assets: AssetPaths{
			Stylesheet: resolvePath(baseDir, defaultString(raw.Assets.Stylesheet, "style.css")),
			LunrJS:     resolvePath(baseDir, defaultString(raw.Assets.LunrJS, "lunr.js")),
			SearchJS:   resolvePath(baseDir, defaultString(raw.Assets.SearchJS, "search.js")),
		},
	}
	return cfg
}

// Validate checks the loaded configuration. The order direction is the only
// enumerated field; paths are validated lazily when the build touches them.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SiteTitle, validation.Required),
		validation.Field(&c.ContentRoot, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Order, validation.Required,
			validation.In(journal.OrderReverse, journal.OrderChronological)),
	)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultBool(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func resolvePath(baseDir, value string) string {
	if value == "" || filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(baseDir, value)
}

func trimTrailingSlash(url string) string {
	for len(url) > 0 && url[len(url)-1] == '/' {
		url = url[:len(url)-1]
	}
	return url
}
