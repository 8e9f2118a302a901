package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/generator"
	"github.com/goliatone/driftnotes/internal/journal"
	"github.com/goliatone/driftnotes/internal/logging/gologger"
)

func main() {
	var (
		configPath    = flag.String("config", "config.yml", "path to the site configuration file")
		logLevel      = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
		logFormat     = flag.String("log-format", "console", "log format: console, json, pretty")
		includeDrafts = flag.Bool("drafts", false, "include entries marked draft: true")
	)
	flag.Parse()

	if err := run(*configPath, *logLevel, *logFormat, *includeDrafts); err != nil {
		fmt.Fprintf(os.Stderr, "driftnotes: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel, logFormat string, includeDrafts bool) error {
	provider, err := gologger.NewProvider(gologger.Config{
		Level:  logLevel,
		Format: logFormat,
	})
	if err != nil {
		return err
	}
	log := provider.GetLogger("driftnotes")

	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return goerrors.Wrap(err, goerrors.CategoryValidation,
				fmt.Sprintf("configuration file %s does not exist", configPath)).
				WithTextCode("CONFIG_NOT_FOUND")
		}
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
			WithTextCode("CONFIG_INVALID")
	}
	if includeDrafts {
		cfg.IncludeDrafts = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting build",
		"config", configPath,
		"content", cfg.ContentRoot,
		"output", cfg.OutputDir)

	svc := generator.New(cfg, generator.WithLogger(provider.GetLogger("generator")))
	result, err := svc.Build(ctx)
	if err != nil {
		if errors.Is(err, journal.ErrNoEntries) {
			return goerrors.Wrap(err, goerrors.CategoryCommand,
				fmt.Sprintf("no journal entries found under %s", cfg.ContentRoot)).
				WithTextCode("EMPTY_CORPUS")
		}
		return goerrors.Wrap(err, goerrors.CategoryCommand, "build failed").
			WithTextCode("BUILD_FAILED")
	}

	log.Info("site generated",
		"entries", result.Entries,
		"years", result.Years,
		"tags", result.Tags,
		"pages", result.PagesWritten,
		"assets", result.AssetsCopied,
		"duration", result.Duration)
	return nil
}
