package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/driftnotes/internal/config"
	"github.com/goliatone/driftnotes/internal/logging"
)

// Generated into the output directory on every build.
const (
	themeJSName     = "theme.js"
	searchIndexName = "search_index.json"
)

// copyAssets copies the configured static files into the output root. A
// missing source file is recoverable: log a warning, skip it, keep building.
// Returns the number of assets copied.
func copyAssets(ctx context.Context, w ArtifactWriter, cfg config.Config, log logging.Logger) (int, error) {
	sources := []string{cfg.Assets.Stylesheet}
	if cfg.EnableSearch {
		sources = append(sources, cfg.Assets.LunrJS, cfg.Assets.SearchJS)
	}

	copied := 0
	for _, src := range sources {
		data, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warn("static asset missing, skipping", "path", src)
				continue
			}
			return copied, fmt.Errorf("generator: read asset %s: %w", src, err)
		}
		name := filepath.Base(src)
		if err := w.WriteFile(ctx, name, data); err != nil {
			return copied, err
		}
		log.Debug("copied asset", "name", name)
		copied++
	}
	return copied, nil
}

// writeThemeJS writes the dark-mode persistence script. It is generated, not
// copied, so the output is self-contained even with no assets present.
func writeThemeJS(ctx context.Context, w ArtifactWriter) error {
	return w.WriteFile(ctx, themeJSName, []byte(themeJS))
}

const themeJS = `(function () {
  function initThemeToggle() {
    var toggle = document.getElementById('theme-toggle');
    if (!toggle) return;

    var saved = localStorage.getItem('theme');
    if (saved === 'dark') {
      toggle.checked = true;
    } else if (saved === 'light') {
      toggle.checked = false;
    }

    toggle.addEventListener('change', function () {
      localStorage.setItem('theme', toggle.checked ? 'dark' : 'light');
    });
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', initThemeToggle);
  } else {
    initThemeToggle();
  }
})();
`
