package render

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/driftnotes/internal/journal"
)

func collectFixture(t *testing.T, files map[string]string) *journal.YearIndex {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	years, err := journal.Collect(fsys, journal.CollectOptions{})
	if err != nil {
		t.Fatalf("collect fixture: %v", err)
	}
	return years
}
