package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEntries signals that no entry survived anywhere in the content
	// tree. Distinct from configuration failures so the CLI can report it
	// separately.
	ErrNoEntries = errors.New("journal: no entries found")

	// ErrInvalidDate is the base error wrapped by ParseError for headings
	// whose date string does not parse.
	ErrInvalidDate = errors.New("journal: invalid entry date")
)

// ParseError reports an entry heading whose date could not be parsed. Dates
// are trusted author input, so this aborts the build with enough context to
// fix the source file.
type ParseError struct {
	Path string
	Date string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: bad date %q: %v", ErrInvalidDate.Error(), e.Path, e.Date, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidDate
}
