package journal

import "time"

// OnThisDay returns every entry whose month and day match the reference
// date, drawn from all years, newest first. An empty result is valid; the
// render layer owes it a distinct "no matches" state.
func OnThisDay(years *YearIndex, ref time.Time) []*Entry {
	month, day := ref.Month(), ref.Day()

	var matches []*Entry
	years.Walk(func(entry *Entry) {
		if entry.Timestamp.Month() == month && entry.Timestamp.Day() == day {
			matches = append(matches, entry)
		}
	})

	sortBucket(matches, OrderReverse)
	return matches
}
