package planning

import "context"

type Repository interface {
	// ReplaceYear deletes every entry (across all tracks) whose due date falls
	// inside the year, then inserts the given entries, atomically. Entries
	// outside the year are untouched.
	ReplaceYear(ctx context.Context, year int, entries []Entry) error

	// ListYear returns the union of all tracks for the year, ordered by due date.
	ListYear(ctx context.Context, year int) ([]Entry, error)
}
