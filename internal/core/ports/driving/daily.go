package driving

import "github.com/custodia-labs/studyshelf/internal/core/domain"

// DailyService navigates the dated-entries collection by calendar date.
// All methods return domain.ErrNotFound when the daily document is missing
// or holds no matching entry.
type DailyService interface {
	// Today returns the entry for the current date, falling back to the
	// first entry when today has none.
	Today() (*domain.Section, error)

	// ByDate returns the entry for a month name and day number.
	ByDate(month string, day int) (*domain.Section, error)

	// Shift returns the nearest entry before or after the given one,
	// wrapping across month and year boundaries and skipping dates with no
	// entry. Direction is +1 or -1.
	Shift(from *domain.Section, direction int) (*domain.Section, error)

	// Random returns a uniformly random entry.
	Random() (*domain.Section, error)

	// Entries returns a month's entries sorted by day.
	Entries(month string) []domain.Section
}
