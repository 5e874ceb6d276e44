package services

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/core/ports/driving"
)

// shiftSafetyBound caps the date walk in Shift so a daily document with
// sparse or malformed dates can never loop forever. 370 steps covers a full
// year of daily dates with slack.
const shiftSafetyBound = 370

// DailyService navigates the daily document of the current snapshot by
// calendar date.
type DailyService struct {
	library driving.LibraryService

	// now is swappable for tests.
	now func() time.Time
}

var _ driving.DailyService = (*DailyService)(nil)

// NewDailyService creates a daily-reading service backed by the given library.
func NewDailyService(library driving.LibraryService) *DailyService {
	return &DailyService{library: library, now: time.Now}
}

// Today returns the entry for the current date, or the first entry when
// today's date has none.
func (s *DailyService) Today() (*domain.Section, error) {
	doc := s.document()
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	now := s.now()
	if section := findByDate(doc, domain.Months[int(now.Month())-1], now.Day()); section != nil {
		return section, nil
	}
	return &doc.Sections[0], nil
}

// ByDate returns the entry for a month name and day number.
func (s *DailyService) ByDate(month string, day int) (*domain.Section, error) {
	doc := s.document()
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if section := findByDate(doc, month, day); section != nil {
		return section, nil
	}
	return nil, domain.ErrNotFound
}

// Shift walks the calendar from the given entry one day at a time in the
// given direction, wrapping across month and year boundaries, until it finds
// a date with an entry.
func (s *DailyService) Shift(from *domain.Section, direction int) (*domain.Section, error) {
	doc := s.document()
	if doc == nil || from == nil {
		return nil, domain.ErrNotFound
	}
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	monthIndex := domain.MonthIndex(from.Meta.Month)
	day := from.Meta.Day
	if monthIndex < 0 || day < 1 {
		now := s.now()
		monthIndex = int(now.Month()) - 1
		day = now.Day()
	}

	for i := 0; i < shiftSafetyBound; i++ {
		day += direction
		if day > domain.DaysInMonth(monthIndex) {
			monthIndex = (monthIndex + 1) % 12
			day = 1
		} else if day < 1 {
			monthIndex = (monthIndex + 11) % 12
			day = domain.DaysInMonth(monthIndex)
		}
		if section := findByDate(doc, domain.Months[monthIndex], day); section != nil {
			return section, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Random returns a uniformly random entry.
func (s *DailyService) Random() (*domain.Section, error) {
	doc := s.document()
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return &doc.Sections[rand.Intn(len(doc.Sections))], nil
}

// Entries returns a month's entries sorted by day.
func (s *DailyService) Entries(month string) []domain.Section {
	doc := s.document()
	if doc == nil {
		return nil
	}
	var entries []domain.Section
	for _, section := range doc.Sections {
		if strings.EqualFold(section.Meta.Month, month) {
			entries = append(entries, section)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Meta.Day < entries[j].Meta.Day
	})
	return entries
}

// document returns the daily document of the current snapshot, or nil when it
// is missing or empty.
func (s *DailyService) document() *domain.Document {
	doc := s.library.Snapshot().DocumentByID(domain.DailyDocumentID)
	if doc == nil || len(doc.Sections) == 0 {
		return nil
	}
	return doc
}

func findByDate(doc *domain.Document, month string, day int) *domain.Section {
	for i := range doc.Sections {
		meta := &doc.Sections[i].Meta
		if meta.Day == day && strings.EqualFold(meta.Month, month) {
			return &doc.Sections[i]
		}
	}
	return nil
}
