package domain

import (
	"strings"
	"time"
)

// Months lists the month display names used by the dated-entries collection.
var Months = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// dailyFallbackYear anchors day-count arithmetic. A leap year, so the
// collection's February 29 entry stays reachable.
const dailyFallbackYear = 2024

// MonthIndex resolves a month display name case-insensitively to its
// zero-based index, or -1 when unknown.
func MonthIndex(name string) int {
	for i, month := range Months {
		if strings.EqualFold(month, name) {
			return i
		}
	}
	return -1
}

// DaysInMonth returns the number of days in the given zero-based month.
func DaysInMonth(monthIndex int) int {
	return time.Date(dailyFallbackYear, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}
