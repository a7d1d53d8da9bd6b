// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides an immutable, always valid, proleptic Gregorian
// calendar date together with support for validating, comparing, formatting
// and computing the distance between such dates.
package calendar

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrInvalidDate is returned, wrapped in a ValidationError, for any
// day, month and year that does not refer to a real calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ValidationError records the day, month and year that failed validation
// and the reason for the failure.
type ValidationError struct {
	Day, Month, Year int
	Reason           string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %d/%d/%d: %s", ErrInvalidDate, e.Day, e.Month, e.Year, e.Reason)
}

// Unwrap returns ErrInvalidDate.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDate
}

// CalendarDate represents a valid date with a year, month and day. Values
// can only be created via NewCalendarDate, MustNewCalendarDate or
// ParseCalendarDate and cannot be modified once created. The zero value
// is not a valid date.
type CalendarDate struct {
	year  int
	month Month
	day   int
}

// NewCalendarDate returns the CalendarDate for the supplied day, month and
// year or a *ValidationError if they do not refer to a real date.
func NewCalendarDate(day, month, year int) (CalendarDate, error) {
	if err := validate(day, month, year); err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{year: year, month: Month(month), day: day}, nil
}

// MustNewCalendarDate is like NewCalendarDate but panics on error.
func MustNewCalendarDate(day, month, year int) CalendarDate {
	cd, err := NewCalendarDate(day, month, year)
	if err != nil {
		panic(err)
	}
	return cd
}

func validate(day, month, year int) error {
	invalid := func(format string, args ...any) error {
		return &ValidationError{Day: day, Month: month, Year: year, Reason: fmt.Sprintf(format, args...)}
	}
	if month < 1 || month > 12 {
		return invalid("month must be in the range 1-12")
	}
	if day < 1 {
		return invalid("day must be at least 1")
	}
	if dim := DaysInMonth(year, Month(month)); day > dim {
		return invalid("%v %d has %d days", Month(month), year, dim)
	}
	return nil
}

func (cd CalendarDate) Day() int {
	return cd.day
}

func (cd CalendarDate) Month() Month {
	return cd.month
}

func (cd CalendarDate) Year() int {
	return cd.year
}

// IsZero returns true for the zero value, which is not a valid date.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// String returns the date in the form "15 August 2022".
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%d %v %d", cd.day, cd.month, cd.year)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return time.Weekday(floorMod(cd.JulianDayNumber()+1, 7))
}

// DayOfWeek returns the English name of the day of the week for the date,
// eg. "Monday".
func (cd CalendarDate) DayOfWeek() string {
	return cd.Weekday().String()
}

// DaysUntil returns the number of days from cd to other, which will be
// negative if other precedes cd.
func (cd CalendarDate) DaysUntil(other CalendarDate) int {
	return other.JulianDayNumber() - cd.JulianDayNumber()
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// as or after other.
func (cd CalendarDate) Compare(other CalendarDate) int {
	if c := cmp.Compare(cd.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(cd.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(cd.day, other.day)
}

func (cd CalendarDate) Before(other CalendarDate) bool {
	return cd.Compare(other) < 0
}

func (cd CalendarDate) After(other CalendarDate) bool {
	return cd.Compare(other) > 0
}

func (cd CalendarDate) Equal(other CalendarDate) bool {
	return cd == other
}

// CalendarDateList is a list of CalendarDates.
type CalendarDateList []CalendarDate

// Sort sorts the list in place, earliest date first.
func (cdl CalendarDateList) Sort() {
	slices.SortFunc(cdl, CalendarDate.Compare)
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	return slices.Contains(cdl, d)
}
