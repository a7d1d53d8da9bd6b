// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

// Month as an int, January is 1.
type Month time.Month

// String returns the English name of the month.
func (m Month) String() string {
	return time.Month(m).String()
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// ParseNumericMonth parses a month number in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	if m := Month(n); m.Valid() {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month: %d", n)
}

// ParseMonth parses an English month name, or a prefix of one that is at
// least three letters long, ignoring case. Shorter prefixes are rejected
// since "ma" and "ju" are ambiguous.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) >= 3 {
		i := slices.IndexFunc(months, func(name string) bool {
			return strings.HasPrefix(name, lc)
		})
		if i >= 0 {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}

// Parse accepts either a month number or a month name as per
// ParseNumericMonth and ParseMonth.
func (m *Month) Parse(val string) error {
	parsed, err := ParseNumericMonth(val)
	if err != nil {
		if parsed, err = ParseMonth(val); err != nil {
			return err
		}
	}
	*m = parsed
	return nil
}
