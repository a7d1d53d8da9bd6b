// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// JulianDayNumber returns the Julian Day Number of the date in the proleptic
// Gregorian calendar, ie. the number of days since noon on 24 November
// 4714 BC (Gregorian). 1 January 2000 is 2451545.
func (cd CalendarDate) JulianDayNumber() int {
	return julianDayNumber(cd.year, int(cd.month), cd.day)
}

// julianDayNumber uses floored division throughout so that it remains
// correct for years before -4800.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12 // 1 for Jan and Feb, 0 otherwise.
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
