// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const expectedFormats = "15/8/2022, 15-Aug-2022, 2022-08-15 or 15 August 2022"

// The month and day need not be zero padded.
var isoDateRe = regexp.MustCompile(`^([0-9]{4})-([0-9]{1,2})-([0-9]{1,2})$`)

// ParseCalendarDate parses a date in one of the formats '15/8/2022',
// '15-Aug-2022', '2022-08-15' or '15 August 2022'. Month names may be
// abbreviated to any prefix of at least three letters and are case
// insensitive. The month and day in the ISO form may omit the leading zero.
// The parsed date is validated as per NewCalendarDate.
func ParseCalendarDate(val string) (CalendarDate, error) {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return CalendarDate{}, fmt.Errorf("empty value, expected %s", expectedFormats)
	}
	if m := isoDateRe.FindStringSubmatch(val); m != nil {
		return parseParts(m[3], m[2], m[1])
	}
	var parts []string
	switch {
	case strings.Contains(val, "/"):
		parts = strings.Split(val, "/")
	case strings.Contains(val, " "):
		parts = strings.Fields(val)
	case strings.Contains(val, "-"):
		parts = strings.Split(val, "-")
	}
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected %s", val, expectedFormats)
	}
	return parseParts(parts[0], parts[1], parts[2])
}

func parseParts(d, m, y string) (CalendarDate, error) {
	day, err := strconv.Atoi(d)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid day: %s", d)
	}
	var month Month
	if err := month.Parse(m); err != nil {
		return CalendarDate{}, err
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid year: %s", y)
	}
	return NewCalendarDate(day, int(month), year)
}

// MustParseCalendarDate is like ParseCalendarDate but panics on error.
func MustParseCalendarDate(val string) CalendarDate {
	cd, err := ParseCalendarDate(val)
	if err != nil {
		panic(err)
	}
	return cd
}

// MarshalText implements encoding.TextMarshaler using the same format
// as String.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and accepts any of
// the formats supported by ParseCalendarDate.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	d, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

// ParseCalendarDateList parses a list of dates using ParseCalendarDate,
// returning the first error encountered.
func ParseCalendarDateList(vals ...string) (CalendarDateList, error) {
	cdl := make(CalendarDateList, 0, len(vals))
	for _, v := range vals {
		cd, err := ParseCalendarDate(v)
		if err != nil {
			return nil, err
		}
		cdl = append(cdl, cd)
	}
	return cdl, nil
}
