// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"slices"
	"testing"

	"cloudeng.io/datecalc/calendar"
)

func TestParseCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		val string
		cd  calendar.CalendarDate
	}{
		{"15/8/2022", ncd(15, 8, 2022)},
		{"15/08/2022", ncd(15, 8, 2022)},
		{"29/2/2024", ncd(29, 2, 2024)},
		{"1/1/-5", ncd(1, 1, -5)},
		{"15-Aug-2022", ncd(15, 8, 2022)},
		{"15-aug-2022", ncd(15, 8, 2022)},
		{"15-08-2022", ncd(15, 8, 2022)},
		{"2022-08-15", ncd(15, 8, 2022)},
		{"0001-01-01", ncd(1, 1, 1)},
		{"15 August 2022", ncd(15, 8, 2022)},
		{"2022-8-15", ncd(15, 8, 2022)},
		{"2024-2-9", ncd(9, 2, 2024)},
		{"2022-08-5", ncd(5, 8, 2022)},
		{"  1 january 2000 ", ncd(1, 1, 2000)},
		{"1 March -44", ncd(1, 3, -44)},
	} {
		cd, err := calendar.ParseCalendarDate(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		// String output must parse back to the same date.
		rt, err := calendar.ParseCalendarDate(cd.String())
		if err != nil {
			t.Errorf("%v: %v", cd, err)
			continue
		}
		if got, want := rt, cd; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, val := range []string{
		"",
		"15/8",
		"15/8/2022/1",
		"x/8/2022",
		"15/x/2022",
		"15/8/x",
		"29/2/2023",
		"2023-02-29",
		"31-Apr-2023",
		"15 Augustus 2022",
		"Aug 15 2022",
		"2022/08/15",
		"2023-2-29",
		"2022-123-1",
	} {
		if _, err := calendar.ParseCalendarDate(val); err == nil {
			t.Errorf("%v: expected an error", val)
		}
	}

	_, err := calendar.ParseCalendarDate("31/4/2023")
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}

	// An unpadded ISO date is read as year, month and day.
	_, err = calendar.ParseCalendarDate("2023-4-31")
	var verr *calendar.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := [3]int{verr.Day, verr.Month, verr.Year}, [3]int{31, 4, 2023}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCalendarDateList(t *testing.T) {
	cdl, err := calendar.ParseCalendarDateList("15/8/2022", "2023-01-01", "31-Dec-2022")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cdl, (calendar.CalendarDateList{ncd(15, 8, 2022), ncd(1, 1, 2023), ncd(31, 12, 2022)}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := calendar.ParseCalendarDateList("15/8/2022", "31/4/2023"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestTextMarshaling(t *testing.T) {
	cd := ncd(15, 8, 2022)
	buf, err := cd.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "15 August 2022"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var rt calendar.CalendarDate
	if err := rt.UnmarshalText(buf); err != nil {
		t.Fatal(err)
	}
	if got, want := rt, cd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := rt.UnmarshalText([]byte("29 February 2023")); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := rt, cd; got != want {
		t.Errorf("failed unmarshal modified the date: got %v, want %v", got, want)
	}
}
