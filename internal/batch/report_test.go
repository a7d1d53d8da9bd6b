// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package batch_test

import (
	"bytes"
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/datecalc/calendar"
	"cloudeng.io/datecalc/internal/batch"
	"gopkg.in/yaml.v3"
)

var ncd = calendar.MustNewCalendarDate

func exampleDates() []calendar.CalendarDate {
	return []calendar.CalendarDate{ncd(15, 8, 2022), ncd(1, 1, 2023), ncd(31, 12, 2022)}
}

func TestCompute(t *testing.T) {
	dates := exampleDates()
	input := slices.Clone(dates)
	r, err := batch.Compute(dates)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(dates, input) {
		t.Errorf("input was modified: %v", dates)
	}
	if got, want := []calendar.CalendarDate(r.Entered), input; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.FirstWeekday, "Monday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.Differences, []batch.Difference{
		{Index: 2, To: ncd(1, 1, 2023), Days: 139},
		{Index: 3, To: ncd(31, 12, 2022), Days: 138},
	}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.Sorted, (calendar.CalendarDateList{ncd(15, 8, 2022), ncd(31, 12, 2022), ncd(1, 1, 2023)}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := batch.Compute(nil); !errors.Is(err, batch.ErrNoDates) {
		t.Errorf("unexpected error: %v", err)
	}
}

const expectedText = `
Entered dates:
15 August 2022
1 January 2023
31 December 2022

Day of the week for the first date: Monday
Difference in days between date 1 and date 2: 139
Difference in days between date 1 and date 3: 138

Sorted dates:
15 August 2022
31 December 2022
1 January 2023
`

func TestWriteText(t *testing.T) {
	r, err := batch.Compute(exampleDates())
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := r.Write(&out, batch.TextFormat); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), expectedText; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// A single date has no weekday or differences.
	r, err = batch.Compute(exampleDates()[:1])
	if err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := r.WriteText(&out); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "\nEntered dates:\n15 August 2022\n\nSorted dates:\n15 August 2022\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteYAML(t *testing.T) {
	r, err := batch.Compute(exampleDates())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := r.Write(&out, batch.YAMLFormat); err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"first_weekday: Monday",
		"  - 15 August 2022",
		"  - date: 2",
		"    to: 1 January 2023",
		"    days: 139",
	} {
		if !strings.Contains(out.String(), line+"\n") {
			t.Errorf("missing %q in:\n%s", line, out.String())
		}
	}
	var decoded batch.Report
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if got, want := decoded, r; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	r, err := batch.Compute(exampleDates())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Write(&strings.Builder{}, "json"); err == nil {
		t.Errorf("expected an error")
	}
}
