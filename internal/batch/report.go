// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package batch implements the batch processing of a list of dates: the
// weekday of the first date, the number of days from the first date to
// each of the others and the chronologically sorted list.
package batch

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"cloudeng.io/datecalc/calendar"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoDates is returned by Compute for an empty list of dates.
	ErrNoDates = errors.New("no dates to process")
	// ErrInvalidCount is returned by Session.Run when the number of dates
	// requested is not greater than zero.
	ErrInvalidCount = errors.New("number of dates must be greater than zero")
)

// Difference is the number of days from the first date to the date
// at Index, where the first date has an index of 1.
type Difference struct {
	Index int                   `yaml:"date"`
	To    calendar.CalendarDate `yaml:"to"`
	Days  int                   `yaml:"days"`
}

// Report is the result of processing a list of dates.
type Report struct {
	Entered      calendar.CalendarDateList `yaml:"entered"`
	FirstWeekday string                    `yaml:"first_weekday"`
	Differences  []Difference              `yaml:"differences,omitempty"`
	Sorted       calendar.CalendarDateList `yaml:"sorted"`
}

// Compute creates a Report for the supplied dates, which are not modified.
func Compute(dates []calendar.CalendarDate) (Report, error) {
	if len(dates) == 0 {
		return Report{}, ErrNoDates
	}
	first := dates[0]
	r := Report{
		Entered:      slices.Clone(dates),
		FirstWeekday: first.DayOfWeek(),
		Sorted:       slices.Clone(dates),
	}
	for i, d := range dates[1:] {
		r.Differences = append(r.Differences, Difference{
			Index: i + 2,
			To:    d,
			Days:  first.DaysUntil(d),
		})
	}
	r.Sorted.Sort()
	return r, nil
}

// Supported output formats.
const (
	TextFormat = "text"
	YAMLFormat = "yaml"
)

// Write writes the report to w in the requested format.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case TextFormat, "":
		return r.WriteText(w)
	case YAMLFormat:
		return r.WriteYAML(w)
	}
	return fmt.Errorf("unsupported output format: %q", format)
}

// WriteText writes the report as plain text. The weekday and differences
// are only written when the report contains more than one date.
func (r Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("\nEntered dates:\n")
	for _, d := range r.Entered {
		ew.printf("%v\n", d)
	}
	if len(r.Entered) > 1 {
		ew.printf("\nDay of the week for the first date: %v\n", r.FirstWeekday)
		for _, d := range r.Differences {
			ew.printf("Difference in days between date 1 and date %d: %d\n", d.Index, d.Days)
		}
	}
	ew.printf("\nSorted dates:\n")
	for _, d := range r.Sorted {
		ew.printf("%v\n", d)
	}
	return ew.err
}

// WriteYAML writes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
