// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/datecalc/calendar"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Session prompts for and reads a count followed by that many dates, each
// as a day, month and year, and then writes a Report for them. Input is
// read as whitespace separated tokens. The month may be given as a number
// or a name. Any invalid input aborts the entire session.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Format string // TextFormat or YAMLFormat, defaults to TextFormat.
}

// Run runs the session. Any error is written to Out, prefixed
// with 'Error: ', as well as being returned. Run always finishes by
// writing 'Program completed.'.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
	}
	fmt.Fprintln(s.Out, "Program completed.")
	return err
}

func (s *Session) run(ctx context.Context) error {
	logger := ctxlog.Logger(ctx)
	sc := bufio.NewScanner(s.In)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc, out: s.Out}

	n, err := tr.readInt("Enter the number of dates to process: ", "number of dates")
	if err != nil {
		return err
	}
	if n <= 0 {
		return ErrInvalidCount
	}
	logger.Debug("reading dates", "count", n)

	// n is untrusted, so only a bounded amount of space is reserved up front.
	dates := make([]calendar.CalendarDate, 0, min(n, 64))
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "\nEnter date %d:\n", i)
		cd, err := tr.readDate()
		if err != nil {
			return errors.Annotate(fmt.Sprintf("date %d", i), err)
		}
		logger.Debug("date accepted", "index", i, "date", cd.String())
		dates = append(dates, cd)
	}

	report, err := Compute(dates)
	if err != nil {
		return err
	}
	logger.Info("dates processed", "count", len(dates), "first_weekday", report.FirstWeekday)
	return report.Write(s.Out, s.Format)
}

type tokenReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (tr *tokenReader) next(prompt, what string) (string, error) {
	fmt.Fprint(tr.out, prompt)
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", what, err)
		}
		return "", fmt.Errorf("failed to read %s: %w", what, io.ErrUnexpectedEOF)
	}
	return tr.sc.Text(), nil
}

func (tr *tokenReader) readInt(prompt, what string) (int, error) {
	tok, err := tr.next(prompt, what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", what, tok)
	}
	return n, nil
}

func (tr *tokenReader) readDate() (calendar.CalendarDate, error) {
	day, err := tr.readInt("Day: ", "day")
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	tok, err := tr.next("Month: ", "month")
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	// Numeric months are range checked by NewCalendarDate.
	month, err := strconv.Atoi(tok)
	if err != nil {
		m, err := calendar.ParseMonth(tok)
		if err != nil {
			return calendar.CalendarDate{}, fmt.Errorf("invalid month: %q", tok)
		}
		month = int(m)
	}
	year, err := tr.readInt("Year: ", "year")
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	return calendar.NewCalendarDate(day, month, year)
}
