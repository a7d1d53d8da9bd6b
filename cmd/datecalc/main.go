// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datecalc validates, compares and sorts calendar dates. Dates may
// be entered interactively or supplied as arguments in any of the formats
// '15/8/2022', '15-Aug-2022', '2022-08-15' or '15 August 2022'.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: datecalc
summary: validate, compare and sort calendar dates
commands:
  - name: interactive
    summary: prompt for a number of dates, then report the weekday of the first date, the number of days from the first date to each of the others and the dates in chronological order
  - name: report
    summary: report on the supplied dates as per the interactive command
    arguments:
      - <date>
      - ...
  - name: weekday
    summary: print the day of the week for a date
    arguments:
      - <date>
  - name: diff
    summary: print the number of days from one date to another
    arguments:
      - <from>
      - <to>
  - name: sort
    summary: print the supplied dates in chronological order
    arguments:
      - <date>
      - ...
  - name: validate
    summary: validate the supplied dates, reporting all invalid dates
    arguments:
      - <date>
      - ...
`

var cmdSet = subcmd.MustFromYAML(commands)

func init() {
	cli := &command{in: os.Stdin, out: os.Stdout}
	for _, c := range []struct {
		name   string
		runner subcmd.Runner
	}{
		{"interactive", cli.interactive},
		{"report", cli.report},
		{"weekday", cli.weekday},
		{"diff", cli.diff},
		{"sort", cli.sort},
		{"validate", cli.validate},
	} {
		cmdSet.Set(c.name).MustRunnerAndFlags(c.runner,
			subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	}
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
