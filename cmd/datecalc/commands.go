// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/datecalc/calendar"
	"cloudeng.io/datecalc/internal/batch"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file, its logging settings replace those specified by the log flags'"`
	Format string `subcmd:"format,,'output format: text or yaml, overrides the configuration file, defaults to text'"`
}

// Config represents the optional yaml configuration file.
type Config struct {
	Format  string                 `yaml:"format"`
	Logging *cmdutil.LoggingConfig `yaml:"logging"`
}

type command struct {
	in  io.Reader
	out io.Writer
}

// setup returns a context containing the configured logger together
// with the output format to use.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, string, func(), error) {
	format := cf.Format
	lcfg := cf.LoggingConfig()
	if len(cf.Config) > 0 {
		var cfg Config
		if err := cmdutil.ParseYAMLConfigFile(cf.Config, &cfg); err != nil {
			return ctx, "", nil, err
		}
		if len(format) == 0 {
			format = cfg.Format
		}
		if cfg.Logging != nil {
			lcfg = *cfg.Logging
		}
	}
	if len(format) == 0 {
		format = batch.TextFormat
	}
	if err := flags.OneOf(format).Validate(batch.TextFormat, batch.YAMLFormat); err != nil {
		return ctx, "", nil, err
	}
	logger, err := lcfg.NewLogger()
	if err != nil {
		return ctx, "", nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	return ctx, format, func() { logger.Close() }, nil
}

func (c *command) run(ctx context.Context, values any, fn func(ctx context.Context, format string) error) error {
	ctx, format, cleanup, err := values.(*CommonFlags).setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, format)
}

func (c *command) interactive(ctx context.Context, values any, _ []string) error {
	return c.run(ctx, values, func(ctx context.Context, format string) error {
		s := &batch.Session{In: c.in, Out: c.out, Format: format}
		return s.Run(ctx)
	})
}

func (c *command) report(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, func(ctx context.Context, format string) error {
		dates, err := calendar.ParseCalendarDateList(args...)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("parsed dates", "dates", dates.String())
		r, err := batch.Compute(dates)
		if err != nil {
			return err
		}
		return r.Write(c.out, format)
	})
}

func (c *command) weekday(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, func(_ context.Context, format string) error {
		cd, err := calendar.ParseCalendarDate(args[0])
		if err != nil {
			return err
		}
		return c.write(format, cd.DayOfWeek(), map[string]string{
			"date":    cd.String(),
			"weekday": cd.DayOfWeek(),
		})
	})
}

func (c *command) diff(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, func(_ context.Context, format string) error {
		dates, err := calendar.ParseCalendarDateList(args...)
		if err != nil {
			return err
		}
		from, to := dates[0], dates[1]
		days := from.DaysUntil(to)
		return c.write(format, days, struct {
			From calendar.CalendarDate `yaml:"from"`
			To   calendar.CalendarDate `yaml:"to"`
			Days int                   `yaml:"days"`
		}{from, to, days})
	})
}

func (c *command) sort(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, func(_ context.Context, format string) error {
		dates, err := calendar.ParseCalendarDateList(args...)
		if err != nil {
			return err
		}
		dates.Sort()
		if format == batch.YAMLFormat {
			return c.write(format, nil, dates)
		}
		for _, d := range dates {
			fmt.Fprintln(c.out, d)
		}
		return nil
	})
}

// validate reports on every argument rather than stopping at the
// first invalid date.
func (c *command) validate(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, func(ctx context.Context, _ string) error {
		errs := &errors.M{}
		for _, arg := range args {
			cd, err := calendar.ParseCalendarDate(arg)
			if err != nil {
				errs.Append(errors.Annotate(arg, err))
				continue
			}
			fmt.Fprintf(c.out, "%s: %v (%v)\n", arg, cd, cd.DayOfWeek())
		}
		err := errs.Err()
		ctxlog.Logger(ctx).Debug("validated dates", "count", len(args), "error", err)
		return err
	})
}

func (c *command) write(format string, text, yml any) error {
	if format == batch.YAMLFormat {
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(yml); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(c.out, text)
	return err
}
