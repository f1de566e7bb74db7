// Package daterange resolves date expressions into concrete instants and
// inclusive ranges for the date filter.
//
// Supported expression forms, in precedence order:
//
//  1. An absolute date or date-time ("2024-03-05", "2024-03-05T10:00:00Z"),
//     parsed literally in UTC.
//  2. The literal words "today", "yesterday", "last week", "last month",
//     "this week" (most recent Monday), "this month" (first of the month).
//  3. "last N day(s)/week(s)/month(s)" with N a positive integer.
//
// Anything else fails with domain.ErrUnsupportedDateExpr. Range
// resolution treats a failed side as an open bound rather than failing
// the whole query.
package daterange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

var lastNPattern = regexp.MustCompile(`^last\s+(\d+)\s+(day|week|month)s?$`)

// Resolver converts date expressions into instants. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a resolver using the wall clock.
func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

// NewResolverWithClock creates a resolver with an injected clock.
// Used by tests to pin "today".
func NewResolverWithClock(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// Range is an inclusive date range. A zero Start or End means that side
// is unconstrained.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, treating zero
// bounds as open.
func (r Range) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// IsOpen reports whether neither bound is set.
func (r Range) IsOpen() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Resolve parses a single date expression into an instant in UTC.
func (r *Resolver) Resolve(expr string) (time.Time, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty expression", domain.ErrUnsupportedDateExpr)
	}

	// Absolute dates first: anything dateparse understands is taken
	// literally.
	if t, err := dateparse.ParseIn(trimmed, time.UTC); err == nil {
		return t.UTC(), nil
	}

	now := r.now().UTC()
	today := startOfDay(now)

	switch strings.ToLower(trimmed) {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "last week":
		return today.AddDate(0, 0, -7), nil
	case "last month":
		return today.AddDate(0, -1, 0), nil
	case "this week":
		return mostRecentMonday(today), nil
	case "this month":
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}

	if m := lastNPattern.FindStringSubmatch(strings.ToLower(trimmed)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("%w: %q (count must be a positive integer)",
				domain.ErrUnsupportedDateExpr, expr)
		}
		switch m[2] {
		case "day":
			return today.AddDate(0, 0, -n), nil
		case "week":
			return today.AddDate(0, 0, -7*n), nil
		case "month":
			return today.AddDate(0, -n, 0), nil
		}
	}

	return time.Time{}, fmt.Errorf(
		"%w: %q (expected an absolute date, a keyword like \"today\" or \"last week\", or \"last N days\")",
		domain.ErrUnsupportedDateExpr, expr)
}

// ResolveRange resolves independent optional start and end expressions.
// Each side is resolved on its own; a failure is logged and leaves that
// bound open rather than failing the other side. The end bound is
// normalized to the last instant of its calendar day so whole-day ranges
// behave inclusively.
func (r *Resolver) ResolveRange(startExpr, endExpr string) Range {
	var rng Range

	if startExpr != "" {
		start, err := r.Resolve(startExpr)
		if err != nil {
			logger.Warn("Ignoring start date %q: %v", startExpr, err)
		} else {
			rng.Start = start
		}
	}

	if endExpr != "" {
		end, err := r.Resolve(endExpr)
		if err != nil {
			logger.Warn("Ignoring end date %q: %v", endExpr, err)
		} else {
			rng.End = endOfDay(end)
		}
	}

	return rng
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func mostRecentMonday(today time.Time) time.Time {
	offset := (int(today.Weekday()) + 6) % 7
	return today.AddDate(0, 0, -offset)
}
