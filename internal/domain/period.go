// Package domain contains core business types and interfaces.
//
// This file defines submission periods: the MMM-YYYY tokens that identify
// the reporting month a submission belongs to.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// periodPattern is the only accepted token shape. The month abbreviation is
// matched case-insensitively against the twelve recognised values afterwards.
var periodPattern = regexp.MustCompile(`^[A-Za-z]{3}-\d{4}$`)

var monthAbbreviations = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// Period identifies a single reporting month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses an MMM-YYYY token (case-insensitive month abbreviation).
// Returns an EINVALID error when the token does not match the expected shape
// or the abbreviation is not a recognised month.
func ParsePeriod(token string) (Period, error) {
	const op = "period.parse"

	trimmed := strings.TrimSpace(token)
	if !periodPattern.MatchString(trimmed) {
		return Period{}, Invalid(op, fmt.Sprintf("submission period %q is not in MMM-YYYY format", token))
	}

	month, ok := monthAbbreviations[strings.ToUpper(trimmed[:3])]
	if !ok {
		return Period{}, Invalid(op, fmt.Sprintf("submission period %q has an unrecognised month", token))
	}

	year, err := strconv.Atoi(trimmed[4:])
	if err != nil {
		// Unreachable given the pattern match, but keep the error path honest.
		return Period{}, Invalid(op, fmt.Sprintf("submission period %q has an invalid year", token))
	}

	return Period{Year: year, Month: month}, nil
}

// String returns the canonical upper-case MMM-YYYY token.
func (p Period) String() string {
	return fmt.Sprintf("%s-%04d", strings.ToUpper(p.Month.String()[:3]), p.Year)
}

// Label returns the human-readable form, e.g. "January 2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// SortKey returns YYYY*100 + month number, so periods order chronologically
// as plain integers. December 2015 = 201512, January 2020 = 202001.
func (p Period) SortKey() int {
	return p.Year*100 + int(p.Month)
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	return p.SortKey() < other.SortKey()
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// PeriodSet is an ordered collection of selectable submission periods with
// label lookup by canonical token. Iteration order is chronological.
type PeriodSet struct {
	periods []Period
	labels  map[string]string
}

// AvailablePeriods returns every period from min inclusive up to, but
// excluding, the month of now. If now falls in min's month the set is empty.
func AvailablePeriods(min Period, now time.Time) *PeriodSet {
	current := Period{Year: now.Year(), Month: now.Month()}

	set := &PeriodSet{labels: make(map[string]string)}
	for p := min; p.Before(current); p = p.Next() {
		set.periods = append(set.periods, p)
		set.labels[p.String()] = p.Label()
	}
	return set
}

// Contains reports whether the given token names a period in the set.
// Matching is case-insensitive on the month abbreviation.
func (s *PeriodSet) Contains(token string) bool {
	_, ok := s.labels[strings.ToUpper(strings.TrimSpace(token))]
	return ok
}

// Periods returns the periods in chronological order.
func (s *PeriodSet) Periods() []Period {
	return s.periods
}

// Label returns the display label for a token, or "" if not in the set.
func (s *PeriodSet) Label(token string) string {
	return s.labels[strings.ToUpper(strings.TrimSpace(token))]
}

// Len returns the number of selectable periods.
func (s *PeriodSet) Len() int {
	return len(s.periods)
}
