package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrUnanchoredRule is returned for rules whose occurrences depend on a start
// date but that carry no DTSTART
var ErrUnanchoredRule = errors.New("rrule needs a DTSTART")

// ValidateRule checks an RRULE describing the days a room is free. An empty
// rule is valid and means the room is always free.
func ValidateRule(rule string) error {
	if rule == "" {
		return nil
	}
	if _, err := parseRule(rule); err != nil {
		return fmt.Errorf("invalid rrule %q: %w", rule, err)
	}
	return nil
}

// IsFreeOn reports whether the rule has an occurrence on the calendar day of
// date. An empty rule is always free.
func IsFreeOn(rule string, date time.Time) (bool, error) {
	if rule == "" {
		return true, nil
	}

	opt, err := parseRule(rule)
	if err != nil {
		return false, fmt.Errorf("failed to parse rrule %q: %w", rule, err)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	// Unanchored rules only carry day constraints, so anchoring them at the
	// queried day leaves those constraints to decide
	if opt.Dtstart.IsZero() {
		opt.Dtstart = dayStart
	}

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return false, fmt.Errorf("failed to build rrule %q: %w", rule, err)
	}

	return len(r.Between(dayStart, dayEnd, true)) > 0, nil
}

// parseRule parses the rule and rejects parts that count from DTSTART when
// none is given
func parseRule(rule string) (*rrule.ROption, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, err
	}
	if _, err := rrule.NewRRule(*opt); err != nil {
		return nil, err
	}

	if !opt.Dtstart.IsZero() {
		return opt, nil
	}

	switch {
	case opt.Interval > 1:
		return nil, fmt.Errorf("%w: INTERVAL=%d", ErrUnanchoredRule, opt.Interval)
	case opt.Count > 0:
		return nil, fmt.Errorf("%w: COUNT=%d", ErrUnanchoredRule, opt.Count)
	case opt.Freq <= rrule.WEEKLY && !hasDayConstraint(opt):
		return nil, fmt.Errorf("%w: FREQ=%s without a BYDAY, BYMONTHDAY, BYYEARDAY or BYWEEKNO", ErrUnanchoredRule, opt.Freq)
	}

	return opt, nil
}

// hasDayConstraint reports whether the rule picks its days itself instead of
// repeating the weekday or date of DTSTART
func hasDayConstraint(opt *rrule.ROption) bool {
	return len(opt.Byweekday) > 0 ||
		len(opt.Bymonthday) > 0 ||
		len(opt.Byyearday) > 0 ||
		len(opt.Byweekno) > 0 ||
		len(opt.Byeaster) > 0
}

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}
