package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"main/model"
)

const (
	// MaxTextLength matches the input cap on the creation form.
	MaxTextLength = 200

	// DateLayout is the stored date format, ISO with no time component.
	DateLayout = "2006-01-02"

	// YearHorizon bounds how far into the future a note may be dated,
	// relative to the current year.
	YearHorizon = 2
)

// ValidationError reports why a raw input was rejected. The store is
// never mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ValidateText trims surrounding whitespace and rejects empty or
// over-long text. No other mutation is applied.
func ValidateText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", invalid("text", "text must not be empty")
	}
	if len([]rune(text)) > MaxTextLength {
		return "", invalid("text", fmt.Sprintf("text must not exceed %d characters", MaxTextLength))
	}
	return text, nil
}

// ValidateDate applies the date policy in a fixed order: ISO shape with a
// 4-digit year as written, real calendar date, year not below the current
// year, year not above current+YearHorizon, date not before today.
// Callers depend on which failure surfaces first, so the order is part of
// the contract. today supplies the clock.
func ValidateDate(raw string, today time.Time) (string, error) {
	match := isoDatePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return "", invalid("date", "date must be in YYYY-MM-DD format")
	}

	date, err := time.ParseInLocation(DateLayout, match[0], today.Location())
	if err != nil {
		return "", invalid("date", "date is not a real calendar date")
	}

	year, _ := strconv.Atoi(match[1])
	if year < today.Year() {
		return "", invalid("date", fmt.Sprintf("year must not be before %d", today.Year()))
	}
	if year > today.Year()+YearHorizon {
		return "", invalid("date", fmt.Sprintf("year must not be after %d", today.Year()+YearHorizon))
	}

	if date.Before(Midnight(today)) {
		return "", invalid("date", "date must not be before today")
	}

	return match[0], nil
}

// NormalizePriority parses the raw value as a number and clamps it into
// the valid range. Unparseable input defaults to low; out-of-range values
// snap to the nearest bound instead of being rejected.
func NormalizePriority(raw string) int {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return model.PriorityLow
	}
	if value < model.PriorityLow {
		return model.PriorityLow
	}
	if value > model.PriorityHigh {
		return model.PriorityHigh
	}
	return int(math.Round(value))
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
