package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"time"
)

var (
	// ErrInvalidFormat is returned when a duration token is not <digits><s|m|h>.
	ErrInvalidFormat = errors.New("invalid duration format")
	// ErrOutOfRange is returned when a well-formed duration does not fit in time.Duration.
	ErrOutOfRange = errors.New("duration out of range")
)

var durationPattern = regexp.MustCompile(`^(\d+)([smh])$`)

var durationUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
}

// ParseDuration parses tokens like "10s", "5m" or "1h".
func ParseDuration(token string) (time.Duration, error) {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, ErrInvalidFormat
	}

	n, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, ErrOutOfRange
	}

	unit := durationUnits[match[2]]
	if n > math.MaxInt64/int64(unit) {
		return 0, ErrOutOfRange
	}

	return time.Duration(n) * unit, nil
}
