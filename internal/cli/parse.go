package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// parsePair parses "a,b" into two int32s.
func parsePair(s string) (int32, int32, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(a), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(b), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return int32(x), int32(y), nil
}

func parsePoint(s string) (geom.Point, error) {
	x, y, err := parsePair(s)
	return geom.Pt(x, y), err
}

// parseYearDay validates the YEAR and DAY arguments of fetch.
func parseYearDay(yearArg, dayArg string) (int, int, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil || year < 2015 {
		return 0, 0, fmt.Errorf("invalid year %q", yearArg)
	}
	day, err := strconv.Atoi(dayArg)
	if err != nil || day < 1 || day > 25 {
		return 0, 0, fmt.Errorf("invalid day %q: must be 1-25", dayArg)
	}
	return year, day, nil
}
