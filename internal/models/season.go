// Package models defines data structures and domain types.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Season is one of the four meteorological seasons a record is tagged with.
type Season int

const (
	// SeasonUnknown is the zero value and never produced by ParseSeason.
	SeasonUnknown Season = iota
	// SeasonSpring is UCI season code 1.
	SeasonSpring
	// SeasonSummer is UCI season code 2.
	SeasonSummer
	// SeasonFall is UCI season code 3.
	SeasonFall
	// SeasonWinter is UCI season code 4.
	SeasonWinter
)

// AllSeasons lists the valid seasons in code order.
var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// String returns the display label for a season.
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonFall:
		return "Fall"
	case SeasonWinter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// Less orders seasons lexically by label: Fall < Spring < Summer < Winter.
func (s Season) Less(other Season) bool {
	return s.String() < other.String()
}

// ParseSeason accepts a season label (case-insensitive) or a numeric code 1-4.
func ParseSeason(raw string) (Season, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "fall", "autumn":
		return SeasonFall, nil
	case "winter":
		return SeasonWinter, nil
	}

	if code, err := strconv.Atoi(v); err == nil {
		if code >= 1 && code <= 4 {
			return Season(code), nil
		}
	}
	return SeasonUnknown, fmt.Errorf("unknown season %q", raw)
}
