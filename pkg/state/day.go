package state

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Day is a position on the narrative calendar. The interlude between day 3
// and day 4 is its own step so that ordinary days stay whole numbers.
type Day int

const (
	Day1 Day = iota + 1
	Day2
	Day3
	DayInterlude // minesweeper, rendered as 3.5
	Day4
	Day5
	Day6 // finale
)

// Valid reports whether d is on the calendar.
func (d Day) Valid() bool {
	return d >= Day1 && d <= Day6
}

// Number is the whole day number; the interlude reports 3.
func (d Day) Number() int {
	switch {
	case d <= Day3:
		return int(d)
	case d == DayInterlude:
		return 3
	default:
		return int(d) - 1
	}
}

// Value is the persisted numeric form: 1, 2, 3, 3.5, 4, 5, 6.
func (d Day) Value() float64 {
	if d == DayInterlude {
		return 3.5
	}
	return float64(d.Number())
}

func (d Day) String() string {
	return strconv.FormatFloat(d.Value(), 'f', -1, 64)
}

// Next is the day a transition lands on. Day 6 has no successor.
func (d Day) Next() Day {
	if d >= Day6 {
		return Day6
	}
	return d + 1
}

// IsInterlude reports whether d is the minigame step.
func (d Day) IsInterlude() bool {
	return d == DayInterlude
}

// DayFromValue maps a persisted numeric day back onto the calendar.
func DayFromValue(v float64) (Day, bool) {
	switch v {
	case 1:
		return Day1, true
	case 2:
		return Day2, true
	case 3:
		return Day3, true
	case 3.5:
		return DayInterlude, true
	case 4:
		return Day4, true
	case 5:
		return Day5, true
	case 6:
		return Day6, true
	}
	return 0, false
}

// ParseDay accepts "1".."6" and "3.5".
func ParseDay(s string) (Day, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", s, err)
	}
	d, ok := DayFromValue(v)
	if !ok {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	return d, nil
}

func (d Day) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid day %d", int(d))
	}
	return json.Marshal(d.Value())
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to unmarshal day: %w", err)
	}
	parsed, ok := DayFromValue(v)
	if !ok {
		return fmt.Errorf("invalid day %v", v)
	}
	*d = parsed
	return nil
}
