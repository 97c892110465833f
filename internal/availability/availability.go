// Package availability describes the weekly availability of a party: a set of
// hour slots for each working weekday.
package availability

import (
	"encoding/json"
	"slices"
	"sort"

	"github.com/nikmy/intersched/pkg/errors"
)

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thur"
	Friday    Weekday = "fri"
)

// Week lists the weekdays in the order used for every iteration that is
// visible to clients.
var Week = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Hour slots are whole hours, both bounds inclusive.
const (
	MinHour = 8
	MaxHour = 18
)

func (d Weekday) Valid() bool {
	return slices.Contains(Week[:], d)
}

// Availability maps a weekday to the hours a party is free on it.
type Availability map[Weekday][]int

// Days returns the keys of a: weekdays first in Week order, then any
// other keys in lexical order.
func (a Availability) Days() []Weekday {
	days := make([]Weekday, 0, len(a))
	for _, d := range Week {
		if _, ok := a[d]; ok {
			days = append(days, d)
		}
	}

	var extra []Weekday
	for d := range a {
		if !d.Valid() {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)

	return append(days, extra...)
}

// Normalize returns a copy of a with every hour list sorted and deduplicated.
func (a Availability) Normalize() Availability {
	out := make(Availability, len(a))
	for d, hours := range a {
		out[d] = normalizeHours(hours)
	}
	return out
}

func normalizeHours(hours []int) []int {
	sorted := slices.Clone(hours)
	sort.Ints(sorted)
	return slices.Compact(sorted)
}

// Decode parses the at-rest text form. Empty text and "null" mean no
// availability at all.
func Decode(text string) (Availability, error) {
	if text == "" {
		return Availability{}, nil
	}

	var a Availability
	err := json.Unmarshal([]byte(text), &a)
	if err != nil {
		return nil, errors.WrapFail(err, "unmarshal availability")
	}

	if a == nil {
		return Availability{}, nil
	}
	return a.Normalize(), nil
}

// Encode renders a in its at-rest text form.
func Encode(a Availability) (string, error) {
	if a == nil {
		a = Availability{}
	}

	raw, err := json.Marshal(a.Normalize())
	if err != nil {
		return "", errors.WrapFail(err, "marshal availability")
	}
	return string(raw), nil
}
