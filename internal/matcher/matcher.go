// Package matcher intersects the weekly availability of a candidate with the
// availability of every interviewer assigned to the same job.
package matcher

import (
	"fmt"
	"slices"

	"github.com/nikmy/intersched/internal/availability"
)

type Kind int

const (
	Matched Kind = iota
	NoCommonDays
	NoCommonSlots
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case NoCommonDays:
		return "no_common_days"
	case NoCommonSlots:
		return "no_common_slots"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Candidate is the value of Result.Interviewer when the candidate's own
// availability made the match impossible.
const Candidate = -1

type Result struct {
	Kind Kind `json:"kind"`

	// Slots holds the common hours of every common day. Set only when
	// Kind is Matched.
	Slots availability.Availability `json:"slots,omitempty"`

	// Day is the first common day without common hours (NoCommonSlots).
	Day availability.Weekday `json:"day,omitempty"`

	// Interviewer is the input index of the interviewer whose availability
	// emptied the intersection, or Candidate.
	Interviewer int `json:"interviewer"`
}

func (r Result) Matched() bool {
	return r.Kind == Matched
}

func (r Result) Reason() string {
	switch r.Kind {
	case Matched:
		return ""
	case NoCommonDays:
		return "no matches found for candidate and interviewers: no common days"
	default:
		return fmt.Sprintf("no matches found for candidate and interviewers: no common slots on %s", r.Day)
	}
}

type hourSet map[int]struct{}

func newHourSet(hours []int) hourSet {
	s := make(hourSet, len(hours))
	for _, h := range hours {
		s[h] = struct{}{}
	}
	return s
}

func (s hourSet) retain(hours []int) {
	keep := newHourSet(hours)
	for h := range s {
		if _, ok := keep[h]; !ok {
			delete(s, h)
		}
	}
}

func (s hourSet) sorted() []int {
	out := make([]int, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Match finds the days and hours free for the candidate and all the
// interviewers. Interviewers are intersected in input order and the first
// party that empties the intersection is reported, so equal inputs always
// produce equal results.
func Match(candidate availability.Availability, interviewers []availability.Availability) Result {
	days := make(map[availability.Weekday]struct{}, len(candidate))
	for d := range candidate {
		days[d] = struct{}{}
	}

	if len(days) == 0 {
		return Result{Kind: NoCommonDays, Interviewer: Candidate}
	}

	for i, iv := range interviewers {
		for d := range days {
			if _, ok := iv[d]; !ok {
				delete(days, d)
			}
		}

		if len(days) == 0 {
			return Result{Kind: NoCommonDays, Interviewer: i}
		}
	}

	slots := make(availability.Availability, len(days))
	for _, d := range candidate.Days() {
		if _, common := days[d]; !common {
			continue
		}

		common := newHourSet(candidate[d])
		if len(common) == 0 {
			return Result{Kind: NoCommonSlots, Day: d, Interviewer: Candidate}
		}

		for i, iv := range interviewers {
			// a missing day is an empty hour list here
			common.retain(iv[d])
			if len(common) == 0 {
				return Result{Kind: NoCommonSlots, Day: d, Interviewer: i}
			}
		}

		slots[d] = common.sorted()
	}

	return Result{Kind: Matched, Slots: slots, Interviewer: Candidate}
}
