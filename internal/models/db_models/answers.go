package db_models

import (
	"encoding/json"
	"sort"
)

type AnswerKind string

const (
	AnswerChoice     AnswerKind = "choice"     // single-select and free-text
	AnswerSelections AnswerKind = "selections" // multi-select
	AnswerScale      AnswerKind = "scale"      // slider, 0-100
)

// Answer is the stored value for one question. Its shape follows the question
// type: Choice for single-select/free-text, Selections for multi-select,
// Scale for sliders.
type Answer struct {
	Kind       AnswerKind `json:"kind"`
	Choice     string     `json:"choice,omitempty"`
	Selections []string   `json:"selections,omitempty"`
	Scale      int        `json:"scale,omitempty"`
}

// AnswerSet maps step index to answer. Writes never validate; the navigator
// decides at advance time whether a step counts as answered.
type AnswerSet map[int]Answer

// Set overwrites or inserts the answer for a step.
func (a AnswerSet) Set(step int, answer Answer) {
	a[step] = answer
}

// Get returns the stored answer and whether one exists. The second return
// distinguishes "absent" from any stored value, including empty ones.
func (a AnswerSet) Get(step int) (Answer, bool) {
	answer, ok := a[step]
	return answer, ok
}

// HasOption reports whether any answer matches the option: equality for
// single values, membership for multi-select sets.
func (a AnswerSet) HasOption(option string) bool {
	for _, answer := range a {
		if answer.Choice == option {
			return true
		}
		for _, sel := range answer.Selections {
			if sel == option {
				return true
			}
		}
	}
	return false
}

// Ordered returns the answers in ascending step order. The fallback rule
// engine depends on this order when it picks "the first matching answer".
func (a AnswerSet) Ordered() []Answer {
	steps := make([]int, 0, len(a))
	for step := range a {
		steps = append(steps, step)
	}
	sort.Ints(steps)
	out := make([]Answer, 0, len(steps))
	for _, step := range steps {
		out = append(out, a[step])
	}
	return out
}

// Marshal serializes the set for the session's JSON column.
func (a AnswerSet) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

// UnmarshalAnswerSet restores a set from the session's JSON column. A nil or
// empty payload yields an empty, usable set.
func UnmarshalAnswerSet(raw []byte) (AnswerSet, error) {
	set := make(AnswerSet)
	if len(raw) == 0 {
		return set, nil
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}
