// pkg/core/special.go
package core

import (
	"slices"
	"strings"
)

// SpecialRules is a sorted, duplicate-free set of special-rule tags.
type SpecialRules []string

// NewSpecialRules builds a sorted unique set from arbitrary tags.
func NewSpecialRules(tags ...string) SpecialRules {
	out := make(SpecialRules, 0, len(tags))
	for _, t := range tags {
		out = out.Insert(t)
	}
	return out
}

// Contains reports whether tag is present (exact match).
func (s SpecialRules) Contains(tag string) bool {
	_, found := slices.BinarySearch(s, tag)
	return found
}

// Insert returns a copy with tag added at its sorted position.
// Inserting a tag that is already present returns an unchanged copy.
func (s SpecialRules) Insert(tag string) SpecialRules {
	i, found := slices.BinarySearch(s, tag)
	out := slices.Clone(s)
	if found {
		return out
	}
	return slices.Insert(out, i, tag)
}

// Remove returns a copy without the given tags (exact match).
func (s SpecialRules) Remove(tags ...string) SpecialRules {
	out := make(SpecialRules, 0, len(s))
	for _, t := range s {
		if !slices.Contains(tags, t) {
			out = append(out, t)
		}
	}
	return out
}

// Union returns the sorted unique union of both sets.
func (s SpecialRules) Union(other SpecialRules) SpecialRules {
	out := slices.Clone(s)
	for _, t := range other {
		out = out.Insert(t)
	}
	return out
}

// AnyContains reports whether any tag contains any of the substrings.
// Matching is by substring: "Flyer (Fast Mover)" matches "Fast Mover".
func (s SpecialRules) AnyContains(substrings ...string) bool {
	for _, t := range s {
		for _, sub := range substrings {
			if strings.Contains(t, sub) {
				return true
			}
		}
	}
	return false
}

// Clone returns an independent copy.
func (s SpecialRules) Clone() SpecialRules {
	if s == nil {
		return SpecialRules{}
	}
	return slices.Clone(s)
}
