package service

import "strings"

// GoalMatcher decides whether a user goal matches a card tag. It is
// injectable so the matching policy can be swapped (exact match, token-set)
// without touching scoring logic.
type GoalMatcher interface {
	Matches(goal, tag string) bool
}

// SubstringMatcher matches when the goal is a case-insensitive substring of
// the tag, so "travel" hits "international_travel". Partial hits are the
// intended behavior, not an accident.
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(goal, tag string) bool {
	return strings.Contains(strings.ToLower(tag), strings.ToLower(goal))
}

// matchesAnyTag reports whether the goal matches at least one tag.
func matchesAnyTag(m GoalMatcher, goal string, tags []string) bool {
	for _, tag := range tags {
		if m.Matches(goal, tag) {
			return true
		}
	}
	return false
}
