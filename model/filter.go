package model

import "strings"

// Filter is one of the three time-window predicates applied to the
// note collection for display.
type Filter string

const (
	FilterToday Filter = "today"
	FilterWeek  Filter = "week"
	FilterAll   Filter = "all"
)

// Navigation fragment tokens recognized by the UI. They are part of the
// persisted surface (the saved filter is restored into the location
// fragment on reload), so they keep their original spelling.
const (
	FragmentToday = "#hoy"
	FragmentWeek  = "#semana"
	FragmentAll   = "#todas"
)

// FilterFromFragment maps a navigation fragment to a filter through a
// fixed allow-list. Anything outside the list, including the empty
// string, maps to FilterAll.
func FilterFromFragment(fragment string) Filter {
	switch strings.ToLower(fragment) {
	case FragmentToday:
		return FilterToday
	case FragmentWeek:
		return FilterWeek
	default:
		return FilterAll
	}
}

// ParseFilter restores a persisted filter value. Unknown values fall
// back to FilterAll, mirroring the fragment mapping.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterToday, FilterWeek, FilterAll:
		return Filter(s)
	default:
		return FilterAll
	}
}

// Fragment returns the navigation fragment for the filter.
func (f Filter) Fragment() string {
	switch f {
	case FilterToday:
		return FragmentToday
	case FilterWeek:
		return FragmentWeek
	default:
		return FragmentAll
	}
}
