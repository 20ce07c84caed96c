package model

import "testing"

func TestFilterFromFragment(t *testing.T) {
	tests := []struct {
		fragment string
		want     Filter
	}{
		{"#hoy", FilterToday},
		{"#semana", FilterWeek},
		{"#todas", FilterAll},
		{"#HOY", FilterToday},
		{"#Semana", FilterWeek},
		{"", FilterAll},
		{"#archive", FilterAll},
		{"hoy", FilterAll},
		{"#hoy ", FilterAll},
	}

	for _, tc := range tests {
		if got := FilterFromFragment(tc.fragment); got != tc.want {
			t.Errorf("FilterFromFragment(%q) = %q, want %q", tc.fragment, got, tc.want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		raw  string
		want Filter
	}{
		{"today", FilterToday},
		{"week", FilterWeek},
		{"all", FilterAll},
		{"", FilterAll},
		{"garbage", FilterAll},
	}

	for _, tc := range tests {
		if got := ParseFilter(tc.raw); got != tc.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFilterFragmentRoundTrip(t *testing.T) {
	for _, filter := range []Filter{FilterToday, FilterWeek, FilterAll} {
		if got := FilterFromFragment(filter.Fragment()); got != filter {
			t.Errorf("%q -> %q -> %q, want round trip", filter, filter.Fragment(), got)
		}
	}
}
