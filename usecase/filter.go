package usecase

import (
	"sort"
	"strings"
	"time"

	"main/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterEngine turns the full note collection into the ordered visible
// subset for a filter and a reference day. It never mutates its input.
type FilterEngine struct {
	collator *collate.Collator
}

// NewFilterEngine builds an engine whose text tiebreak collates in the
// given language.
func NewFilterEngine(tag language.Tag) *FilterEngine {
	return &FilterEngine{collator: collate.New(tag)}
}

// VisibleNotes filters by time window and sorts by priority descending,
// date ascending, then text in collation order. The result is a fresh
// slice; the input keeps its insertion order.
func (e *FilterEngine) VisibleNotes(notes []*model.Note, filter model.Filter, today time.Time) []*model.Note {
	visible := filterNotes(notes, filter, today)
	e.sortNotes(visible)
	return visible
}

func filterNotes(notes []*model.Note, filter model.Filter, today time.Time) []*model.Note {
	switch filter {
	case model.FilterToday:
		ymd := today.Format(DateLayout)
		out := make([]*model.Note, 0, len(notes))
		for _, n := range notes {
			if n.Date == ymd {
				out = append(out, n)
			}
		}
		return out

	case model.FilterWeek:
		// Inclusive on both ends: [today, today+7 days].
		start := Midnight(today)
		end := start.AddDate(0, 0, 7)
		out := make([]*model.Note, 0, len(notes))
		for _, n := range notes {
			date, err := time.ParseInLocation(DateLayout, n.Date, today.Location())
			if err != nil {
				continue
			}
			if !date.Before(start) && !date.After(end) {
				out = append(out, n)
			}
		}
		return out

	default:
		out := make([]*model.Note, len(notes))
		copy(out, notes)
		return out
	}
}

// ISO dates compare chronologically as strings, so the date leg needs no
// parsing here.
func (e *FilterEngine) sortNotes(notes []*model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Date != b.Date {
			return strings.Compare(a.Date, b.Date) < 0
		}
		return e.collator.CompareString(a.Text, b.Text) < 0
	})
}
