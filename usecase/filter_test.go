package usecase

import (
	"testing"
	"time"

	"main/model"

	"golang.org/x/text/language"
)

func testNote(id, text, date string, priority int) *model.Note {
	return &model.Note{ID: id, Text: text, Date: date, Priority: priority}
}

func noteIDs(notes []*model.Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

func sameOrder(a []string, b []*model.Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i].ID {
			return false
		}
	}
	return true
}

func TestVisibleNotesFiltering(t *testing.T) {
	engine := NewFilterEngine(language.Spanish)
	today := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)

	notes := []*model.Note{
		testNote("a", "today", "2026-06-10", 2),
		testNote("b", "in three days", "2026-06-13", 2),
		testNote("c", "window edge", "2026-06-17", 2),
		testNote("d", "past window", "2026-06-18", 2),
		testNote("e", "yesterday", "2026-06-09", 2),
	}

	t.Run("Today", func(t *testing.T) {
		visible := engine.VisibleNotes(notes, model.FilterToday, today)
		if !sameOrder([]string{"a"}, visible) {
			t.Errorf("got %v, want [a]", noteIDs(visible))
		}
	})

	t.Run("WeekInclusiveBothEnds", func(t *testing.T) {
		visible := engine.VisibleNotes(notes, model.FilterWeek, today)
		if !sameOrder([]string{"a", "b", "c"}, visible) {
			t.Errorf("got %v, want [a b c]", noteIDs(visible))
		}
	})

	t.Run("AllPassesEverything", func(t *testing.T) {
		visible := engine.VisibleNotes(notes, model.FilterAll, today)
		if len(visible) != len(notes) {
			t.Errorf("got %d notes, want %d", len(visible), len(notes))
		}
	})

	t.Run("UnknownFilterBehavesLikeAll", func(t *testing.T) {
		visible := engine.VisibleNotes(notes, model.Filter("bogus"), today)
		if len(visible) != len(notes) {
			t.Errorf("got %d notes, want %d", len(visible), len(notes))
		}
	})
}

func TestVisibleNotesOrdering(t *testing.T) {
	engine := NewFilterEngine(language.Spanish)
	today := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	notes := []*model.Note{
		testNote("z", "Zebra", "2025-06-01", 3),
		testNote("l", "low", "2025-05-02", 1),
		testNote("a", "Apple", "2025-06-01", 3),
		testNote("m", "medium early", "2025-05-01", 2),
		testNote("n", "medium late", "2025-05-03", 2),
	}

	t.Run("CompositeOrder", func(t *testing.T) {
		visible := engine.VisibleNotes(notes, model.FilterAll, today)
		want := []string{"a", "z", "m", "n", "l"}
		if !sameOrder(want, visible) {
			t.Errorf("got %v, want %v", noteIDs(visible), want)
		}
	})

	t.Run("TextTiebreak", func(t *testing.T) {
		visible := engine.VisibleNotes(notes, model.FilterAll, today)
		if visible[0].Text != "Apple" || visible[1].Text != "Zebra" {
			t.Errorf("got %q before %q, want Apple before Zebra",
				visible[0].Text, visible[1].Text)
		}
	})

	t.Run("IdempotentUnderResorting", func(t *testing.T) {
		once := engine.VisibleNotes(notes, model.FilterAll, today)
		twice := engine.VisibleNotes(once, model.FilterAll, today)
		if !sameOrder(noteIDs(once), twice) {
			t.Errorf("resorting changed order: %v -> %v", noteIDs(once), noteIDs(twice))
		}
	})

	t.Run("InputOrderPreserved", func(t *testing.T) {
		before := noteIDs(notes)
		engine.VisibleNotes(notes, model.FilterAll, today)
		if !sameOrder(before, notes) {
			t.Errorf("input mutated: %v -> %v", before, noteIDs(notes))
		}
	})
}

func TestVisibleNotesTodayScenario(t *testing.T) {
	engine := NewFilterEngine(language.Spanish)
	today := time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC)
	ymd := today.Format(DateLayout)

	notes := []*model.Note{
		testNote("other", "Water plants", ymd, 1),
		testNote("milk", "Buy milk", ymd, 3),
	}

	for _, filter := range []model.Filter{model.FilterToday, model.FilterWeek, model.FilterAll} {
		visible := engine.VisibleNotes(notes, filter, today)
		if len(visible) == 0 || visible[0].ID != "milk" {
			t.Errorf("filter %s: got %v, want milk first", filter, noteIDs(visible))
		}
	}
}
