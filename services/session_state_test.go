package services

import (
	"errors"
	"os"
	"testing"
	"time"

	"main/model"
)

// testSessionState connects to the Redis named by REDIS_URL; tests that
// need a live cache skip when it is not set.
func testSessionState(t *testing.T) *SessionState {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set, skipping Redis integration test")
	}

	state, err := NewSessionState(url, time.Minute)
	if err != nil {
		t.Fatalf("could not connect to Redis: %v", err)
	}
	t.Cleanup(func() {
		state.ClearDraft()
		state.Close()
	})
	return state
}

func TestSessionStateUnavailable(t *testing.T) {
	var state *SessionState

	t.Run("WritesReportUnavailable", func(t *testing.T) {
		if err := state.SaveDraft(DraftFields{Text: "x"}); !errors.Is(err, ErrCacheUnavailable) {
			t.Errorf("SaveDraft = %v, want ErrCacheUnavailable", err)
		}
		if err := state.SaveFilter(model.FilterToday); !errors.Is(err, ErrCacheUnavailable) {
			t.Errorf("SaveFilter = %v, want ErrCacheUnavailable", err)
		}
		if err := state.ClearDraft(); !errors.Is(err, ErrCacheUnavailable) {
			t.Errorf("ClearDraft = %v, want ErrCacheUnavailable", err)
		}
	})

	t.Run("ReadsDegradeToEmpty", func(t *testing.T) {
		if _, ok, err := state.LoadDraft(); ok || err != nil {
			t.Errorf("LoadDraft = (ok=%v, err=%v), want miss without error", ok, err)
		}
		filter, ok, err := state.LoadFilter()
		if ok || err != nil || filter != model.FilterAll {
			t.Errorf("LoadFilter = (%q, %v, %v), want default without error", filter, ok, err)
		}
	})

	t.Run("NeverConnected", func(t *testing.T) {
		if state.IsConnected() {
			t.Error("nil session state reports connected")
		}
		if err := state.Close(); err != nil {
			t.Error("closing a nil session state:", err)
		}
	})
}

func TestSessionStateDraft(t *testing.T) {
	state := testSessionState(t)

	t.Run("MissBeforeSave", func(t *testing.T) {
		state.ClearDraft()
		if _, ok, err := state.LoadDraft(); ok || err != nil {
			t.Errorf("LoadDraft = (ok=%v, err=%v), want clean miss", ok, err)
		}
	})

	t.Run("SaveLoadClear", func(t *testing.T) {
		saved := DraftFields{Text: "half-typed note", Date: "2026-04-2", Priority: "2"}
		if err := state.SaveDraft(saved); err != nil {
			t.Fatal("save:", err)
		}

		loaded, ok, err := state.LoadDraft()
		if err != nil || !ok {
			t.Fatalf("LoadDraft = (ok=%v, err=%v)", ok, err)
		}
		if loaded != saved {
			t.Errorf("loaded %+v, want %+v", loaded, saved)
		}

		if err := state.ClearDraft(); err != nil {
			t.Fatal("clear:", err)
		}
		if _, ok, _ := state.LoadDraft(); ok {
			t.Error("draft survived ClearDraft")
		}
	})
}

func TestSessionStateFilter(t *testing.T) {
	state := testSessionState(t)

	if err := state.SaveFilter(model.FilterWeek); err != nil {
		t.Fatal("save:", err)
	}
	filter, ok, err := state.LoadFilter()
	if err != nil || !ok {
		t.Fatalf("LoadFilter = (ok=%v, err=%v)", ok, err)
	}
	if filter != model.FilterWeek {
		t.Errorf("filter = %q, want week", filter)
	}
}
