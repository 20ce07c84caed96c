package model

import "testing"

func TestParseActionKind(t *testing.T) {
	for _, valid := range []string{"complete", "uncomplete", "delete", "edit", "save", "cancel"} {
		kind, err := ParseActionKind(valid)
		if err != nil {
			t.Errorf("ParseActionKind(%q): unexpected error %v", valid, err)
		}
		if string(kind) != valid {
			t.Errorf("ParseActionKind(%q) = %q", valid, kind)
		}
	}

	for _, invalid := range []string{"", "archive", "COMPLETE", "delete "} {
		if _, err := ParseActionKind(invalid); err == nil {
			t.Errorf("ParseActionKind(%q): expected error", invalid)
		}
	}
}

func TestActionKindMutating(t *testing.T) {
	mutating := map[ActionKind]bool{
		ActionComplete:   true,
		ActionUncomplete: true,
		ActionDelete:     true,
		ActionSave:       true,
		ActionEdit:       false,
		ActionCancel:     false,
	}

	for kind, want := range mutating {
		if got := kind.Mutating(); got != want {
			t.Errorf("%s.Mutating() = %v, want %v", kind, got, want)
		}
	}
}
