package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"main/model"
	"main/utils"
)

// NotesStore persists the full note list wholesale. The in-memory
// collection held by NotesService is the source of truth for the
// session; the store is its durable mirror.
type NotesStore interface {
	LoadNotes(ctx context.Context) ([]*model.Note, error)
	SaveNotes(ctx context.Context, notes []*model.Note) error
}

// SnapshotStore keeps timestamped immutable copies of the collection for
// manual rollback, bounded to a small rolling history.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, timestamp string, notes []*model.Note) error
	ListSnapshots(ctx context.Context) ([]string, error)
	RestoreSnapshot(ctx context.Context, timestamp string) ([]*model.Note, error)
}

// ActionInput carries the optional fields of a dispatched action: the
// delete confirmation and the edited values for a save.
type ActionInput struct {
	Confirmed bool
	Text      string
	Date      string
	Priority  string
}

// NotesService owns the in-memory note collection and every named
// mutation on it. All state changes go through here so the store's
// invariants hold in one place.
type NotesService struct {
	mu     sync.RWMutex
	notes  []*model.Note
	filter model.Filter
	edit   EditSession

	Store     NotesStore
	Snapshots SnapshotStore
	Engine    *FilterEngine
	Now       func() time.Time
}

func NewNotesService(store NotesStore, snapshots SnapshotStore, engine *FilterEngine) *NotesService {
	return &NotesService{
		filter:    model.FilterAll,
		Store:     store,
		Snapshots: snapshots,
		Engine:    engine,
		Now:       time.Now,
	}
}

// Load rebuilds the collection from persistence. On failure the store
// starts empty; the error is returned for logging only.
func (svc *NotesService) Load(ctx context.Context) error {
	notes, err := svc.Store.LoadNotes(ctx)
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err != nil {
		svc.notes = []*model.Note{}
		return err
	}
	svc.notes = notes
	return nil
}

// persist mirrors the collection to the store. A write failure is logged
// and the in-memory state stays authoritative for the session. Callers
// must hold the lock.
func (svc *NotesService) persist(ctx context.Context) {
	if err := svc.Store.SaveNotes(ctx, model.CloneNotes(svc.notes)); err != nil {
		log.Printf("could not persist notes, in-memory state kept: %v", err)
	}
}

// CreateNote validates the raw form values and appends a new note.
// Validation failure leaves the store untouched.
func (svc *NotesService) CreateNote(ctx context.Context, rawText, rawDate, rawPriority string) (*model.Note, error) {
	text, err := ValidateText(rawText)
	if err != nil {
		return nil, err
	}
	date, err := ValidateDate(rawDate, svc.Now())
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:       utils.GenerateNoteID(),
		Text:     text,
		Date:     date,
		Priority: NormalizePriority(rawPriority),
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.notes = append(svc.notes, note)
	svc.persist(ctx)
	return note.Clone(), nil
}

// Notes returns a copy of the collection in insertion order.
func (svc *NotesService) Notes() []*model.Note {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return model.CloneNotes(svc.notes)
}

// Visible returns the filtered, ordered subset for the active filter.
func (svc *NotesService) Visible() []*model.Note {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return model.CloneNotes(svc.Engine.VisibleNotes(svc.notes, svc.filter, svc.Now()))
}

// VisibleFor is Visible with an explicit filter, used for the panel
// snapshot which mirrors whatever window the caller asks for.
func (svc *NotesService) VisibleFor(filter model.Filter) []*model.Note {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return model.CloneNotes(svc.Engine.VisibleNotes(svc.notes, filter, svc.Now()))
}

func (svc *NotesService) Filter() model.Filter {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.filter
}

func (svc *NotesService) SetFilter(filter model.Filter) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.filter = filter
}

// EditingID exposes the note currently in EDITING, if any.
func (svc *NotesService) EditingID() (string, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.edit.Active()
}

// EditDraft returns the field values projected when the edit began.
func (svc *NotesService) EditDraft() (model.Note, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.edit.Draft()
}

// Dispatch is the single entry point for per-note actions. An id that no
// longer resolves is a stale view, not an error: the action becomes a
// no-op. The returned bool reports whether the store changed (and was
// persisted).
func (svc *NotesService) Dispatch(ctx context.Context, noteID string, kind model.ActionKind, input ActionInput) (bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.indexOf(noteID)
	if idx < 0 {
		return false, nil
	}

	switch kind {
	case model.ActionComplete:
		svc.notes[idx].Completed = true

	case model.ActionUncomplete:
		svc.notes[idx].Completed = false

	case model.ActionDelete:
		// Deletion requires explicit confirmation; declined means no-op.
		if !input.Confirmed {
			return false, nil
		}
		svc.removeAt(idx)

	case model.ActionEdit:
		return false, svc.edit.Begin(svc.notes[idx])

	case model.ActionCancel:
		if svc.edit.Editing(noteID) {
			svc.edit.End()
		}
		return false, nil

	case model.ActionSave:
		return svc.saveEdit(ctx, idx, input)

	default:
		return false, nil
	}

	svc.persist(ctx)
	return true, nil
}

// saveEdit is the EDITING -> VIEW exit through Save. Any validation
// failure keeps the session in EDITING and the store untouched; the
// specific reason travels back for the UI to mark the field.
func (svc *NotesService) saveEdit(ctx context.Context, idx int, input ActionInput) (bool, error) {
	note := svc.notes[idx]
	if !svc.edit.Editing(note.ID) {
		return false, nil
	}

	text, err := ValidateText(input.Text)
	if err != nil {
		return false, err
	}
	date, err := ValidateDate(input.Date, svc.Now())
	if err != nil {
		return false, err
	}

	note.Text = text
	note.Date = date
	note.Priority = NormalizePriority(input.Priority)

	svc.edit.End()
	svc.persist(ctx)
	return true, nil
}

// RemoveByID removes exactly the given note, leaving all others
// untouched. This is the intake path for panel delete notifications; an
// unknown id is silently ignored.
func (svc *NotesService) RemoveByID(ctx context.Context, noteID string) bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.indexOf(noteID)
	if idx < 0 {
		return false
	}
	svc.removeAt(idx)
	svc.persist(ctx)
	return true
}

// ClearAll wipes the collection after explicit confirmation.
func (svc *NotesService) ClearAll(ctx context.Context, confirmed bool) bool {
	if !confirmed {
		return false
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.notes = []*model.Note{}
	svc.edit.End()
	svc.persist(ctx)
	return true
}

// SaveSnapshotNow writes a timestamped immutable copy of the collection.
func (svc *NotesService) SaveSnapshotNow(ctx context.Context) (string, error) {
	svc.mu.RLock()
	notes := model.CloneNotes(svc.notes)
	svc.mu.RUnlock()

	timestamp := svc.Now().UTC().Format(time.RFC3339)
	if err := svc.Snapshots.SaveSnapshot(ctx, timestamp, notes); err != nil {
		return "", err
	}
	return timestamp, nil
}

// ListSnapshots returns the retained snapshot timestamps, newest first.
func (svc *NotesService) ListSnapshots(ctx context.Context) ([]string, error) {
	return svc.Snapshots.ListSnapshots(ctx)
}

// RestoreSnapshot replaces the collection with a retained snapshot and
// persists the result. Any edit in progress is discarded since its note
// may no longer exist.
func (svc *NotesService) RestoreSnapshot(ctx context.Context, timestamp string) error {
	notes, err := svc.Snapshots.RestoreSnapshot(ctx, timestamp)
	if err != nil {
		return err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.notes = notes
	svc.edit.End()
	svc.persist(ctx)
	return nil
}

// Callers must hold the lock.
func (svc *NotesService) indexOf(noteID string) int {
	for i, n := range svc.notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}

// Callers must hold the lock. A deleted note that was being edited ends
// the edit session with it.
func (svc *NotesService) removeAt(idx int) {
	if svc.edit.Editing(svc.notes[idx].ID) {
		svc.edit.End()
	}
	svc.notes = append(svc.notes[:idx], svc.notes[idx+1:]...)
}
