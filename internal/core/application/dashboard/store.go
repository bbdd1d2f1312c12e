package dashboard

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

var (
	ErrSyncInProgress       = errors.New("a sync is already in progress")
	ErrDeletionInProgress   = errors.New("deletion of this order is already in progress")
	ErrNoActiveNoteEdit     = errors.New("no note is being edited")
	ErrNoteEditMismatch     = errors.New("the note being edited belongs to another order")
	ErrNoteCommitInProgress = errors.New("the note is already being saved")
)

// NoteEdit is the single active note edit.
type NoteEdit struct {
	OrderID    kernel.OrderID
	Draft      string
	Committing bool
	StartedAt  time.Time
}

// Failure is a quietly reported failure of a non-destructive operation.
type Failure struct {
	Operation string
	OrderID   string
	Message   string
	At        time.Time
}

// Alert is a failure the operator has to acknowledge.
type Alert struct {
	Message string
	At      time.Time
}

// State is a point-in-time copy of everything the Store holds.
type State struct {
	Board       board.Board
	RefreshedAt time.Time
	Syncing     bool
	Deleting    []kernel.OrderID
	NoteEdit    *NoteEdit
	LastFailure *Failure
	Alerts      []Alert
}

// IsDeleting reports whether a deletion of id is in flight in this state.
func (s State) IsDeleting(id kernel.OrderID) bool {
	return slices.ContainsFunc(s.Deleting, id.IsEqual)
}

// Store is the process-wide dashboard state. The zero value is not usable;
// create it with NewStore.
type Store struct {
	mu sync.Mutex

	board       board.Board
	refreshedAt time.Time
	syncing     bool
	deleting    map[string]struct{}
	noteEdit    *NoteEdit
	noteEditSeq uint64
	lastFailure *Failure
	alerts      []Alert

	now func() time.Time
}

// NewStore returns an empty store: no orders, empty stats, no guard set.
func NewStore() *Store {
	return &Store{
		board:    board.New(nil, board.NewStats(nil)),
		deleting: make(map[string]struct{}),
		now:      time.Now,
	}
}

// Snapshot copies the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Board:       s.board,
		RefreshedAt: s.refreshedAt,
		Syncing:     s.syncing,
		Deleting:    make([]kernel.OrderID, 0, len(s.deleting)),
		Alerts:      slices.Clone(s.alerts),
	}
	for id := range s.deleting {
		st.Deleting = append(st.Deleting, kernel.MustOrderID(id))
	}
	slices.SortFunc(st.Deleting, func(a, b kernel.OrderID) int {
		return strings.Compare(a.String(), b.String())
	})
	if s.noteEdit != nil {
		edit := *s.noteEdit
		st.NoteEdit = &edit
	}
	if s.lastFailure != nil {
		f := *s.lastFailure
		st.LastFailure = &f
	}
	if st.Alerts == nil {
		st.Alerts = []Alert{}
	}
	return st
}

// Board returns the current board snapshot.
func (s *Store) Board() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// ReplaceOrders swaps the order list wholesale.
func (s *Store) ReplaceOrders(orders []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = s.board.WithOrders(orders)
	s.refreshedAt = s.now()
}

// ReplaceStats swaps the stats snapshot wholesale.
func (s *Store) ReplaceStats(stats board.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = s.board.WithStats(stats)
}

// BeginSync sets the syncing flag, or returns ErrSyncInProgress when it is
// already set. Every successful BeginSync must be paired with EndSync.
func (s *Store) BeginSync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.syncing {
		return ErrSyncInProgress
	}
	s.syncing = true
	return nil
}

func (s *Store) EndSync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncing = false
}

func (s *Store) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

// BeginDeletion marks id as being deleted, or returns ErrDeletionInProgress
// when a deletion of the same order has not settled yet. Deletions of
// different orders may overlap.
func (s *Store) BeginDeletion(id kernel.OrderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.deleting[id.String()]; ok {
		return ErrDeletionInProgress
	}
	s.deleting[id.String()] = struct{}{}
	return nil
}

func (s *Store) EndDeletion(id kernel.OrderID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleting, id.String())
}

func (s *Store) IsDeleting(id kernel.OrderID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.deleting[id.String()]
	return ok
}

// BeginNoteEdit makes id the active edit target with draft seeded from note.
// An edit already in progress is replaced and its draft discarded. It
// returns the replaced edit, if any.
func (s *Store) BeginNoteEdit(id kernel.OrderID, note string) *NoteEdit {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.noteEdit
	s.noteEditSeq++
	s.noteEdit = &NoteEdit{OrderID: id, Draft: note, StartedAt: s.now()}
	return replaced
}

// UpdateDraft replaces the draft text of the active edit. The draft is frozen
// while it is being saved.
func (s *Store) UpdateDraft(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.noteEdit == nil:
		return ErrNoActiveNoteEdit
	case s.noteEdit.Committing:
		return ErrNoteCommitInProgress
	}
	s.noteEdit.Draft = text
	return nil
}

// CancelNoteEdit discards the active edit. It reports whether there was one.
func (s *Store) CancelNoteEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.noteEdit != nil
	s.noteEdit = nil
	s.noteEditSeq++
	return had
}

// NoteCommit identifies one commit of the active edit. It is returned by
// StartNoteCommit and handed back to FinishNoteCommit.
type NoteCommit struct {
	OrderID kernel.OrderID
	Draft   string
	seq     uint64
}

// StartNoteCommit marks the active edit of id as being saved and returns the
// draft to send. The edit must target id and must not be saving already.
func (s *Store) StartNoteCommit(id kernel.OrderID) (NoteCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.noteEdit == nil:
		return NoteCommit{}, ErrNoActiveNoteEdit
	case !s.noteEdit.OrderID.IsEqual(id):
		return NoteCommit{}, ErrNoteEditMismatch
	case s.noteEdit.Committing:
		return NoteCommit{}, ErrNoteCommitInProgress
	}
	s.noteEdit.Committing = true
	return NoteCommit{OrderID: id, Draft: s.noteEdit.Draft, seq: s.noteEditSeq}, nil
}

// FinishNoteCommit settles a commit. On success the edit is closed; on
// failure it stays open with its draft so the operator can retry. Nothing
// happens when the edit was replaced or cancelled while the commit ran.
func (s *Store) FinishNoteCommit(c NoteCommit, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.noteEdit == nil || s.noteEditSeq != c.seq {
		return
	}
	if succeeded {
		s.noteEdit = nil
		s.noteEditSeq++
		return
	}
	s.noteEdit.Committing = false
}

// NoteEdit returns a copy of the active edit, or nil.
func (s *Store) NoteEdit() *NoteEdit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noteEdit == nil {
		return nil
	}
	edit := *s.noteEdit
	return &edit
}

// RecordFailure remembers the latest quiet failure. It replaces any earlier
// one.
func (s *Store) RecordFailure(operation string, id string, err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFailure = &Failure{Operation: operation, OrderID: id, Message: err.Error(), At: s.now()}
}

// ClearFailure forgets the latest quiet failure.
func (s *Store) ClearFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFailure = nil
}

// Alert queues a failure for the operator. Store implements ports.Alerter.
func (s *Store) Alert(_ context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, Alert{Message: message, At: s.now()})
}

// DismissAlerts acknowledges every pending alert and returns how many there
// were.
func (s *Store) DismissAlerts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.alerts)
	s.alerts = nil
	return n
}
