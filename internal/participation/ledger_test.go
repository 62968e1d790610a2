package participation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/athleteverse/api/internal/event"
	"github.com/athleteverse/api/internal/models"
	"github.com/athleteverse/api/internal/tournament"
	"github.com/athleteverse/api/internal/user"
)

// fakeStore keeps records in memory and serializes WithTx calls with a
// mutex, mirroring the row-lock behavior of the real store. Mutations are
// staged per transaction and committed only when the callback succeeds.
type fakeStore struct {
	mu          sync.Mutex
	events      map[uint]*event.Event
	tournaments map[uint]*tournament.Tournament
	users       map[uint]*user.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:      make(map[uint]*event.Event),
		tournaments: make(map[uint]*tournament.Tournament),
		users:       make(map[uint]*user.User),
	}
}

func (s *fakeStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &fakeTx{store: s}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (s *fakeStore) GetUser(ctx context.Context, id uint) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeStore) GetEventsByIDs(ctx context.Context, ids []uint) ([]event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []event.Event{}
	for _, id := range ids {
		if ev, ok := s.events[id]; ok {
			out = append(out, *ev)
		}
	}
	return out, nil
}

func (s *fakeStore) GetTournamentsByIDs(ctx context.Context, ids []uint) ([]tournament.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []tournament.Tournament{}
	for _, id := range ids {
		if t, ok := s.tournaments[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeTx struct {
	store             *fakeStore
	stagedEvents      []*event.Event
	stagedTournaments []*tournament.Tournament
	stagedUsers       []*user.User
}

func (t *fakeTx) GetEventForUpdate(id uint) (*event.Event, error) {
	ev, ok := t.store.events[id]
	if !ok {
		return nil, nil
	}
	copied := *ev
	copied.Participants = append(models.IDList{}, ev.Participants...)
	return &copied, nil
}

func (t *fakeTx) SaveEvent(ev *event.Event) error {
	t.stagedEvents = append(t.stagedEvents, ev)
	return nil
}

func (t *fakeTx) GetTournamentForUpdate(id uint) (*tournament.Tournament, error) {
	tr, ok := t.store.tournaments[id]
	if !ok {
		return nil, nil
	}
	copied := *tr
	copied.Participants = append(models.IDList{}, tr.Participants...)
	return &copied, nil
}

func (t *fakeTx) SaveTournament(tr *tournament.Tournament) error {
	t.stagedTournaments = append(t.stagedTournaments, tr)
	return nil
}

func (t *fakeTx) GetUserForUpdate(id uint) (*user.User, error) {
	u, ok := t.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	copied.EventsJoined = append(models.IDList{}, u.EventsJoined...)
	copied.TournamentsJoined = append(models.IDList{}, u.TournamentsJoined...)
	return &copied, nil
}

func (t *fakeTx) SaveUser(u *user.User) error {
	t.stagedUsers = append(t.stagedUsers, u)
	return nil
}

func (t *fakeTx) commit() {
	for _, ev := range t.stagedEvents {
		t.store.events[ev.ID] = ev
	}
	for _, tr := range t.stagedTournaments {
		t.store.tournaments[tr.ID] = tr
	}
	for _, u := range t.stagedUsers {
		t.store.users[u.ID] = u
	}
}

func (s *fakeStore) addEvent(ev *event.Event) {
	s.events[ev.ID] = ev
}

func (s *fakeStore) addTournament(tr *tournament.Tournament) {
	s.tournaments[tr.ID] = tr
}

func (s *fakeStore) addUser(u *user.User) {
	s.users[u.ID] = u
}

func newTestUser(id uint) *user.User {
	u := &user.User{
		Name:  "Test User",
		Email: "test@example.com",
	}
	u.ID = id
	return u
}

func newTestEvent(id uint, maxParticipants int) *event.Event {
	ev := &event.Event{
		Title:           "Pickup Basketball",
		Sport:           "basketball",
		MaxParticipants: maxParticipants,
	}
	ev.ID = id
	return ev
}

func newTestTournament(id uint, maxParticipants int) *tournament.Tournament {
	tr := &tournament.Tournament{
		Title:           "Spring Cup",
		Game:            "Valorant",
		MaxParticipants: maxParticipants,
	}
	tr.ID = id
	return tr
}

func TestJoinEventAddsParticipantAndMirror(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 10))
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)

	if err := ledger.JoinEvent(context.Background(), 1, 7); err != nil {
		t.Fatalf("JoinEvent: %v", err)
	}

	ev := store.events[1]
	if !ev.Participants.Contains(7) {
		t.Fatalf("expected user 7 in participants, got %v", ev.Participants)
	}
	u := store.users[7]
	if !u.EventsJoined.Contains(1) {
		t.Fatalf("expected event 1 in joined list, got %v", u.EventsJoined)
	}
	if u.EventCount != 1 {
		t.Fatalf("expected event count 1, got %d", u.EventCount)
	}
}

func TestJoinEventIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 10))
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)

	for i := 0; i < 3; i++ {
		if err := ledger.JoinEvent(context.Background(), 1, 7); err != nil {
			t.Fatalf("JoinEvent attempt %d: %v", i+1, err)
		}
	}

	if got := len(store.events[1].Participants); got != 1 {
		t.Fatalf("expected 1 participant after repeated joins, got %d", got)
	}
	u := store.users[7]
	if len(u.EventsJoined) != 1 || u.EventCount != 1 {
		t.Fatalf("expected mirror of one event, got list %v count %d", u.EventsJoined, u.EventCount)
	}
}

func TestJoinEventRejectsWhenFull(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvent(1, 1)
	ev.Participants = models.IDList{99}
	store.addEvent(ev)
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)

	err := ledger.JoinEvent(context.Background(), 1, 7)
	if !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if store.users[7].EventCount != 0 {
		t.Fatalf("rejected join must not touch the user mirror")
	}
}

func TestJoinEventExistingMemberSucceedsWhenFull(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvent(1, 1)
	ev.Participants = models.IDList{7}
	store.addEvent(ev)
	u := newTestUser(7)
	u.EventsJoined = models.IDList{1}
	u.EventCount = 1
	store.addUser(u)
	ledger := NewLedger(store)

	if err := ledger.JoinEvent(context.Background(), 1, 7); err != nil {
		t.Fatalf("re-join of existing member should succeed even at capacity: %v", err)
	}
}

func TestJoinEventUnlimitedCapacity(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 0))
	for id := uint(1); id <= 50; id++ {
		store.addUser(newTestUser(id))
	}
	ledger := NewLedger(store)

	for id := uint(1); id <= 50; id++ {
		if err := ledger.JoinEvent(context.Background(), 1, id); err != nil {
			t.Fatalf("JoinEvent user %d: %v", id, err)
		}
	}
	if got := len(store.events[1].Participants); got != 50 {
		t.Fatalf("expected 50 participants, got %d", got)
	}
}

func TestJoinEventConcurrentAtCapacityAdmitsExactlyOne(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 1))
	const contenders = 20
	for id := uint(1); id <= contenders; id++ {
		store.addUser(newTestUser(id))
	}
	ledger := NewLedger(store)

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = ledger.JoinEvent(context.Background(), 1, uint(i+1))
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, ErrFull):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if admitted != 1 {
		t.Fatalf("expected exactly 1 admitted join, got %d", admitted)
	}
	if got := len(store.events[1].Participants); got != 1 {
		t.Fatalf("expected 1 participant, got %d", got)
	}
}

func TestJoinEventMissingEvent(t *testing.T) {
	store := newFakeStore()
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)

	if err := ledger.JoinEvent(context.Background(), 1, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJoinEventMissingUser(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 10))
	ledger := NewLedger(store)

	if err := ledger.JoinEvent(context.Background(), 1, 7); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if got := len(store.events[1].Participants); got != 0 {
		t.Fatalf("failed join must roll back the participant insert, got %v", store.events[1].Participants)
	}
}

func TestLeaveEventRemovesBothSides(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvent(1, 10)
	ev.Participants = models.IDList{7, 8}
	store.addEvent(ev)
	u := newTestUser(7)
	u.EventsJoined = models.IDList{1}
	u.EventCount = 1
	store.addUser(u)
	ledger := NewLedger(store)

	if err := ledger.LeaveEvent(context.Background(), 1, 7); err != nil {
		t.Fatalf("LeaveEvent: %v", err)
	}

	if store.events[1].Participants.Contains(7) {
		t.Fatalf("user 7 still in participants: %v", store.events[1].Participants)
	}
	if !store.events[1].Participants.Contains(8) {
		t.Fatalf("user 8 should be untouched")
	}
	got := store.users[7]
	if got.EventsJoined.Contains(1) || got.EventCount != 0 {
		t.Fatalf("mirror not cleared: list %v count %d", got.EventsJoined, got.EventCount)
	}
}

func TestLeaveEventIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 10))
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)

	if err := ledger.LeaveEvent(context.Background(), 1, 7); err != nil {
		t.Fatalf("leaving an event never joined should succeed: %v", err)
	}
}

func TestLeaveEventOrganizerBlocked(t *testing.T) {
	store := newFakeStore()
	organizerID := uint(7)
	ev := newTestEvent(1, 10)
	ev.OrganizerID = &organizerID
	ev.Participants = models.IDList{7}
	store.addEvent(ev)
	u := newTestUser(7)
	u.EventsJoined = models.IDList{1}
	u.EventCount = 1
	store.addUser(u)
	ledger := NewLedger(store)

	if err := ledger.LeaveEvent(context.Background(), 1, 7); !errors.Is(err, ErrOrganizerCannotLeave) {
		t.Fatalf("expected ErrOrganizerCannotLeave, got %v", err)
	}
	if !store.events[1].Participants.Contains(7) {
		t.Fatalf("blocked leave must not mutate participants")
	}
}

func TestLeaveEventNonOrganizerOfAnonymousEvent(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvent(1, 10)
	ev.IsAnonymous = true
	ev.Participants = models.IDList{7}
	store.addEvent(ev)
	u := newTestUser(7)
	u.EventsJoined = models.IDList{1}
	u.EventCount = 1
	store.addUser(u)
	ledger := NewLedger(store)

	if err := ledger.LeaveEvent(context.Background(), 1, 7); err != nil {
		t.Fatalf("anonymous events have no organizer to block: %v", err)
	}
}

func TestTournamentOrganizerMayLeave(t *testing.T) {
	store := newFakeStore()
	organizerID := uint(7)
	tr := newTestTournament(1, 10)
	tr.OrganizerID = &organizerID
	tr.Participants = models.IDList{7}
	store.addTournament(tr)
	u := newTestUser(7)
	u.TournamentsJoined = models.IDList{1}
	u.TournamentCount = 1
	store.addUser(u)
	ledger := NewLedger(store)

	if err := ledger.LeaveTournament(context.Background(), 1, 7); err != nil {
		t.Fatalf("tournament organizers may leave their own tournament: %v", err)
	}
	if store.tournaments[1].Participants.Contains(7) {
		t.Fatalf("organizer still in participants after leave")
	}
	if store.users[7].TournamentCount != 0 {
		t.Fatalf("mirror count not updated, got %d", store.users[7].TournamentCount)
	}
}

func TestJoinTournamentRejectsWhenFull(t *testing.T) {
	store := newFakeStore()
	tr := newTestTournament(1, 2)
	tr.Participants = models.IDList{10, 11}
	store.addTournament(tr)
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)

	if err := ledger.JoinTournament(context.Background(), 1, 7); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
}

func TestCountersTrackSetSizes(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 10))
	store.addEvent(newTestEvent(2, 10))
	store.addTournament(newTestTournament(5, 10))
	store.addUser(newTestUser(7))
	ledger := NewLedger(store)
	ctx := context.Background()

	steps := []func() error{
		func() error { return ledger.JoinEvent(ctx, 1, 7) },
		func() error { return ledger.JoinEvent(ctx, 2, 7) },
		func() error { return ledger.JoinTournament(ctx, 5, 7) },
		func() error { return ledger.JoinEvent(ctx, 1, 7) },
		func() error { return ledger.LeaveEvent(ctx, 2, 7) },
		func() error { return ledger.LeaveTournament(ctx, 5, 7) },
		func() error { return ledger.LeaveTournament(ctx, 5, 7) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		u := store.users[7]
		if u.EventCount != len(u.EventsJoined) {
			t.Fatalf("step %d: event count %d != set size %d", i, u.EventCount, len(u.EventsJoined))
		}
		if u.TournamentCount != len(u.TournamentsJoined) {
			t.Fatalf("step %d: tournament count %d != set size %d", i, u.TournamentCount, len(u.TournamentsJoined))
		}
	}

	u := store.users[7]
	if u.EventCount != 1 || u.TournamentCount != 0 {
		t.Fatalf("final counts: events %d tournaments %d", u.EventCount, u.TournamentCount)
	}
}

func TestHistoryDropsDanglingIDs(t *testing.T) {
	store := newFakeStore()
	store.addEvent(newTestEvent(1, 10))
	store.addTournament(newTestTournament(5, 10))
	u := newTestUser(7)
	u.EventsJoined = models.IDList{1, 2}
	u.EventCount = 2
	u.TournamentsJoined = models.IDList{5, 6}
	u.TournamentCount = 2
	store.addUser(u)
	ledger := NewLedger(store)

	history, err := ledger.History(context.Background(), 7)
	if err != nil {
		t.Fatalf("History: %v", err)
	}

	if len(history.Events) != 1 || history.Events[0].ID != 1 {
		t.Fatalf("expected only event 1 resolved, got %v", history.Events)
	}
	if len(history.Tournaments) != 1 || history.Tournaments[0].ID != 5 {
		t.Fatalf("expected only tournament 5 resolved, got %v", history.Tournaments)
	}
	// Stored counters report as-is even when ids dangle.
	if history.EventCount != 2 || history.TournamentCount != 2 {
		t.Fatalf("expected stored counters 2/2, got %d/%d", history.EventCount, history.TournamentCount)
	}
}

func TestHistoryMissingUser(t *testing.T) {
	store := newFakeStore()
	ledger := NewLedger(store)

	if _, err := ledger.History(context.Background(), 7); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
