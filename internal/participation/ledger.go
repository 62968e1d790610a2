package participation

import (
	"context"
)

// Ledger owns the join/leave state machine for events and tournaments: the
// capacity rule, the organizer rule, idempotent membership, and the
// denormalized mirror on the user record. Every membership change runs in
// one transaction with the activity row locked, so the capacity check and
// the insert it guards are a single atomic step and the activity-side list
// and user-side mirror change together or not at all.
type Ledger struct {
	store Store
}

// NewLedger creates a Ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// JoinEvent adds the user to the event and mirrors the membership on the
// user record. Joining an event the user already belongs to is a no-op
// success: the participant list and the counters do not move.
func (l *Ledger) JoinEvent(ctx context.Context, eventID, userID uint) error {
	return l.store.WithTx(ctx, func(tx Tx) error {
		ev, err := tx.GetEventForUpdate(eventID)
		if err != nil {
			return err
		}
		if ev == nil {
			return ErrNotFound
		}

		if !ev.Participants.Contains(userID) {
			if ev.MaxParticipants > 0 && len(ev.Participants) >= ev.MaxParticipants {
				return ErrFull
			}
			ev.Participants.Add(userID)
			if err := tx.SaveEvent(ev); err != nil {
				return err
			}
		}

		u, err := tx.GetUserForUpdate(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}
		if u.EventsJoined.Add(eventID) {
			u.EventCount = len(u.EventsJoined)
			return tx.SaveUser(u)
		}
		return nil
	})
}

// LeaveEvent removes the user from the event. The organizer may never leave
// their own event. Leaving an event the user is not part of is a no-op
// success.
func (l *Ledger) LeaveEvent(ctx context.Context, eventID, userID uint) error {
	return l.store.WithTx(ctx, func(tx Tx) error {
		ev, err := tx.GetEventForUpdate(eventID)
		if err != nil {
			return err
		}
		if ev == nil {
			return ErrNotFound
		}
		if ev.OrganizerID != nil && *ev.OrganizerID == userID {
			return ErrOrganizerCannotLeave
		}

		if ev.Participants.Remove(userID) {
			if err := tx.SaveEvent(ev); err != nil {
				return err
			}
		}

		u, err := tx.GetUserForUpdate(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}
		if u.EventsJoined.Remove(eventID) {
			u.EventCount = len(u.EventsJoined)
			return tx.SaveUser(u)
		}
		return nil
	})
}

// JoinTournament mirrors JoinEvent for tournaments.
func (l *Ledger) JoinTournament(ctx context.Context, tournamentID, userID uint) error {
	return l.store.WithTx(ctx, func(tx Tx) error {
		t, err := tx.GetTournamentForUpdate(tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrNotFound
		}

		if !t.Participants.Contains(userID) {
			if t.MaxParticipants > 0 && len(t.Participants) >= t.MaxParticipants {
				return ErrFull
			}
			t.Participants.Add(userID)
			if err := tx.SaveTournament(t); err != nil {
				return err
			}
		}

		u, err := tx.GetUserForUpdate(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}
		if u.TournamentsJoined.Add(tournamentID) {
			u.TournamentCount = len(u.TournamentsJoined)
			return tx.SaveUser(u)
		}
		return nil
	})
}

// LeaveTournament removes the user from the tournament. Unlike events,
// tournament organizers are free to leave their own tournament.
func (l *Ledger) LeaveTournament(ctx context.Context, tournamentID, userID uint) error {
	return l.store.WithTx(ctx, func(tx Tx) error {
		t, err := tx.GetTournamentForUpdate(tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrNotFound
		}

		if t.Participants.Remove(userID) {
			if err := tx.SaveTournament(t); err != nil {
				return err
			}
		}

		u, err := tx.GetUserForUpdate(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}
		if u.TournamentsJoined.Remove(tournamentID) {
			u.TournamentCount = len(u.TournamentsJoined)
			return tx.SaveUser(u)
		}
		return nil
	})
}

// History resolves the user's mirror sets into full activity records. Ids
// that no longer resolve are dropped from the lists; the stored counters
// are reported as-is and the reconcile worker squares them up later.
func (l *Ledger) History(ctx context.Context, userID uint) (*History, error) {
	u, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	events, err := l.store.GetEventsByIDs(ctx, u.EventsJoined)
	if err != nil {
		return nil, err
	}
	tournaments, err := l.store.GetTournamentsByIDs(ctx, u.TournamentsJoined)
	if err != nil {
		return nil, err
	}

	return &History{
		EventCount:      u.EventCount,
		TournamentCount: u.TournamentCount,
		Events:          events,
		Tournaments:     tournaments,
	}, nil
}
