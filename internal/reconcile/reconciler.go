package reconcile

import (
	"log"
	"time"

	"github.com/athleteverse/api/internal/event"
	"github.com/athleteverse/api/internal/models"
	"github.com/athleteverse/api/internal/tournament"
	"github.com/athleteverse/api/internal/user"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Reconciler periodically repairs user participation mirrors. Activities are
// hard-deleted without touching the users that joined them, so joined-id
// lists accumulate dangling references and counters drift from the real set
// sizes until this worker prunes them.
type Reconciler struct {
	db        *gorm.DB
	interval  time.Duration
	scheduler gocron.Scheduler
}

func NewReconciler(db *gorm.DB, interval time.Duration) *Reconciler {
	return &Reconciler{db: db, interval: interval}
}

// Start schedules the reconciliation job and returns immediately.
func (r *Reconciler) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(r.Run),
	)
	if err != nil {
		return err
	}

	sched.Start()
	r.scheduler = sched
	log.Printf("Participation reconciler running every %s", r.interval)
	return nil
}

// Stop shuts the scheduler down. Safe to call before Start.
func (r *Reconciler) Stop() {
	if r.scheduler != nil {
		_ = r.scheduler.Shutdown()
	}
}

// Run performs one reconciliation pass over all users.
func (r *Reconciler) Run() {
	var users []user.User
	if err := r.db.Find(&users).Error; err != nil {
		log.Printf("[Reconciler] Failed to load users: %v", err)
		return
	}

	repaired := 0
	for i := range users {
		changed, err := r.reconcileUser(&users[i])
		if err != nil {
			log.Printf("[Reconciler] Failed to repair user %d: %v", users[i].ID, err)
			continue
		}
		if changed {
			repaired++
		}
	}
	if repaired > 0 {
		log.Printf("[Reconciler] Repaired participation records for %d users", repaired)
	}
}

func (r *Reconciler) reconcileUser(u *user.User) (bool, error) {
	events, err := r.existingIDs(&event.Event{}, u.EventsJoined)
	if err != nil {
		return false, err
	}
	tournaments, err := r.existingIDs(&tournament.Tournament{}, u.TournamentsJoined)
	if err != nil {
		return false, err
	}

	if len(events) == len(u.EventsJoined) && len(tournaments) == len(u.TournamentsJoined) &&
		u.EventCount == len(events) && u.TournamentCount == len(tournaments) {
		return false, nil
	}

	updates := map[string]interface{}{
		"events_joined":      events,
		"tournaments_joined": tournaments,
		"event_count":        len(events),
		"tournament_count":   len(tournaments),
	}
	if err := r.db.Model(u).Updates(updates).Error; err != nil {
		return false, err
	}
	return true, nil
}

// existingIDs filters the given id list down to ids that still resolve to a
// live row, preserving the original order.
func (r *Reconciler) existingIDs(model interface{}, ids models.IDList) (models.IDList, error) {
	if len(ids) == 0 {
		return models.IDList{}, nil
	}

	var found []uint
	if err := r.db.Model(model).Where("id IN ?", []uint(ids)).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	alive := make(map[uint]bool, len(found))
	for _, id := range found {
		alive[id] = true
	}

	kept := make(models.IDList, 0, len(found))
	for _, id := range ids {
		if alive[id] {
			kept = append(kept, id)
		}
	}
	return kept, nil
}
