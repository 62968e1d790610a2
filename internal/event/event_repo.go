package event

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows event listings. Zero values mean "no filter"; ShowPast
// overrides the future-only default.
type ListFilter struct {
	Sport      string
	SkillLevel string
	ShowPast   bool
}

// EventRepository defines the interface for event data operations.
type EventRepository interface {
	CreateEvent(ev *Event) error
	GetEventByID(id uint) (*Event, error)
	GetAllEvents(limit, offset int, filter ListFilter) ([]Event, int64, error)
	UpdateEvent(ev *Event) error
	DeleteEvent(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(ev *Event) error {
	return r.db.Create(ev).Error
}

func (r *eventRepository) GetEventByID(id uint) (*Event, error) {
	var ev Event
	err := r.db.First(&ev, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

func (r *eventRepository) GetAllEvents(limit, offset int, filter ListFilter) ([]Event, int64, error) {
	var events []Event
	var total int64

	query := r.db.Model(&Event{})
	if filter.Sport != "" {
		query = query.Where("sport = ?", filter.Sport)
	}
	if filter.SkillLevel != "" {
		query = query.Where("skill_level = ?", filter.SkillLevel)
	}
	if !filter.ShowPast {
		query = query.Where("date >= ?", time.Now())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("date ASC").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) UpdateEvent(ev *Event) error {
	return r.db.Save(ev).Error
}

// DeleteEvent is a hard delete; membership mirrors on user records are
// repaired by the reconcile worker.
func (r *eventRepository) DeleteEvent(id uint) error {
	result := r.db.Unscoped().Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
