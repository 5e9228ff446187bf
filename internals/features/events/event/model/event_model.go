package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event categories (fixed enum).
const (
	CategoryAcademic  = "academic"
	CategoryCultural  = "cultural"
	CategorySports    = "sports"
	CategoryTechnical = "technical"
	CategoryWorkshop  = "workshop"
	CategoryOther     = "other"
)

var Categories = []string{
	CategoryAcademic,
	CategoryCultural,
	CategorySports,
	CategoryTechnical,
	CategoryWorkshop,
	CategoryOther,
}

func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// EventModel represents the events table. Event status is never stored; it is
// derived from the schedule at read time (see event_status.go), so it cannot
// go stale.
type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;size:255;not null" json:"event_title"`
	EventSlug        string    `gorm:"column:event_slug;size:100;not null;index" json:"event_slug"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;size:255" json:"event_location"`
	EventCategory    string    `gorm:"column:event_category;type:varchar(20);not null" json:"event_category"`
	EventInstitution string    `gorm:"column:event_institution;size:120;not null;index" json:"event_institution"`

	EventStartDate time.Time `gorm:"column:event_start_date;not null" json:"event_start_date"`
	EventEndDate   time.Time `gorm:"column:event_end_date;not null" json:"event_end_date"`

	// Capacity is advisory only: registration does not enforce it, the count
	// is shown on dashboards next to the capacity.
	EventCapacity         int `gorm:"column:event_capacity;not null;default:0" json:"event_capacity"`
	EventParticipantCount int `gorm:"column:event_participant_count;not null;default:0" json:"event_participant_count"`

	EventCreatedBy uuid.UUID `gorm:"column:event_created_by;type:uuid;not null;index" json:"event_created_by"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
