package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/events/event/model"
)

// Request to create an event
type EventRequest struct {
	EventTitle       string    `json:"event_title" validate:"required,min=3,max=255"`
	EventDescription string    `json:"event_description" validate:"max=5000"`
	EventLocation    string    `json:"event_location" validate:"max=255"`
	EventCategory    string    `json:"event_category" validate:"required,oneof=academic cultural sports technical workshop other"`
	EventStartDate   time.Time `json:"event_start_date" validate:"required"`
	EventEndDate     time.Time `json:"event_end_date" validate:"required"`
	EventCapacity    int       `json:"event_capacity" validate:"gte=0"`
}

// Request to update an event (partial)
type EventUpdateRequest struct {
	EventTitle       *string    `json:"event_title,omitempty" validate:"omitempty,min=3,max=255"`
	EventDescription *string    `json:"event_description,omitempty" validate:"omitempty,max=5000"`
	EventLocation    *string    `json:"event_location,omitempty" validate:"omitempty,max=255"`
	EventCategory    *string    `json:"event_category,omitempty" validate:"omitempty,oneof=academic cultural sports technical workshop other"`
	EventStartDate   *time.Time `json:"event_start_date,omitempty"`
	EventEndDate     *time.Time `json:"event_end_date,omitempty"`
	EventCapacity    *int       `json:"event_capacity,omitempty" validate:"omitempty,gte=0"`
}

// Response for rendering an event (status is derived, never stored)
type EventResponse struct {
	EventID               uuid.UUID `json:"event_id"`
	EventTitle            string    `json:"event_title"`
	EventSlug             string    `json:"event_slug"`
	EventDescription      string    `json:"event_description"`
	EventLocation         string    `json:"event_location"`
	EventCategory         string    `json:"event_category"`
	EventInstitution      string    `json:"event_institution"`
	EventStartDate        time.Time `json:"event_start_date"`
	EventEndDate          time.Time `json:"event_end_date"`
	EventCapacity         int       `json:"event_capacity"`
	EventParticipantCount int       `json:"event_participant_count"`
	EventStatus           string    `json:"event_status"`
	EventCreatedBy        uuid.UUID `json:"event_created_by"`
	EventCreatedAt        string    `json:"event_created_at"`
}

// Request → model
func (r *EventRequest) ToModel(institution string, createdBy uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventCategory:    r.EventCategory,
		EventInstitution: institution,
		EventStartDate:   r.EventStartDate,
		EventEndDate:     r.EventEndDate,
		EventCapacity:    r.EventCapacity,
		EventCreatedBy:   createdBy,
	}
}

// ApplyTo copies the non-nil fields of a partial update onto the model.
func (r *EventUpdateRequest) ApplyTo(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventLocation != nil {
		m.EventLocation = *r.EventLocation
	}
	if r.EventCategory != nil {
		m.EventCategory = *r.EventCategory
	}
	if r.EventStartDate != nil {
		m.EventStartDate = *r.EventStartDate
	}
	if r.EventEndDate != nil {
		m.EventEndDate = *r.EventEndDate
	}
	if r.EventCapacity != nil {
		m.EventCapacity = *r.EventCapacity
	}
}

// Model → response
func ToEventResponse(m *model.EventModel, now time.Time) *EventResponse {
	return &EventResponse{
		EventID:               m.EventID,
		EventTitle:            m.EventTitle,
		EventSlug:             m.EventSlug,
		EventDescription:      m.EventDescription,
		EventLocation:         m.EventLocation,
		EventCategory:         m.EventCategory,
		EventInstitution:      m.EventInstitution,
		EventStartDate:        m.EventStartDate,
		EventEndDate:          m.EventEndDate,
		EventCapacity:         m.EventCapacity,
		EventParticipantCount: m.EventParticipantCount,
		EventStatus:           m.Status(now),
		EventCreatedBy:        m.EventCreatedBy,
		EventCreatedAt:        m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// List of models → list of responses
func ToEventResponseList(models []model.EventModel, now time.Time) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToEventResponse(&m, now))
	}
	return result
}
