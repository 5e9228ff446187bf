package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/events/registration/model"
)

// Request to register for an event
type RegistrationRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
}

// Request to decide a registration
type RegistrationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// Response for rendering a registration
type RegistrationResponse struct {
	RegistrationID        uuid.UUID  `json:"registration_id"`
	RegistrationEventID   uuid.UUID  `json:"registration_event_id"`
	RegistrationUserID    uuid.UUID  `json:"registration_user_id"`
	RegistrationUserName  string     `json:"registration_user_name"`
	RegistrationStatus    string     `json:"registration_status"`
	RegistrationAppliedAt string     `json:"registration_applied_at"`
	RegistrationReviewedBy *string   `json:"registration_reviewed_by,omitempty"`
	RegistrationReviewedAt *string   `json:"registration_reviewed_at,omitempty"`

	// Joined event fields for dashboards
	EventTitle     string     `json:"event_title,omitempty"`
	EventStartDate *time.Time `json:"event_start_date,omitempty"`
	EventEndDate   *time.Time `json:"event_end_date,omitempty"`
}

func ToRegistrationResponse(m *model.RegistrationModel) *RegistrationResponse {
	var reviewedAt *string
	if m.RegistrationReviewedAt != nil {
		formatted := m.RegistrationReviewedAt.Format("2006-01-02 15:04:05")
		reviewedAt = &formatted
	}
	return &RegistrationResponse{
		RegistrationID:         m.RegistrationID,
		RegistrationEventID:    m.RegistrationEventID,
		RegistrationUserID:     m.RegistrationUserID,
		RegistrationUserName:   m.RegistrationUserName,
		RegistrationStatus:     m.RegistrationStatus,
		RegistrationAppliedAt:  m.RegistrationAppliedAt.Format("2006-01-02 15:04:05"),
		RegistrationReviewedBy: m.RegistrationReviewedBy,
		RegistrationReviewedAt: reviewedAt,
	}
}

func ToRegistrationResponseList(models []model.RegistrationModel) []RegistrationResponse {
	result := make([]RegistrationResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToRegistrationResponse(&m))
	}
	return result
}

// RegistrationWithEventRow is the join row used by the list queries.
type RegistrationWithEventRow struct {
	model.RegistrationModel
	EventTitle     string     `gorm:"column:event_title"`
	EventStartDate *time.Time `gorm:"column:event_start_date"`
	EventEndDate   *time.Time `gorm:"column:event_end_date"`
}

func ToRegistrationResponseWithEvent(row *RegistrationWithEventRow) *RegistrationResponse {
	resp := ToRegistrationResponse(&row.RegistrationModel)
	resp.EventTitle = row.EventTitle
	resp.EventStartDate = row.EventStartDate
	resp.EventEndDate = row.EventEndDate
	return resp
}

func ToRegistrationResponseWithEventList(rows []RegistrationWithEventRow) []RegistrationResponse {
	result := make([]RegistrationResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *ToRegistrationResponseWithEvent(&rows[i]))
	}
	return result
}
