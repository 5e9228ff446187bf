package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// RegistrationModel links a student to an event with an approval workflow.
// One registration per (event, student) pair, enforced by a unique index.
type RegistrationModel struct {
	RegistrationID      uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey" json:"registration_id"`
	RegistrationEventID uuid.UUID `gorm:"column:registration_event_id;type:uuid;not null;uniqueIndex:ux_registrations_event_user" json:"registration_event_id"`
	RegistrationUserID  uuid.UUID `gorm:"column:registration_user_id;type:uuid;not null;uniqueIndex:ux_registrations_event_user" json:"registration_user_id"`

	// Display snapshot taken at apply time.
	RegistrationUserName string `gorm:"column:registration_user_name;size:50;not null" json:"registration_user_name"`

	RegistrationStatus    string    `gorm:"column:registration_status;type:varchar(10);not null;default:'pending'" json:"registration_status"`
	RegistrationAppliedAt time.Time `gorm:"column:registration_applied_at;autoCreateTime" json:"registration_applied_at"`

	// Stamped by the reviewing admin; both stay null while pending.
	RegistrationReviewedBy *string    `gorm:"column:registration_reviewed_by;size:50" json:"registration_reviewed_by,omitempty"`
	RegistrationReviewedAt *time.Time `gorm:"column:registration_reviewed_at" json:"registration_reviewed_at,omitempty"`
}

func (RegistrationModel) TableName() string {
	return "event_registrations"
}

func (m *RegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.RegistrationID == uuid.Nil {
		m.RegistrationID = uuid.New()
	}
	if m.RegistrationStatus == "" {
		m.RegistrationStatus = StatusPending
	}
	return nil
}
