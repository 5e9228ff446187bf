package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types.
const (
	TypeRegistration = "registration" // a student applied (sent to the event owner)
	TypeApproval     = "approval"     // registration approved (sent to the student)
	TypeRejection    = "rejection"    // registration rejected (sent to the student)
	TypeEvent        = "event"        // a new event was published (institution broadcast)
)

// NotificationModel is a transient per-recipient inbox entry, not an audit
// log: the client marks it read and then deletes it.
type NotificationModel struct {
	NotificationID      uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationUserID  uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType    string    `gorm:"column:notification_type;type:varchar(20);not null" json:"notification_type"`
	NotificationMessage string    `gorm:"column:notification_message;type:text;not null" json:"notification_message"`

	NotificationEventID *uuid.UUID `gorm:"column:notification_event_id;type:uuid" json:"notification_event_id,omitempty"`

	// false → true only, never back.
	NotificationRead   bool       `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
