package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/home/notifications/model"
)

// Response sent to the frontend inbox
type NotificationResponse struct {
	NotificationID      uuid.UUID  `json:"notification_id"`
	NotificationType    string     `json:"notification_type"`
	NotificationMessage string     `json:"notification_message"`
	NotificationEventID *uuid.UUID `json:"notification_event_id,omitempty"`
	NotificationRead    bool       `json:"notification_read"`
	NotificationReadAt  *string    `json:"notification_read_at,omitempty"`
	NotificationCreatedAt string   `json:"notification_created_at"`
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	var readAt *string
	if m.NotificationReadAt != nil {
		formatted := m.NotificationReadAt.Format("2006-01-02 15:04:05")
		readAt = &formatted
	}
	return &NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationType:      m.NotificationType,
		NotificationMessage:   m.NotificationMessage,
		NotificationEventID:   m.NotificationEventID,
		NotificationRead:      m.NotificationRead,
		NotificationReadAt:    readAt,
		NotificationCreatedAt: m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToNotificationResponse(&m))
	}
	return result
}
