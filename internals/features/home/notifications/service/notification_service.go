package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/home/notifications/model"
)

// batch size for broadcast inserts
const notifyBatchSize = 200

// Notify inserts one inbox entry. Failures are logged, not propagated:
// a lost notification must never fail the action that triggered it.
func Notify(db *gorm.DB, userID uuid.UUID, notifType, message string, eventID *uuid.UUID) {
	n := model.NotificationModel{
		NotificationUserID:  userID,
		NotificationType:    notifType,
		NotificationMessage: message,
		NotificationEventID: eventID,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] failed to create notification for %s: %v", userID, err)
	}
}

// NotifyMany fans one message out to a set of recipients.
func NotifyMany(db *gorm.DB, userIDs []uuid.UUID, notifType, message string, eventID *uuid.UUID) {
	if len(userIDs) == 0 {
		return
	}
	rows := make([]model.NotificationModel, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, model.NotificationModel{
			NotificationUserID:  id,
			NotificationType:    notifType,
			NotificationMessage: message,
			NotificationEventID: eventID,
		})
	}
	if err := db.CreateInBatches(&rows, notifyBatchSize).Error; err != nil {
		log.Printf("[ERROR] failed to broadcast notification to %d users: %v", len(userIDs), err)
	}
}
