package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/home/notifications/dto"
	"campushub_backend/internals/features/home/notifications/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/notifications
// Newest first, scoped to the caller.
func (nc *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := nc.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Session(&gorm.Session{})
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []model.NotificationModel
	if err := base.
		Order("notification_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	resp := dto.ToNotificationResponseList(rows)
	return helper.JsonList(c, "Notifications fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

// PUT /api/notifications/:id/read
// The read flag only moves forward; re-reading is a no-op.
func (nc *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var notif model.NotificationModel
	if err := nc.DB.Where("notification_id = ?", notifID).First(&notif).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if notif.NotificationUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "This notification belongs to another user")
	}

	if !notif.NotificationRead {
		now := time.Now()
		if err := nc.DB.Model(&notif).Updates(map[string]any{
			"notification_read":    true,
			"notification_read_at": now,
		}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
		}
		notif.NotificationRead = true
		notif.NotificationReadAt = &now
	}

	return helper.JsonUpdated(c, "Notification marked as read", dto.ToNotificationResponse(&notif))
}

// DELETE /api/notifications/:id
func (nc *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var notif model.NotificationModel
	if err := nc.DB.Where("notification_id = ?", notifID).First(&notif).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if notif.NotificationUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "This notification belongs to another user")
	}

	if err := nc.DB.Delete(&notif).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}

	return helper.JsonDeleted(c, "Notification deleted", nil)
}
