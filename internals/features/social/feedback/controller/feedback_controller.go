package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	eventModel "campushub_backend/internals/features/events/event/model"
	"campushub_backend/internals/features/social/feedback/dto"
	"campushub_backend/internals/features/social/feedback/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// POST /api/feedback
// One entry per (event, user), enforced by the unique index.
func (fc *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var input dto.FeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	feedback := input.ToModel(userID)

	var event eventModel.EventModel
	if err := fc.DB.Where("event_id = ?", feedback.FeedbackEventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	if err := fc.DB.Create(feedback).Error; err != nil {
		if isDuplicateError(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You already submitted feedback for this event")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create feedback")
	}

	return helper.JsonCreated(c, "Feedback submitted", dto.ToFeedbackResponse(feedback))
}

// GET /api/feedback/event/:eventId
// Public list with reviewer names joined in.
func (fc *FeedbackController) GetFeedbackByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := fc.DB.Table("event_feedbacks").
		Joins("JOIN users ON users.user_id = event_feedbacks.feedback_user_id").
		Where("event_feedbacks.feedback_event_id = ?", eventID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var rows []dto.FeedbackWithUserRow
	if err := base.
		Select("event_feedbacks.*, users.user_name").
		Order("event_feedbacks.feedback_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch feedback")
	}

	resp := dto.ToFeedbackResponseWithUserList(rows)
	return helper.JsonList(c, "Feedback fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

// GET /api/feedback/check/:eventId
// Existence gate so the frontend can hide the form up front; the unique
// index still backs it up server-side.
func (fc *FeedbackController) CheckFeedback(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var count int64
	if err := fc.DB.Model(&model.FeedbackModel{}).
		Where("feedback_event_id = ? AND feedback_user_id = ?", eventID, userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonOK(c, "Feedback status fetched", fiber.Map{"has_feedback": count > 0})
}

// GET /api/feedback/analytics
// Admins aggregate across all events, organizers across their own.
func (fc *FeedbackController) GetFeedbackAnalytics(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := fc.DB.Table("event_feedbacks").
		Joins("JOIN events ON events.event_id = event_feedbacks.feedback_event_id").
		Where("events.event_deleted_at IS NULL")
	if helperAuth.GetUserRoleFromToken(c) != constants.RoleAdmin {
		q = q.Where("events.event_created_by = ?", userID)
	}

	var rows []dto.EventFeedbackSummary
	if err := q.
		Select("events.event_id, events.event_title, COUNT(event_feedbacks.feedback_id) AS feedback_count, AVG(event_feedbacks.feedback_rating) AS average_rating").
		Group("events.event_id, events.event_title").
		Order("feedback_count DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate feedback")
	}

	return helper.JsonOK(c, "Feedback analytics fetched", rows)
}
