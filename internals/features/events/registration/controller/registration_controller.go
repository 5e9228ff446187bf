package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	eventModel "campushub_backend/internals/features/events/event/model"
	"campushub_backend/internals/features/events/registration/dto"
	"campushub_backend/internals/features/events/registration/model"
	notifModel "campushub_backend/internals/features/home/notifications/model"
	notifService "campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// POST /api/registrations
// Capacity is not checked here; organizers see the count against the
// capacity and decide through the approval step.
func (rc *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var input dto.RegistrationRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if input.EventID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id is required")
	}

	var event eventModel.EventModel
	if err := rc.DB.Where("event_id = ?", input.EventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	reg := &model.RegistrationModel{
		RegistrationEventID:  event.EventID,
		RegistrationUserID:   userID,
		RegistrationUserName: helperAuth.GetUserNameFromToken(c),
	}
	if err := rc.DB.Create(reg).Error; err != nil {
		if isDuplicateError(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You are already registered for this event")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration")
	}

	msg := fmt.Sprintf("%s applied to %s", reg.RegistrationUserName, event.EventTitle)
	eventID := event.EventID
	notifService.Notify(rc.DB, event.EventCreatedBy, notifModel.TypeRegistration, msg, &eventID)

	return helper.JsonCreated(c, "Registration submitted", dto.ToRegistrationResponse(reg))
}

// GET /api/registrations/my
func (rc *RegistrationController) GetMyRegistrations(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 10, 50)

	base := rc.DB.Table("event_registrations").
		Joins("JOIN events ON events.event_id = event_registrations.registration_event_id").
		Where("event_registrations.registration_user_id = ?", userID).
		Where("events.event_deleted_at IS NULL").
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var rows []dto.RegistrationWithEventRow
	if err := base.
		Select("event_registrations.*, events.event_title, events.event_start_date, events.event_end_date").
		Order("event_registrations.registration_applied_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	resp := dto.ToRegistrationResponseWithEventList(rows)
	return helper.JsonList(c, "Registrations fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

// GET /api/registrations/all
// Organizers see registrations to their own events, admins see everything.
func (rc *RegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 10, 50)

	base := rc.DB.Table("event_registrations").
		Joins("JOIN events ON events.event_id = event_registrations.registration_event_id").
		Where("events.event_deleted_at IS NULL")
	if helperAuth.GetUserRoleFromToken(c) != constants.RoleAdmin {
		base = base.Where("events.event_created_by = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		if !model.IsValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		base = base.Where("event_registrations.registration_status = ?", status)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var rows []dto.RegistrationWithEventRow
	if err := base.
		Select("event_registrations.*, events.event_title, events.event_start_date, events.event_end_date").
		Order("event_registrations.registration_applied_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	resp := dto.ToRegistrationResponseWithEventList(rows)
	return helper.JsonList(c, "Registrations fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

// PUT /api/registrations/:id/status
// Decisions are last-write-wins: a registration can be re-decided and the
// reviewer stamp simply moves to the latest decision.
func (rc *RegistrationController) UpdateRegistrationStatus(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var input dto.RegistrationStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var reg model.RegistrationModel
	if err := rc.DB.Where("registration_id = ?", regID).First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var event eventModel.EventModel
	if err := rc.DB.Where("event_id = ?", reg.RegistrationEventID).First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if !helperAuth.CanManage(c, event.EventCreatedBy) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event owner or an admin can decide registrations")
	}

	previous := reg.RegistrationStatus
	now := time.Now()
	reviewer := helperAuth.GetUserNameFromToken(c)
	reg.RegistrationStatus = input.Status
	reg.RegistrationReviewedBy = &reviewer
	reg.RegistrationReviewedAt = &now

	if err := rc.DB.Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
	}

	// TODO: move the status save and the counter update into one transaction
	// so a failed counter write cannot leave the count out of step.
	if previous != input.Status {
		switch {
		case input.Status == model.StatusApproved:
			rc.DB.Model(&eventModel.EventModel{}).
				Where("event_id = ?", event.EventID).
				Update("event_participant_count", gorm.Expr("event_participant_count + 1"))
		case previous == model.StatusApproved:
			rc.DB.Model(&eventModel.EventModel{}).
				Where("event_id = ? AND event_participant_count > 0", event.EventID).
				Update("event_participant_count", gorm.Expr("event_participant_count - 1"))
		}
	}

	notifType := notifModel.TypeApproval
	verb := "approved"
	if input.Status == model.StatusRejected {
		notifType = notifModel.TypeRejection
		verb = "rejected"
	}
	msg := fmt.Sprintf("Your registration for %s was %s", event.EventTitle, verb)
	eventID := event.EventID
	notifService.Notify(rc.DB, reg.RegistrationUserID, notifType, msg, &eventID)

	return helper.JsonUpdated(c, "Registration "+verb, dto.ToRegistrationResponse(&reg))
}
