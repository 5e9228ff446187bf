package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/events/event/dto"
	"campushub_backend/internals/features/events/event/model"
	notifModel "campushub_backend/internals/features/home/notifications/model"
	notifService "campushub_backend/internals/features/home/notifications/service"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /api/events
// Public listing, soonest start date first.
func (ec *EventController) GetAllEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := ec.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := ec.DB.
		Order("event_start_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	resp := dto.ToEventResponseList(events, time.Now())
	return helper.JsonList(c, "Events fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

// GET /api/events/filter
// Category and date range narrow the query; status is derived from the
// event dates, so it is applied after fetching and the page is cut from
// the filtered slice.
func (ec *EventController) FilterEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)

	status := c.Query("status")
	if status != "" && !model.IsValidStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
	}
	category := c.Query("category")
	if category != "" && !model.IsValidCategory(category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category filter")
	}

	q := ec.DB.Model(&model.EventModel{})
	if category != "" {
		q = q.Where("event_category = ?", category)
	}
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		from, err := time.Parse("2006-01-02", dateFrom)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from, expected YYYY-MM-DD")
		}
		q = q.Where("event_start_date >= ?", from)
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		to, err := time.Parse("2006-01-02", dateTo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to, expected YYYY-MM-DD")
		}
		q = q.Where("event_start_date < ?", to.AddDate(0, 0, 1))
	}

	var events []model.EventModel
	if err := q.Order("event_start_date ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	now := time.Now()
	if status != "" {
		filtered := events[:0]
		for _, e := range events {
			if e.Status(now) == status {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	total := int64(len(events))
	start := p.Offset
	if start > len(events) {
		start = len(events)
	}
	end := start + p.Limit
	if end > len(events) {
		end = len(events)
	}
	page := events[start:end]

	resp := dto.ToEventResponseList(page, now)
	return helper.JsonList(c, "Events fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

// GET /api/events/:id
func (ec *EventController) GetEventByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonOK(c, "Event fetched", dto.ToEventResponse(&event, time.Now()))
}

// POST /api/events
// Organizer or admin. The event is pinned to the creator's institution and
// every student of that institution gets an inbox entry.
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	institution := helperAuth.GetInstitutionFromToken(c)
	if institution == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Complete your profile before creating events")
	}

	var input dto.EventRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	event := input.ToModel(institution, userID)
	if event.EventEndDate.Before(event.EventStartDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Event end date must not be before the start date")
	}

	slug, err := helper.EnsureUniqueSlug(ec.DB, "events", "event_slug",
		helper.GenerateSlug(event.EventTitle), "event_institution = ?", institution)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}
	event.EventSlug = slug

	if err := ec.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	ec.broadcastNewEvent(event)

	return helper.JsonCreated(c, "Event created", dto.ToEventResponse(event, time.Now()))
}

func (ec *EventController) broadcastNewEvent(event *model.EventModel) {
	var studentIDs []uuid.UUID
	if err := ec.DB.Model(&userModel.UserModel{}).
		Where("user_institution = ?", event.EventInstitution).
		Where("user_role = ?", constants.RoleStudent).
		Where("user_is_active = ?", true).
		Pluck("user_id", &studentIDs).Error; err != nil {
		return
	}
	msg := fmt.Sprintf("New event at %s: %s", event.EventInstitution, event.EventTitle)
	eventID := event.EventID
	notifService.NotifyMany(ec.DB, studentIDs, notifModel.TypeEvent, msg, &eventID)
}

// PUT /api/events/:id
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if !helperAuth.CanManage(c, event.EventCreatedBy) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event owner or an admin can update this event")
	}

	var input dto.EventUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	input.ApplyTo(&event)
	if event.EventEndDate.Before(event.EventStartDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Event end date must not be before the start date")
	}

	if err := ec.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated", dto.ToEventResponse(&event, time.Now()))
}

// DELETE /api/events/:id
// Soft delete. Registrations, comments and feedback keep their rows; they
// reference the event id, not the live row.
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if !helperAuth.CanManage(c, event.EventCreatedBy) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event owner or an admin can delete this event")
	}

	if err := ec.DB.Delete(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted", nil)
}
