package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "campushub_backend/internals/features/events/event/model"
	"campushub_backend/internals/features/social/comments/dto"
	"campushub_backend/internals/features/social/comments/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// viewerID is uuid.Nil on public routes where nobody is signed in.
func viewerID(c *fiber.Ctx) uuid.UUID {
	id, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// POST /api/comments
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var input dto.CommentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	comment := input.ToModel(userID, helperAuth.GetUserNameFromToken(c), helperAuth.GetUserRoleFromToken(c))

	var event eventModel.EventModel
	if err := cc.DB.Where("event_id = ?", comment.CommentEventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	if err := cc.DB.Create(comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	return helper.JsonCreated(c, "Comment created", dto.ToCommentResponse(comment, userID))
}

// GET /api/comments/event/:eventId
// Public, newest first.
func (cc *CommentController) GetCommentsByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := cc.DB.Model(&model.CommentModel{}).
		Where("comment_event_id = ?", eventID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count comments")
	}

	var comments []model.CommentModel
	if err := base.
		Order("comment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}

	resp := dto.ToCommentResponseList(comments, viewerID(c))
	return helper.JsonList(c, "Comments fetched", resp, helper.BuildPagination(p, total, len(resp)))
}

func (cc *CommentController) findComment(c *fiber.Ctx) (*model.CommentModel, error) {
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}
	var comment model.CommentModel
	if err := cc.DB.Where("comment_id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return &comment, nil
}

// PUT /api/comments/:id
func (cc *CommentController) UpdateComment(c *fiber.Ctx) error {
	comment, errResp := cc.findComment(c)
	if comment == nil {
		return errResp
	}
	if !helperAuth.CanManage(c, comment.CommentUserID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can edit this comment")
	}

	var input dto.CommentUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	comment.CommentContent = input.CommentContent
	comment.CommentIsEdited = true
	if err := cc.DB.Save(comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update comment")
	}

	return helper.JsonUpdated(c, "Comment updated", dto.ToCommentResponse(comment, viewerID(c)))
}

// DELETE /api/comments/:id
func (cc *CommentController) DeleteComment(c *fiber.Ctx) error {
	comment, errResp := cc.findComment(c)
	if comment == nil {
		return errResp
	}
	if !helperAuth.CanManage(c, comment.CommentUserID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this comment")
	}

	if err := cc.DB.Delete(comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	return helper.JsonDeleted(c, "Comment deleted", nil)
}

// POST /api/comments/:id/like
// Toggles: a second like from the same user removes the first.
func (cc *CommentController) ToggleLike(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	comment, errResp := cc.findComment(c)
	if comment == nil {
		return errResp
	}

	liked := comment.ToggleLike(userID)
	if err := cc.DB.Model(comment).Updates(map[string]any{
		"comment_like_count": comment.CommentLikeCount,
		"comment_liker_ids":  comment.CommentLikerIDs,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update like")
	}

	message := "Comment unliked"
	if liked {
		message = "Comment liked"
	}
	return helper.JsonUpdated(c, message, dto.ToCommentResponse(comment, userID))
}

// POST /api/comments/:id/reply
// Replies live inside the parent row and are append only.
func (cc *CommentController) AddReply(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	comment, errResp := cc.findComment(c)
	if comment == nil {
		return errResp
	}

	var input dto.CommentReplyRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	reply := model.CommentReply{
		ReplyUserID:    userID,
		ReplyUserName:  helperAuth.GetUserNameFromToken(c),
		ReplyContent:   input.ReplyContent,
		ReplyCreatedAt: time.Now(),
	}
	if err := dto.AppendReply(comment, reply); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode reply")
	}
	if err := cc.DB.Model(comment).Update("comment_replies", comment.CommentReplies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save reply")
	}

	return helper.JsonCreated(c, "Reply added", dto.ToCommentResponse(comment, userID))
}
