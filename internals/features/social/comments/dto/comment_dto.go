package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"campushub_backend/internals/features/social/comments/model"
)

type CommentRequest struct {
	CommentEventID string `json:"comment_event_id" validate:"required,uuid"`
	CommentContent string `json:"comment_content" validate:"required,min=1,max=1000"`
}

type CommentUpdateRequest struct {
	CommentContent string `json:"comment_content" validate:"required,min=1,max=1000"`
}

type CommentReplyRequest struct {
	ReplyContent string `json:"reply_content" validate:"required,min=1,max=1000"`
}

type CommentResponse struct {
	CommentID        uuid.UUID           `json:"comment_id"`
	CommentEventID   uuid.UUID           `json:"comment_event_id"`
	CommentUserID    uuid.UUID           `json:"comment_user_id"`
	CommentUserName  string              `json:"comment_user_name"`
	CommentUserRole  string              `json:"comment_user_role"`
	CommentContent   string              `json:"comment_content"`
	CommentLikeCount int                 `json:"comment_like_count"`
	CommentLikedByMe bool                `json:"comment_liked_by_me"`
	CommentReplies   []model.CommentReply `json:"comment_replies"`
	CommentIsEdited  bool                `json:"comment_is_edited"`
	CommentCreatedAt string              `json:"comment_created_at"`
}

func (r *CommentRequest) ToModel(userID uuid.UUID, userName, userRole string) *model.CommentModel {
	eventID, _ := uuid.Parse(r.CommentEventID)
	return &model.CommentModel{
		CommentEventID:  eventID,
		CommentUserID:   userID,
		CommentUserName: userName,
		CommentUserRole: userRole,
		CommentContent:  r.CommentContent,
	}
}

// viewerID may be uuid.Nil for anonymous readers.
func ToCommentResponse(m *model.CommentModel, viewerID uuid.UUID) *CommentResponse {
	replies := make([]model.CommentReply, 0)
	if len(m.CommentReplies) > 0 {
		_ = sonic.Unmarshal(m.CommentReplies, &replies)
	}
	likedByMe := false
	if viewerID != uuid.Nil {
		likedByMe = m.HasLiker(viewerID)
	}
	return &CommentResponse{
		CommentID:        m.CommentID,
		CommentEventID:   m.CommentEventID,
		CommentUserID:    m.CommentUserID,
		CommentUserName:  m.CommentUserName,
		CommentUserRole:  m.CommentUserRole,
		CommentContent:   m.CommentContent,
		CommentLikeCount: m.CommentLikeCount,
		CommentLikedByMe: likedByMe,
		CommentReplies:   replies,
		CommentIsEdited:  m.CommentIsEdited,
		CommentCreatedAt: m.CommentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCommentResponseList(models []model.CommentModel, viewerID uuid.UUID) []CommentResponse {
	result := make([]CommentResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCommentResponse(&m, viewerID))
	}
	return result
}

// AppendReply decodes the current reply array, appends the new entry, and
// re-encodes it back onto the model.
func AppendReply(m *model.CommentModel, reply model.CommentReply) error {
	replies := make([]model.CommentReply, 0)
	if len(m.CommentReplies) > 0 {
		if err := sonic.Unmarshal(m.CommentReplies, &replies); err != nil {
			return err
		}
	}
	if reply.ReplyCreatedAt.IsZero() {
		reply.ReplyCreatedAt = time.Now()
	}
	replies = append(replies, reply)
	raw, err := sonic.Marshal(replies)
	if err != nil {
		return err
	}
	m.CommentReplies = raw
	return nil
}
