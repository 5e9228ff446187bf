package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/social/feedback/model"
)

type FeedbackRequest struct {
	FeedbackEventID string `json:"feedback_event_id" validate:"required,uuid"`
	FeedbackRating  int    `json:"feedback_rating" validate:"required,gte=1,lte=5"`
	FeedbackComment string `json:"feedback_comment" validate:"max=1000"`
}

type FeedbackResponse struct {
	FeedbackID        uuid.UUID `json:"feedback_id"`
	FeedbackEventID   uuid.UUID `json:"feedback_event_id"`
	FeedbackUserID    uuid.UUID `json:"feedback_user_id"`
	FeedbackUserName  string    `json:"feedback_user_name,omitempty"`
	FeedbackRating    int       `json:"feedback_rating"`
	FeedbackComment   string    `json:"feedback_comment"`
	FeedbackCreatedAt string    `json:"feedback_created_at"`
}

func (r *FeedbackRequest) ToModel(userID uuid.UUID) *model.FeedbackModel {
	eventID, _ := uuid.Parse(r.FeedbackEventID)
	return &model.FeedbackModel{
		FeedbackEventID: eventID,
		FeedbackUserID:  userID,
		FeedbackRating:  r.FeedbackRating,
		FeedbackComment: r.FeedbackComment,
	}
}

func ToFeedbackResponse(m *model.FeedbackModel) *FeedbackResponse {
	return &FeedbackResponse{
		FeedbackID:        m.FeedbackID,
		FeedbackEventID:   m.FeedbackEventID,
		FeedbackUserID:    m.FeedbackUserID,
		FeedbackRating:    m.FeedbackRating,
		FeedbackComment:   m.FeedbackComment,
		FeedbackCreatedAt: m.FeedbackCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FeedbackWithUserRow carries the reviewer name joined from users.
type FeedbackWithUserRow struct {
	model.FeedbackModel
	UserName string `gorm:"column:user_name"`
}

func ToFeedbackResponseWithUser(row *FeedbackWithUserRow) *FeedbackResponse {
	resp := ToFeedbackResponse(&row.FeedbackModel)
	resp.FeedbackUserName = row.UserName
	return resp
}

func ToFeedbackResponseWithUserList(rows []FeedbackWithUserRow) []FeedbackResponse {
	result := make([]FeedbackResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *ToFeedbackResponseWithUser(&rows[i]))
	}
	return result
}

// EventFeedbackSummary is one aggregate line of the analytics endpoint.
type EventFeedbackSummary struct {
	EventID       uuid.UUID `gorm:"column:event_id" json:"event_id"`
	EventTitle    string    `gorm:"column:event_title" json:"event_title"`
	FeedbackCount int64     `gorm:"column:feedback_count" json:"feedback_count"`
	AverageRating float64   `gorm:"column:average_rating" json:"average_rating"`
}
