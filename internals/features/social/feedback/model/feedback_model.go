package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackModel is a post-event rating. One row per (event, user), enforced
// by a unique index; duplicates surface as 409 at the API.
type FeedbackModel struct {
	FeedbackID      uuid.UUID `gorm:"column:feedback_id;type:uuid;primaryKey" json:"feedback_id"`
	FeedbackEventID uuid.UUID `gorm:"column:feedback_event_id;type:uuid;not null;uniqueIndex:ux_feedback_event_user" json:"feedback_event_id"`
	FeedbackUserID  uuid.UUID `gorm:"column:feedback_user_id;type:uuid;not null;uniqueIndex:ux_feedback_event_user" json:"feedback_user_id"`

	FeedbackRating  int    `gorm:"column:feedback_rating;not null" json:"feedback_rating" validate:"required,gte=1,lte=5"`
	FeedbackComment string `gorm:"column:feedback_comment;type:text" json:"feedback_comment"`

	FeedbackCreatedAt time.Time `gorm:"column:feedback_created_at;autoCreateTime" json:"feedback_created_at"`
}

func (FeedbackModel) TableName() string {
	return "event_feedbacks"
}

func (m *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeedbackID == uuid.Nil {
		m.FeedbackID = uuid.New()
	}
	return nil
}
