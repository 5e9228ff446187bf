package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CommentModel is an event discussion entry. The liker set and the cached
// like counter are kept in lockstep by the like toggle; replies are an
// append-only JSON array (replies are never edited or deleted).
type CommentModel struct {
	CommentID      uuid.UUID `gorm:"column:comment_id;type:uuid;primaryKey" json:"comment_id"`
	CommentEventID uuid.UUID `gorm:"column:comment_event_id;type:uuid;not null;index" json:"comment_event_id"`

	// Author snapshot at write time.
	CommentUserID   uuid.UUID `gorm:"column:comment_user_id;type:uuid;not null" json:"comment_user_id"`
	CommentUserName string    `gorm:"column:comment_user_name;size:50;not null" json:"comment_user_name"`
	CommentUserRole string    `gorm:"column:comment_user_role;size:20;not null" json:"comment_user_role"`

	CommentContent string `gorm:"column:comment_content;type:text;not null" json:"comment_content"`

	CommentLikeCount int            `gorm:"column:comment_like_count;not null;default:0" json:"comment_like_count"`
	CommentLikerIDs  pq.StringArray `gorm:"column:comment_liker_ids;type:text[]" json:"comment_liker_ids"`

	CommentReplies datatypes.JSON `gorm:"column:comment_replies" json:"comment_replies"`

	CommentIsEdited bool `gorm:"column:comment_is_edited;not null;default:false" json:"comment_is_edited"`

	CommentCreatedAt time.Time      `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
	CommentUpdatedAt time.Time      `gorm:"column:comment_updated_at;autoUpdateTime" json:"comment_updated_at"`
	CommentDeletedAt gorm.DeletedAt `gorm:"column:comment_deleted_at;index" json:"comment_deleted_at,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == uuid.Nil {
		m.CommentID = uuid.New()
	}
	return nil
}

// CommentReply is one entry of the comment_replies JSON array.
type CommentReply struct {
	ReplyUserID    uuid.UUID `json:"reply_user_id"`
	ReplyUserName  string    `json:"reply_user_name"`
	ReplyContent   string    `json:"reply_content"`
	ReplyCreatedAt time.Time `json:"reply_created_at"`
}

// HasLiker reports whether the user id is in the liker set.
func (m *CommentModel) HasLiker(userID uuid.UUID) bool {
	id := userID.String()
	for _, v := range m.CommentLikerIDs {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleLike adds or removes the user from the liker set and keeps the
// cached counter in lockstep. Returns true when the user now likes the
// comment.
func (m *CommentModel) ToggleLike(userID uuid.UUID) bool {
	id := userID.String()
	for i, v := range m.CommentLikerIDs {
		if v == id {
			m.CommentLikerIDs = append(m.CommentLikerIDs[:i], m.CommentLikerIDs[i+1:]...)
			if m.CommentLikeCount > 0 {
				m.CommentLikeCount--
			}
			return false
		}
	}
	m.CommentLikerIDs = append(m.CommentLikerIDs, id)
	m.CommentLikeCount++
	return true
}
