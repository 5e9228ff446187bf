package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestToggleLike(t *testing.T) {
	c := CommentModel{}
	alice := uuid.New()
	bob := uuid.New()

	if c.HasLiker(alice) {
		t.Fatal("empty comment should have no likers")
	}

	if liked := c.ToggleLike(alice); !liked {
		t.Error("first toggle should like")
	}
	if c.CommentLikeCount != 1 || !c.HasLiker(alice) {
		t.Errorf("after like: count=%d hasLiker=%v", c.CommentLikeCount, c.HasLiker(alice))
	}

	if liked := c.ToggleLike(bob); !liked {
		t.Error("second user toggle should like")
	}
	if c.CommentLikeCount != 2 {
		t.Errorf("count after two likes = %d, want 2", c.CommentLikeCount)
	}

	// Double like restores the previous state.
	if liked := c.ToggleLike(alice); liked {
		t.Error("second toggle by same user should unlike")
	}
	if c.CommentLikeCount != 1 || c.HasLiker(alice) {
		t.Errorf("after unlike: count=%d hasLiker=%v", c.CommentLikeCount, c.HasLiker(alice))
	}
	if !c.HasLiker(bob) {
		t.Error("unliking as alice must not remove bob")
	}
}

func TestToggleLikeCountNeverNegative(t *testing.T) {
	c := CommentModel{}
	u := uuid.New()
	c.ToggleLike(u)
	c.ToggleLike(u)
	if c.CommentLikeCount != 0 {
		t.Errorf("count = %d, want 0", c.CommentLikeCount)
	}
	c.ToggleLike(u)
	if c.CommentLikeCount != 1 {
		t.Errorf("count after re-like = %d, want 1", c.CommentLikeCount)
	}
}
