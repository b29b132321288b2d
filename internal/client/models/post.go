package models

import "github.com/dmitrijs2005/socialnet/internal/timex"

// MaxPostLength is the longest post body accepted by the composer.
const MaxPostLength = 500

// Post is a feed item. Author fields are filled on feed responses and empty on
// profile responses, where the author is the profile owner.
type Post struct {
	ID            int64           `json:"id" validate:"gt=0"`
	AuthorID      int64           `json:"user_id,omitempty" validate:"gte=0"`
	Content       string          `json:"content"`
	ImageURL      string          `json:"image_url,omitempty"`
	LikesCount    int             `json:"likes_count" validate:"gte=0"`
	CommentsCount int             `json:"comments_count" validate:"gte=0"`
	SharesCount   int             `json:"shares_count" validate:"gte=0"`
	CreatedAt     timex.Timestamp `json:"created_at"`
	IsLiked       bool            `json:"is_liked"`

	Username   string `json:"username,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	IsVerified bool   `json:"is_verified,omitempty"`
}

// LikeState is the authoritative like status returned by the server after a
// toggle.
type LikeState struct {
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count" validate:"gte=0"`
}

// NewPost is the composer input.
type NewPost struct {
	Content  string `json:"content" validate:"max=500,required_without=ImageURL"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// Comment is a reply to a post.
type Comment struct {
	ID              int64           `json:"id" validate:"gt=0"`
	PostID          int64           `json:"post_id,omitempty"`
	Content         string          `json:"content"`
	LikesCount      int             `json:"likes_count" validate:"gte=0"`
	CreatedAt       timex.Timestamp `json:"created_at"`
	ParentCommentID *int64          `json:"parent_comment_id,omitempty"`
	UserID          int64           `json:"user_id,omitempty"`
	Username        string          `json:"username,omitempty"`
	FullName        string          `json:"full_name,omitempty"`
	AvatarURL       string          `json:"avatar_url,omitempty"`
}

// NewComment is the comment composer input.
type NewComment struct {
	PostID          int64  `json:"post_id" validate:"gt=0"`
	Content         string `json:"content" validate:"required"`
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`
}

// Page selects a window of the feed. Zero values mean the server defaults.
type Page struct {
	Number int
	Limit  int
}
