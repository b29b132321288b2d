package models

import "github.com/dmitrijs2005/socialnet/internal/timex"

// User is the server-owned identity record. The client only ever holds a
// read-only copy.
type User struct {
	ID             int64           `json:"id" validate:"gt=0"`
	Username       string          `json:"username"`
	Email          string          `json:"email,omitempty"`
	FullName       string          `json:"full_name"`
	AvatarURL      string          `json:"avatar_url,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	IsVerified     bool            `json:"is_verified"`
	FollowersCount int             `json:"followers_count" validate:"gte=0"`
	FollowingCount int             `json:"following_count" validate:"gte=0"`
	PostsCount     int             `json:"posts_count" validate:"gte=0"`
	CreatedAt      timex.Timestamp `json:"created_at"`
}

// DisplayName returns the full name, falling back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Profile is a User as seen by the current viewer.
type Profile struct {
	User
	IsFollowing bool `json:"is_following"`
}

// UserSummary is the short user record returned by search and
// follower/following listings.
type UserSummary struct {
	ID          int64           `json:"id" validate:"gt=0"`
	Username    string          `json:"username"`
	FullName    string          `json:"full_name"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
	IsVerified  bool            `json:"is_verified"`
	FollowedAt  timex.Timestamp `json:"followed_at"`
	IsFollowing bool            `json:"is_following"`
}

// FollowState is the server acknowledgement of a follow or unfollow.
type FollowState struct {
	IsFollowing bool   `json:"is_following"`
	Message     string `json:"message"`
}
