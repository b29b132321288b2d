package client

import (
	"context"

	"github.com/dmitrijs2005/socialnet/internal/client/models"
)

// Client is the typed contract of the SocialNet backend. Calls that need a
// session read the token from the context (see WithToken).
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error

	Feed(ctx context.Context, page models.Page) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.NewPost) (*models.Post, error)
	ToggleLike(ctx context.Context, postID int64) (*models.LikeState, error)
	Comments(ctx context.Context, postID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, comment models.NewComment) (*models.Comment, error)

	Profile(ctx context.Context, userID int64) (*models.Profile, []models.Post, error)
	Follow(ctx context.Context, userID int64) (*models.FollowState, error)
	Unfollow(ctx context.Context, userID int64) (*models.FollowState, error)
	Followers(ctx context.Context, userID int64) ([]models.UserSummary, error)
	Following(ctx context.Context, userID int64) ([]models.UserSummary, error)
	SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error)

	Upload(ctx context.Context, req models.UploadRequest) (string, error)
}
