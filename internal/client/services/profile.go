package services

import (
	"context"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/common"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

// ProfileLoader keeps one user's profile and posts as seen by the viewer.
type ProfileLoader struct {
	loader

	client client.Client
	log    logging.Logger

	profile *models.Profile
	posts   []models.Post
}

func NewProfileLoader(c client.Client, tokens TokenSource, log logging.Logger) *ProfileLoader {
	return &ProfileLoader{
		loader: newLoader(tokens),
		client: c,
		log:    log.With("component", "profile"),
	}
}

// Load fetches the profile of userID. On failure the previously loaded
// profile is kept.
func (p *ProfileLoader) Load(ctx context.Context, userID int64) error {
	return p.run(ctx, func(ctx context.Context) error {
		profile, posts, err := p.client.Profile(ctx, userID)
		if err != nil {
			p.log.Warn(ctx, "profile load failed", "user_id", userID, "error", err)
			return err
		}
		return p.commit(func() {
			p.profile = profile
			p.posts = posts
		})
	})
}

// Profile returns a copy of the loaded profile, or nil.
func (p *ProfileLoader) Profile() *models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.profile == nil {
		return nil
	}
	cp := *p.profile
	return &cp
}

func (p *ProfileLoader) Posts() []models.Post {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return copyPosts(p.posts)
}

// ToggleFollow follows or unfollows the loaded user depending on the current
// flag. The server's flag is applied; the follower counter moves by one only
// when that flag actually changed.
func (p *ProfileLoader) ToggleFollow(ctx context.Context) (models.FollowState, error) {
	if err := p.requireSession(); err != nil {
		return models.FollowState{}, err
	}

	var st models.FollowState
	err := p.run(ctx, func(ctx context.Context) error {
		p.mu.RLock()
		if p.profile == nil {
			p.mu.RUnlock()
			return common.NewValidationError("open a profile first")
		}
		userID, was := p.profile.ID, p.profile.IsFollowing
		p.mu.RUnlock()

		call := p.client.Follow
		if was {
			call = p.client.Unfollow
		}
		res, err := call(ctx, userID)
		if err != nil {
			p.log.Warn(ctx, "follow toggle failed", "user_id", userID, "error", err)
			return err
		}
		st = *res

		return p.commit(func() {
			if p.profile == nil || p.profile.ID != userID {
				return
			}
			p.profile.IsFollowing = st.IsFollowing
			switch {
			case st.IsFollowing && !was:
				p.profile.FollowersCount++
			case !st.IsFollowing && was && p.profile.FollowersCount > 0:
				p.profile.FollowersCount--
			}
		})
	})
	return st, err
}

// ToggleLike behaves like FeedLoader.ToggleLike on the profile's posts.
func (p *ProfileLoader) ToggleLike(ctx context.Context, postID int64) (models.LikeState, error) {
	if err := p.requireSession(); err != nil {
		return models.LikeState{}, err
	}

	var st models.LikeState
	err := p.run(ctx, func(ctx context.Context) error {
		res, err := p.client.ToggleLike(ctx, postID)
		if err != nil {
			p.log.Warn(ctx, "like failed", "post_id", postID, "error", err)
			return err
		}
		st = *res
		return p.commit(func() { applyLike(p.posts, postID, st) })
	})
	return st, err
}
