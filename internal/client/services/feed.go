package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50
)

// FeedLoader keeps the current page of the feed. Likes are never applied
// optimistically: a post changes only when the server acknowledges it.
type FeedLoader struct {
	loader

	client client.Client
	log    logging.Logger

	posts []models.Post
	page  models.Page
}

func NewFeedLoader(c client.Client, tokens TokenSource, log logging.Logger) *FeedLoader {
	return &FeedLoader{
		loader: newLoader(tokens),
		client: c,
		log:    log.With("component", "feed"),
		page:   models.Page{Number: 1, Limit: DefaultPageLimit},
	}
}

// NormalizePage clamps page to what the backend accepts.
func NormalizePage(page models.Page) models.Page {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	return page
}

// LoadPosts reloads the current page. On failure the previous list is kept.
func (f *FeedLoader) LoadPosts(ctx context.Context) error {
	return f.run(ctx, f.load)
}

// LoadPage switches to page and loads it. The page is remembered only when
// the load succeeds.
func (f *FeedLoader) LoadPage(ctx context.Context, page models.Page) error {
	page = NormalizePage(page)
	return f.run(ctx, func(ctx context.Context) error {
		posts, err := f.client.Feed(ctx, page)
		if err != nil {
			f.log.Warn(ctx, "feed load failed", "page", page.Number, "error", err)
			return err
		}
		return f.commit(func() {
			f.posts = posts
			f.page = page
		})
	})
}

func (f *FeedLoader) load(ctx context.Context) error {
	f.mu.RLock()
	page := f.page
	f.mu.RUnlock()

	posts, err := f.client.Feed(ctx, page)
	if err != nil {
		f.log.Warn(ctx, "feed load failed", "page", page.Number, "error", err)
		return err
	}
	return f.commit(func() { f.posts = posts })
}

// Posts returns a copy of the loaded posts.
func (f *FeedLoader) Posts() []models.Post {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return copyPosts(f.posts)
}

// Page returns the page the loaded posts belong to.
func (f *FeedLoader) Page() models.Page {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.page
}

// ToggleLike asks the server to flip the like on postID and applies the
// returned state to the matching post only.
func (f *FeedLoader) ToggleLike(ctx context.Context, postID int64) (models.LikeState, error) {
	if err := f.requireSession(); err != nil {
		return models.LikeState{}, err
	}

	var st models.LikeState
	err := f.run(ctx, func(ctx context.Context) error {
		res, err := f.client.ToggleLike(ctx, postID)
		if err != nil {
			f.log.Warn(ctx, "like failed", "post_id", postID, "error", err)
			return err
		}
		st = *res
		return f.commit(func() { applyLike(f.posts, postID, st) })
	})
	return st, err
}

// CreatePost publishes a post and reloads the feed. Content is trimmed;
// a post needs text or an image.
// pendingImageURL stands in for an image that is not uploaded yet.
const pendingImageURL = "https://pending.invalid/image"

// CheckPost validates a draft locally. withImage reports that an image will
// be attached once uploaded, so the text may be empty.
func CheckPost(content string, withImage bool) error {
	np := models.NewPost{Content: strings.TrimSpace(content)}
	if withImage {
		np.ImageURL = pendingImageURL
	}
	return models.Validate(np)
}

func (f *FeedLoader) CreatePost(ctx context.Context, content, imageURL string) (*models.Post, error) {
	if err := f.requireSession(); err != nil {
		return nil, err
	}

	np := models.NewPost{Content: strings.TrimSpace(content), ImageURL: strings.TrimSpace(imageURL)}
	if err := models.Validate(np); err != nil {
		return nil, err
	}

	var created *models.Post
	err := f.run(ctx, func(ctx context.Context) error {
		post, err := f.client.CreatePost(ctx, np)
		if err != nil {
			f.log.Warn(ctx, "create post failed", "error", err)
			return err
		}
		created = post

		if err := f.load(ctx); err != nil {
			f.log.Warn(ctx, "feed reload after post failed", "post_id", post.ID, "error", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
