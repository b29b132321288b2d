package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

// CommentsLoader keeps the comment thread of one post.
type CommentsLoader struct {
	loader

	client client.Client
	log    logging.Logger

	postID   int64
	comments []models.Comment
}

func NewCommentsLoader(c client.Client, tokens TokenSource, log logging.Logger) *CommentsLoader {
	return &CommentsLoader{
		loader: newLoader(tokens),
		client: c,
		log:    log.With("component", "comments"),
	}
}

// Load fetches the comments of postID.
func (c *CommentsLoader) Load(ctx context.Context, postID int64) error {
	return c.run(ctx, func(ctx context.Context) error {
		comments, err := c.client.Comments(ctx, postID)
		if err != nil {
			c.log.Warn(ctx, "comments load failed", "post_id", postID, "error", err)
			return err
		}
		return c.commit(func() {
			c.postID = postID
			c.comments = comments
		})
	})
}

// Comments returns a copy of the loaded thread.
func (c *CommentsLoader) Comments() []models.Comment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Comment, len(c.comments))
	copy(out, c.comments)
	return out
}

// AddComment posts a comment, optionally as a reply to parentID. The
// server's copy is appended when the thread of postID is loaded.
func (c *CommentsLoader) AddComment(ctx context.Context, postID int64, content string, parentID *int64) (*models.Comment, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	nc := models.NewComment{PostID: postID, Content: strings.TrimSpace(content), ParentCommentID: parentID}
	if err := models.Validate(nc); err != nil {
		return nil, err
	}

	var added *models.Comment
	err := c.run(ctx, func(ctx context.Context) error {
		res, err := c.client.AddComment(ctx, nc)
		if err != nil {
			c.log.Warn(ctx, "add comment failed", "post_id", postID, "error", err)
			return err
		}
		added = res
		return c.commit(func() {
			if c.postID == postID {
				c.comments = append(c.comments, *res)
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}
