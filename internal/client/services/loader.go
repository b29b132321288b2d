package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/common"
)

// loader is the lifetime shared by the view loaders. Operations run one at a
// time in call order; Close cancels the running one, and results arriving
// after Close are dropped without touching state.
type loader struct {
	ctx    context.Context
	cancel context.CancelFunc

	op      sync.Mutex
	mu      sync.RWMutex // guards the embedding loader's state
	pending atomic.Int32

	tokens TokenSource
}

func newLoader(tokens TokenSource) loader {
	ctx, cancel := context.WithCancel(context.Background())
	return loader{ctx: ctx, cancel: cancel, tokens: tokens}
}

// run executes fn under the operation lock with a context that is cancelled
// either by the caller or by Close.
func (l *loader) run(ctx context.Context, fn func(ctx context.Context) error) error {
	l.op.Lock()
	defer l.op.Unlock()

	if l.ctx.Err() != nil {
		return common.ErrClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	defer func() {
		stop()
		cancel()
	}()

	l.pending.Add(1)
	defer l.pending.Add(-1)

	ctx = client.WithToken(ctx, l.tokens.Token())
	err := fn(ctx)
	if err != nil && l.ctx.Err() != nil {
		return common.ErrClosed
	}
	return err
}

// commit applies a state change unless the loader has been closed.
func (l *loader) commit(apply func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ctx.Err() != nil {
		return common.ErrClosed
	}
	apply()
	return nil
}

func (l *loader) requireSession() error {
	if l.tokens.Token() == "" {
		return common.ErrNotAuthenticated
	}
	return nil
}

// Loading reports whether an operation is in flight.
func (l *loader) Loading() bool {
	return l.pending.Load() > 0
}

// Close cancels in-flight requests. Later operations fail with
// common.ErrClosed.
func (l *loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel()
}

// applyLike writes the acknowledged like state into the post with the given
// id and reports whether one was found.
func applyLike(posts []models.Post, postID int64, st models.LikeState) bool {
	for i := range posts {
		if posts[i].ID == postID {
			posts[i].IsLiked = st.IsLiked
			posts[i].LikesCount = st.LikesCount
			return true
		}
	}
	return false
}

func copyPosts(posts []models.Post) []models.Post {
	if posts == nil {
		return nil
	}
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
