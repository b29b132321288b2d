package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/client/services"
	"github.com/dmitrijs2005/socialnet/internal/common"
)

// Feed shows the feed; an optional argument selects the page.
func (a *App) Feed(ctx context.Context, args []string) error {
	page := a.feed.Page()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return common.NewValidationError("usage: feed [page]")
		}
		page.Number = n
	}

	if err := a.feed.LoadPage(ctx, page); err != nil {
		return err
	}

	a.view = viewFeed
	printlnFn(fmt.Sprintf("-- feed, page %d --", a.feed.Page().Number))
	printPosts(a.feed.Posts())
	return nil
}

// Post composes a post: text, then an optional image file that is uploaded
// first.
func (a *App) Post(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}

	content, err := getMultiline(a.reader, fmt.Sprintf("What's new? (up to %d characters)", models.MaxPostLength), a.out)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Image file (empty for none)", a.out)
	if err != nil {
		return err
	}

	if err := services.CheckPost(content, path != ""); err != nil {
		return err
	}

	imageURL := ""
	if path != "" {
		if imageURL, err = a.uploadFile(ctx, path); err != nil {
			return err
		}
	}

	post, err := a.feed.CreatePost(ctx, content, imageURL)
	if err != nil {
		return err
	}

	a.view = viewFeed
	printlnFn(fmt.Sprintf("Published post %d", post.ID))
	printPosts(a.feed.Posts())
	return nil
}

// Like toggles the like on a post of the list shown last.
func (a *App) Like(ctx context.Context, args []string) error {
	id, err := parseID(args, "like <post id>")
	if err != nil {
		return err
	}

	var st models.LikeState
	if a.view == viewProfile {
		st, err = a.profile.ToggleLike(ctx, id)
	} else {
		st, err = a.feed.ToggleLike(ctx, id)
	}
	if err != nil {
		return err
	}

	verb := "Unliked"
	if st.IsLiked {
		verb = "Liked"
	}
	printlnFn(fmt.Sprintf("%s post %d (%d likes)", verb, id, st.LikesCount))
	return nil
}

func (a *App) ShowComments(ctx context.Context, args []string) error {
	id, err := parseID(args, "comments <post id>")
	if err != nil {
		return err
	}
	if err := a.comments.Load(ctx, id); err != nil {
		return err
	}
	printComments(a.comments.Comments())
	return nil
}

// Comment adds a comment to a post. A parent comment id may be given to
// reply in a thread.
func (a *App) Comment(ctx context.Context, args []string) error {
	id, err := parseID(args, "comment <post id>")
	if err != nil {
		return err
	}
	if !a.session.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}

	content, err := getSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	parentRaw, err := getSimpleText(a.reader, "Reply to comment id (empty for none)", a.out)
	if err != nil {
		return err
	}

	var parent *int64
	if parentRaw != "" {
		pid, err := parseID([]string{parentRaw}, "comment id")
		if err != nil {
			return err
		}
		parent = &pid
	}

	c, err := a.comments.AddComment(ctx, id, content, parent)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Comment %d added", c.ID))
	return nil
}

// Upload sends an image and prints its public URL.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return common.NewValidationError("usage: upload <path>")
	}
	url, err := a.uploadFile(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn("Uploaded: " + url)
	return nil
}

func (a *App) uploadFile(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := services.CheckImageSize(info.Size()); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return a.uploader.Upload(ctx, services.ImageFile{Name: filepath.Base(path), Data: data})
}
