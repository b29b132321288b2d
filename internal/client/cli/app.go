package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/socialnet/internal/client/services"
	"github.com/dmitrijs2005/socialnet/internal/common"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

// view names the list that like <id> applies to.
type view string

const (
	viewFeed    view = "feed"
	viewProfile view = "profile"
)

type App struct {
	session  services.SessionStore
	feed     *services.FeedLoader
	profile  *services.ProfileLoader
	comments *services.CommentsLoader
	people   *services.People
	uploader *services.Uploader

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	view view
}

// NewApp wires the services over api and storage. Commands read from in
// and write prompts to out.
func NewApp(api client.Client, storage localstorage.Repository, log logging.Logger, in io.Reader, out io.Writer) *App {
	session := services.NewSessionStore(api, storage, log)

	a := &App{
		session:  session,
		feed:     services.NewFeedLoader(api, session, log),
		profile:  services.NewProfileLoader(api, session, log),
		comments: services.NewCommentsLoader(api, session, log),
		people:   services.NewPeople(api, session),
		uploader: services.NewUploader(api, session, log),
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		view:     viewFeed,
	}

	session.Subscribe(func(s services.Session) {
		userID := int64(0)
		if s.User != nil {
			userID = s.User.ID
		}
		log.Debug(context.Background(), "session changed", "authenticated", s.Authenticated(), "user_id", userID)
	})
	a.uploader.Subscribe(func(_, to services.UploadState) {
		switch to {
		case services.UploadEncoding, services.UploadUploading:
			printlnFn(fmt.Sprintf("upload: %s...", to))
		}
	})

	return a
}

// Run revalidates a saved session, then serves commands until the input
// ends or the user exits. Loaders are closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to SocialNet (type 'help' for commands)")

	if err := a.session.Revalidate(ctx); err != nil {
		printlnFn(revalidateMessage(err))
	} else if s := a.session.Session(); s.User != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", s.User.DisplayName()))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func revalidateMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrLocalStorage):
		return "Could not read the saved session (" + common.UserMessage(err) + "), please log in."
	case errors.Is(err, common.ErrUnauthorized):
		return "Your saved session has expired, please log in again."
	default:
		return "Could not check the saved session (" + common.UserMessage(err) + "), please log in again."
	}
}

// Close cancels whatever the loaders still have in flight.
func (a *App) Close() {
	a.feed.Close()
	a.profile.Close()
	a.comments.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	s := a.session.Session()
	switch {
	case s.User != nil:
		return "@" + s.User.Username
	case s.Authenticated():
		return "..."
	default:
		return "guest"
	}
}
