package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialnet/internal/common"
)

func (a *App) ShowProfile(ctx context.Context, args []string) error {
	id, err := parseID(args, "profile <user id>")
	if err != nil {
		return err
	}
	if err := a.profile.Load(ctx, id); err != nil {
		return err
	}

	a.view = viewProfile
	p := a.profile.Profile()
	printUser(p.User)
	if p.IsFollowing {
		printlnFn("  you follow this user")
	}
	printPosts(a.profile.Posts())
	return nil
}

// Follow toggles following the profile shown last.
func (a *App) Follow(ctx context.Context) error {
	st, err := a.profile.ToggleFollow(ctx)
	if err != nil {
		return err
	}

	p := a.profile.Profile()
	msg := st.Message
	if msg == "" {
		msg = "Unfollowed"
		if st.IsFollowing {
			msg = "Following"
		}
	}
	printlnFn(fmt.Sprintf("%s @%s (%d followers)", msg, p.Username, p.FollowersCount))
	return nil
}

func (a *App) Followers(ctx context.Context, args []string) error {
	id, err := parseID(args, "followers <user id>")
	if err != nil {
		return err
	}
	users, err := a.people.Followers(ctx, id)
	if err != nil {
		return err
	}
	printUsers(users)
	return nil
}

func (a *App) Following(ctx context.Context, args []string) error {
	id, err := parseID(args, "following <user id>")
	if err != nil {
		return err
	}
	users, err := a.people.Following(ctx, id)
	if err != nil {
		return err
	}
	printUsers(users)
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return common.NewValidationError("usage: search <query>")
	}
	users, err := a.people.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printUsers(users)
	return nil
}
