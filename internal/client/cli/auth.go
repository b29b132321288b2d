package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/socialnet/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for the registration form and creates an account. The
// form is validated locally before anything is sent.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if req.Password, err = readSecret("Password", a.out); err != nil {
		return err
	}
	if req.ConfirmPassword, err = readSecret("Confirm password", a.out); err != nil {
		return err
	}

	if err := a.session.Register(ctx, req); err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s! Your account is ready.", req.Username))
	return nil
}

// Login prompts for email and password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := readSecret("Password", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	if s := a.session.Session(); s.User != nil {
		printlnFn(fmt.Sprintf("Logged in as %s", s.User.DisplayName()))
	}
	return nil
}

// Logout always succeeds locally, even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.view = viewFeed
	printlnFn("Logged out")
	return nil
}

// Forget wipes the saved session and everything else stored locally,
// without contacting the server.
func (a *App) Forget(ctx context.Context) error {
	a.view = viewFeed
	if err := a.session.ClearLocalData(ctx); err != nil {
		return err
	}
	printlnFn("Local data wiped")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session.Session()
	switch {
	case s.User != nil:
		printUser(*s.User)
	case s.Authenticated():
		printlnFn("Session is being validated")
	default:
		printlnFn("Not logged in")
	}
	return nil
}
