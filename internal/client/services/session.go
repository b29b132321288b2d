package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/metrics"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/socialnet/internal/common"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

// Session is a snapshot of the authentication state. A token without a user
// means the persisted token is still being validated.
type Session struct {
	User  *models.User
	Token string
}

// Authenticated reports whether a token is held.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// TokenSource supplies the current session token to loaders.
type TokenSource interface {
	Token() string
}

// SessionStore owns the identity and token of the current user.
//
// Contract:
//   - Login/Register: on success identity and token are set together and the
//     token is persisted; on failure the previous state is kept.
//   - Logout: best-effort server notification, then unconditional local clear.
//   - ClearLocalData: drops the in-memory session and wipes local storage.
//   - Revalidate: checks a persisted token with the server; any failure
//     leaves the session anonymous.
//   - Subscribe: fn is called with a snapshot after every change.
type SessionStore interface {
	TokenSource
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context)
	ClearLocalData(ctx context.Context) error
	Revalidate(ctx context.Context) error
	Session() Session
	IsAuthenticated() bool
	Subscribe(fn func(Session)) (unsubscribe func())
}

type sessionStore struct {
	client  client.Client
	storage localstorage.Repository
	log     logging.Logger

	// op serialises Login, Register, Logout and Revalidate.
	op sync.Mutex

	mu      sync.RWMutex
	state   Session
	subs    map[int]func(Session)
	nextSub int
}

// NewSessionStore returns an anonymous store. Call Revalidate to pick up a
// token saved by an earlier run.
func NewSessionStore(c client.Client, storage localstorage.Repository, log logging.Logger) SessionStore {
	return &sessionStore{
		client:  c,
		storage: storage,
		log:     log.With("component", "session"),
		subs:    make(map[int]func(Session)),
	}
}

func (s *sessionStore) Login(ctx context.Context, email, password string) error {
	s.op.Lock()
	defer s.op.Unlock()

	res, err := s.client.Login(ctx, models.Credentials{Email: email, Password: password})
	if err == nil {
		err = s.establish(ctx, res)
	}
	metrics.ObserveSession("login", err)
	if err != nil {
		s.log.Info(ctx, "login failed", "error", err)
		return err
	}

	s.log.Info(ctx, "logged in", "user_id", res.User.ID)
	return nil
}

func (s *sessionStore) Register(ctx context.Context, req models.RegisterRequest) error {
	s.op.Lock()
	defer s.op.Unlock()

	if err := models.Validate(req); err != nil {
		return err
	}

	res, err := s.client.Register(ctx, req)
	if err == nil {
		err = s.establish(ctx, res)
	}
	metrics.ObserveSession("register", err)
	if err != nil {
		s.log.Info(ctx, "registration failed", "error", err)
		return err
	}

	s.log.Info(ctx, "registered", "user_id", res.User.ID)
	return nil
}

// establish persists the token before publishing the new identity, so a
// storage failure leaves the store untouched.
func (s *sessionStore) establish(ctx context.Context, res *models.AuthResult) error {
	if err := s.storage.Set(ctx, common.SessionTokenKey, res.SessionToken); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	user := res.User
	s.set(Session{User: &user, Token: res.SessionToken})
	return nil
}

func (s *sessionStore) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	if token := s.Token(); token != "" {
		if err := s.client.Logout(client.WithToken(ctx, token)); err != nil {
			s.log.Warn(ctx, "logout notification failed", "error", err)
		}
	}

	if err := s.clearLocalData(ctx); err != nil {
		s.log.Error(ctx, "failed to wipe local data", "error", err)
	}
	metrics.ObserveSession("logout", nil)
}

// ClearLocalData wipes everything cached locally, e.g. on logout. The
// in-memory session is cleared even when storage fails.
func (s *sessionStore) ClearLocalData(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()
	return s.clearLocalData(ctx)
}

func (s *sessionStore) clearLocalData(ctx context.Context) error {
	s.set(Session{})
	if err := s.storage.Clear(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("clear local data: %w", err)
	}
	return nil
}

func (s *sessionStore) Revalidate(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	token, found, err := s.storage.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return fmt.Errorf("load session: %w: %w", common.ErrLocalStorage, err)
	}
	if !found || token == "" {
		return nil
	}

	s.set(Session{Token: token})

	user, err := s.client.Me(client.WithToken(ctx, token))
	metrics.ObserveSession("revalidate", err)
	if err != nil {
		s.log.Warn(ctx, "saved session rejected", "error", err)
		s.set(Session{})
		s.forget(ctx)
		return err
	}

	s.set(Session{User: user, Token: token})
	return nil
}

// forget removes the persisted token. It runs even when ctx is already
// cancelled; failures are logged.
func (s *sessionStore) forget(ctx context.Context) {
	if err := s.storage.Delete(context.WithoutCancel(ctx), common.SessionTokenKey); err != nil {
		s.log.Error(ctx, "failed to remove saved session", "error", err)
	}
}

func (s *sessionStore) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *sessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *sessionStore) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *sessionStore) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *sessionStore) set(next Session) {
	s.mu.Lock()
	s.state = next
	subs := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next.clone())
	}
}
