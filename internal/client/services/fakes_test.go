package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
)

// ---- fake API client ----

// fakeClient implements client.Client. Unset hooks return zero values.
type fakeClient struct {
	mu     sync.Mutex
	calls  map[string]int
	tokens map[string]string

	LoginFn       func(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	RegisterFn    func(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	MeFn          func(ctx context.Context) (*models.User, error)
	LogoutErr     error
	FeedFn        func(ctx context.Context, page models.Page) ([]models.Post, error)
	CreatePostFn  func(ctx context.Context, post models.NewPost) (*models.Post, error)
	ToggleLikeFn  func(ctx context.Context, postID int64) (*models.LikeState, error)
	CommentsFn    func(ctx context.Context, postID int64) ([]models.Comment, error)
	AddCommentFn  func(ctx context.Context, c models.NewComment) (*models.Comment, error)
	ProfileFn     func(ctx context.Context, userID int64) (*models.Profile, []models.Post, error)
	FollowFn      func(ctx context.Context, userID int64) (*models.FollowState, error)
	UnfollowFn    func(ctx context.Context, userID int64) (*models.FollowState, error)
	UsersRet      []models.UserSummary
	UploadFn      func(ctx context.Context, req models.UploadRequest) (string, error)
	LastSearch    string
	LastUserID    int64
	LastUploadReq models.UploadRequest
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}, tokens: map[string]string{}}
}

func (f *fakeClient) record(ctx context.Context, op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	token, _ := client.TokenFromContext(ctx)
	f.tokens[op] = token
}

func (f *fakeClient) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeClient) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) TokenSeen(op string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[op]
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	f.record(ctx, "login")
	if f.LoginFn == nil {
		return nil, errors.New("login not stubbed")
	}
	return f.LoginFn(ctx, creds)
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	f.record(ctx, "register")
	if f.RegisterFn == nil {
		return nil, errors.New("register not stubbed")
	}
	return f.RegisterFn(ctx, req)
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.record(ctx, "me")
	if f.MeFn == nil {
		return nil, errors.New("me not stubbed")
	}
	return f.MeFn(ctx)
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record(ctx, "logout")
	return f.LogoutErr
}

func (f *fakeClient) Feed(ctx context.Context, page models.Page) ([]models.Post, error) {
	f.record(ctx, "feed")
	if f.FeedFn == nil {
		return nil, nil
	}
	return f.FeedFn(ctx, page)
}

func (f *fakeClient) CreatePost(ctx context.Context, post models.NewPost) (*models.Post, error) {
	f.record(ctx, "create")
	if f.CreatePostFn == nil {
		return &models.Post{ID: 1, Content: post.Content}, nil
	}
	return f.CreatePostFn(ctx, post)
}

func (f *fakeClient) ToggleLike(ctx context.Context, postID int64) (*models.LikeState, error) {
	f.record(ctx, "like")
	if f.ToggleLikeFn == nil {
		return &models.LikeState{}, nil
	}
	return f.ToggleLikeFn(ctx, postID)
}

func (f *fakeClient) Comments(ctx context.Context, postID int64) ([]models.Comment, error) {
	f.record(ctx, "comments")
	if f.CommentsFn == nil {
		return nil, nil
	}
	return f.CommentsFn(ctx, postID)
}

func (f *fakeClient) AddComment(ctx context.Context, c models.NewComment) (*models.Comment, error) {
	f.record(ctx, "comment")
	if f.AddCommentFn == nil {
		return &models.Comment{ID: 1, PostID: c.PostID, Content: c.Content}, nil
	}
	return f.AddCommentFn(ctx, c)
}

func (f *fakeClient) Profile(ctx context.Context, userID int64) (*models.Profile, []models.Post, error) {
	f.record(ctx, "profile")
	if f.ProfileFn == nil {
		return nil, nil, errors.New("profile not stubbed")
	}
	return f.ProfileFn(ctx, userID)
}

func (f *fakeClient) Follow(ctx context.Context, userID int64) (*models.FollowState, error) {
	f.record(ctx, "follow")
	if f.FollowFn == nil {
		return &models.FollowState{IsFollowing: true}, nil
	}
	return f.FollowFn(ctx, userID)
}

func (f *fakeClient) Unfollow(ctx context.Context, userID int64) (*models.FollowState, error) {
	f.record(ctx, "unfollow")
	if f.UnfollowFn == nil {
		return &models.FollowState{IsFollowing: false}, nil
	}
	return f.UnfollowFn(ctx, userID)
}

func (f *fakeClient) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	f.record(ctx, "followers")
	f.LastUserID = userID
	return f.UsersRet, nil
}

func (f *fakeClient) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	f.record(ctx, "following")
	f.LastUserID = userID
	return f.UsersRet, nil
}

func (f *fakeClient) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	f.record(ctx, "search")
	f.LastSearch = query
	return f.UsersRet, nil
}

func (f *fakeClient) Upload(ctx context.Context, req models.UploadRequest) (string, error) {
	f.record(ctx, "upload")
	f.LastUploadReq = req
	if f.UploadFn == nil {
		return "https://cdn.example/img.png", nil
	}
	return f.UploadFn(ctx, req)
}

// ---- fake local storage ----

type memStorage struct {
	mu        sync.Mutex
	data      map[string]string
	SetErr    error
	GetErr    error
	DeleteErr error
	ClearErr  error
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string]string{}}
}

func (m *memStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.data, key)
	return nil
}

func (m *memStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.data = map[string]string{}
	return nil
}

func (m *memStorage) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// ---- token source ----

type staticTokens string

func (s staticTokens) Token() string { return string(s) }
