package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/socialnet/internal/client/config"
	"github.com/dmitrijs2005/socialnet/internal/client/metrics"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/common"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 4 << 20

type HTTPClient struct {
	endpoints config.Endpoints
	http      *http.Client
	log       logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given service endpoints. A zero
// timeout disables the per-request deadline.
func NewHTTPClient(endpoints config.Endpoints, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		endpoints: endpoints,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &headerTransport{next: metrics.InstrumentRoundTripper(http.DefaultTransport)},
		},
		log: log,
	}
}

// request describes one API call. Fallback is the message reported when a
// non-2xx response carries no error text of its own.
type request struct {
	method   string
	endpoint string
	query    url.Values
	body     any
	fallback string
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	u, err := url.Parse(r.endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", r.endpoint, err)
	}
	if len(r.query) > 0 {
		q := u.Query()
		for k, vs := range r.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.log.Warn(ctx, "api request failed", "method", r.method, "url", u.String(), "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", common.ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api request", "method", r.method, "url", u.String(),
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := r.fallback
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		return &common.ResponseError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}
	if err := models.Validate(out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}
	return nil
}

func action(name string, kv ...string) url.Values {
	q := url.Values{"action": {name}}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	if err := models.Validate(creds); err != nil {
		return nil, err
	}

	var res models.AuthResult
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Auth,
		query:    action("login"),
		body:     creds,
		fallback: "login failed",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.RegisterRequest) (*models.AuthResult, error) {
	if err := models.Validate(reg); err != nil {
		return nil, err
	}

	var res models.AuthResult
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Auth,
		query:    action("register"),
		body:     reg,
		fallback: "registration failed",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type userEnvelope struct {
	User models.User `json:"user"`
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var res userEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Auth,
		query:    action("me"),
		fallback: "session expired",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Auth,
		query:    action("logout"),
		fallback: "logout failed",
	}, nil)
}

type postsEnvelope struct {
	Posts []models.Post `json:"posts" validate:"dive"`
}

func (c *HTTPClient) Feed(ctx context.Context, page models.Page) ([]models.Post, error) {
	q := url.Values{}
	if page.Number > 0 {
		q.Set("page", strconv.Itoa(page.Number))
	}
	if page.Limit > 0 {
		q.Set("limit", strconv.Itoa(page.Limit))
	}

	var res postsEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Posts,
		query:    q,
		fallback: "failed to load posts",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Posts, nil
}

type postEnvelope struct {
	Post models.Post `json:"post"`
}

func (c *HTTPClient) CreatePost(ctx context.Context, post models.NewPost) (*models.Post, error) {
	if err := models.Validate(post); err != nil {
		return nil, err
	}

	var res postEnvelope
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Posts,
		query:    action("create"),
		body:     post,
		fallback: "failed to create post",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Post, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, postID int64) (*models.LikeState, error) {
	var res models.LikeState
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Posts,
		query:    action("like"),
		body:     map[string]int64{"post_id": postID},
		fallback: "failed to like post",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type commentsEnvelope struct {
	Comments []models.Comment `json:"comments" validate:"dive"`
}

func (c *HTTPClient) Comments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var res commentsEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Posts,
		query:    action("comments", "post_id", id(postID)),
		fallback: "failed to load comments",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Comments, nil
}

type commentEnvelope struct {
	Comment models.Comment `json:"comment"`
}

func (c *HTTPClient) AddComment(ctx context.Context, comment models.NewComment) (*models.Comment, error) {
	if err := models.Validate(comment); err != nil {
		return nil, err
	}

	var res commentEnvelope
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Posts,
		query:    action("comment"),
		body:     comment,
		fallback: "failed to add comment",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Comment, nil
}

type profileEnvelope struct {
	User  models.Profile `json:"user"`
	Posts []models.Post  `json:"posts" validate:"dive"`
}

func (c *HTTPClient) Profile(ctx context.Context, userID int64) (*models.Profile, []models.Post, error) {
	var res profileEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Social,
		query:    action("profile", "user_id", id(userID)),
		fallback: "failed to load profile",
	}, &res)
	if err != nil {
		return nil, nil, err
	}
	return &res.User, res.Posts, nil
}

func (c *HTTPClient) follow(ctx context.Context, name string, userID int64) (*models.FollowState, error) {
	var res models.FollowState
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Social,
		query:    action(name),
		body:     map[string]int64{"user_id": userID},
		fallback: name + " failed",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Follow(ctx context.Context, userID int64) (*models.FollowState, error) {
	return c.follow(ctx, "follow", userID)
}

func (c *HTTPClient) Unfollow(ctx context.Context, userID int64) (*models.FollowState, error) {
	return c.follow(ctx, "unfollow", userID)
}

type usersEnvelope struct {
	Users     []models.UserSummary `json:"users" validate:"dive"`
	Followers []models.UserSummary `json:"followers" validate:"dive"`
	Following []models.UserSummary `json:"following" validate:"dive"`
}

func (c *HTTPClient) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	var res usersEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Social,
		query:    action("followers", "user_id", id(userID)),
		fallback: "failed to load followers",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Followers, nil
}

func (c *HTTPClient) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	var res usersEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Social,
		query:    action("following", "user_id", id(userID)),
		fallback: "failed to load following",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Following, nil
}

func (c *HTTPClient) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	if query == "" {
		return nil, common.NewValidationError("search query is required")
	}

	var res usersEnvelope
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: c.endpoints.Social,
		query:    action("search", "q", query),
		fallback: "search failed",
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Users, nil
}

type uploadEnvelope struct {
	ImageURL string `json:"image_url" validate:"required"`
}

func (c *HTTPClient) Upload(ctx context.Context, up models.UploadRequest) (string, error) {
	if err := models.Validate(up); err != nil {
		return "", err
	}

	var res uploadEnvelope
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: c.endpoints.Upload,
		body:     up,
		fallback: "image upload failed",
	}, &res)
	if err != nil {
		return "", err
	}
	return res.ImageURL, nil
}
