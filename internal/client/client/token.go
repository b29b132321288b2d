package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/socialnet/internal/common"
)

type tokenKey struct{}

// WithToken returns a copy of ctx that carries the session token. An empty
// token yields a context without one.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the session token attached by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// headerTransport stamps every outgoing request with a request id and, when
// the request context carries one, the session token.
type headerTransport struct {
	next http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	req.Header.Del(common.AuthTokenHeaderName)
	if token, ok := TokenFromContext(req.Context()); ok {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	return t.next.RoundTrip(req)
}
