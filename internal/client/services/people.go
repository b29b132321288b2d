package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/common"
)

// People looks users up. It keeps no state.
type People struct {
	client client.Client
	tokens TokenSource
}

func NewPeople(c client.Client, tokens TokenSource) *People {
	return &People{client: c, tokens: tokens}
}

func (p *People) ctx(ctx context.Context) context.Context {
	return client.WithToken(ctx, p.tokens.Token())
}

// Search finds users by name. The query is trimmed and must not be empty.
func (p *People) Search(ctx context.Context, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.NewValidationError("search query is required")
	}
	return p.client.SearchUsers(p.ctx(ctx), query)
}

func (p *People) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	return p.client.Followers(p.ctx(ctx), userID)
}

func (p *People) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	return p.client.Following(p.ctx(ctx), userID)
}
