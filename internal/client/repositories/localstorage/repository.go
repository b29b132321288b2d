// Package localstorage persists small string values, such as the session
// token, in the local SQLite database so they survive restarts.
package localstorage

import "context"

// Repository is a string key/value store. Get reports found=false for
// absent keys; Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
