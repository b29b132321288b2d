// Package client contains the client-side building blocks for SocialNet.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface) for the SocialNet backend:
//     auth, posts, social and upload services.
//  2. A JSON-over-HTTP implementation (see HTTPClient). The session token is
//     carried in the request context (WithToken) and sent as X-Auth-Token;
//     every request gets an X-Request-ID and is counted by the metrics
//     package.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Input is validated before any request is sent and rejected with a
// *common.ValidationError. Transport failures wrap common.ErrUnavailable.
// Non-2xx responses become *common.ResponseError carrying the server's error
// text, or a per-operation fallback, and unwrap to common.ErrUnauthorized or
// common.ErrNotFound where the status says so. A 2xx body that fails to decode
// or validate wraps common.ErrInvalidResponse.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; a cancelled call returns an error
// matching context.Canceled rather than ErrUnavailable.
package client
