// Package common contains shared constants, sentinel errors and small helpers
// used across SocialNet client components.
package common

// AuthTokenHeaderName is the HTTP header that carries the session token on
// authenticated requests.
const AuthTokenHeaderName = "X-Auth-Token"

// RequestIDHeaderName is attached to every outbound request so backend logs
// can be correlated with client logs.
const RequestIDHeaderName = "X-Request-ID"

// SessionTokenKey is the well-known local storage key of the persisted token.
const SessionTokenKey = "sessionToken"
