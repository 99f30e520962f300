package common

// SessionCookieName is the cookie that carries the session token between the
// browser and the operator web app.
const SessionCookieName = "token"

// AuthorizationHeaderName carries the bearer token on API calls.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "

// TokenMetadataKey is the key under which the CLI keeps its session token.
const TokenMetadataKey = "token"
