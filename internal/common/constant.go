package common

// AuthHeaderName is the HTTP header that carries the session token on
// inbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is the optional scheme label in front of the token.
// Matching is exact, including the trailing space.
const BearerPrefix = "Bearer "
