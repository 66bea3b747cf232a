package common

// AuthorizationHeaderName is the HTTP header carrying the access token on
// protected requests. The raw token is sent without a scheme prefix.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is tolerated in front of the token for clients that always
// send a scheme.
const BearerPrefix = "Bearer "
