// Package common contains shared constants used across the admin client
// layers: header names, storage keys and well-known routes.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token inside the Authorization header.
	BearerScheme = "Bearer"

	// TokenStorageKey is the durable storage key holding the raw bearer token.
	TokenStorageKey = "token"

	// LoginRoute is where the application navigates after the session expires.
	LoginRoute = "/login"

	// DefaultAPIBaseURL is used when no base URL is configured.
	DefaultAPIBaseURL = "http://localhost:5001/api"

	// SessionExpiredMessage is shown to the user when a request comes back 401.
	SessionExpiredMessage = "Session expired. Please log in again."

	// DefaultAvatarURL is the placeholder picture for users without an image.
	DefaultAvatarURL = "https://picsum.photos/200/300"

	// UnknownUserName is displayed when a user record carries no name.
	UnknownUserName = "Unknown User"
)

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerScheme + " " + token
}
