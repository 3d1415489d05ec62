package constants

import "time"

// Context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// Validation bounds
const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 100
	MinPasswordLength    = 6
	MaxPasswordLength    = 100
	MinTitleLength       = 3
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// DefaultTokenTTL is how long an issued bearer token stays valid.
const DefaultTokenTTL = 24 * time.Hour
