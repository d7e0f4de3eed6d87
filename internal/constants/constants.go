package constants

import "time"

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6

	MinProjectNameLength = 3
	MaxProjectNameLength = 100

	MinTaskTitleLength = 3
	MaxTaskTitleLength = 200
)

// TokenTTL is the fixed validity window of issued session tokens.
const TokenTTL = 7 * 24 * time.Hour

// ContextKeyActor is the gin context key holding the authenticated actor.
const ContextKeyActor = "actor"
