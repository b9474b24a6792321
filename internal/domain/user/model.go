package user

import "github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID       fantasy.UserID
	Username     string
	IsSuperAdmin bool
}
