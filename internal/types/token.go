package types

import (
	"github.com/google/uuid"
)

// TokenClaims carries the identity embedded in a verified session token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
