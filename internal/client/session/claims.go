package session

import (
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// claims covers the identity fields the backend is known to put in its
// tokens.
type claims struct {
	jwt.RegisteredClaims
	UserID   models.ID `json:"userId"`
	ID       models.ID `json:"id"`
	Role     string    `json:"role"`
	UserType string    `json:"userType"`
}

// parseClaims decodes the token without verifying it; the client never holds
// the signing key.
func parseClaims(token string) (*claims, error) {
	c := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *claims) userID() models.ID {
	switch {
	case c.UserID != "":
		return c.UserID
	case c.ID != "":
		return c.ID
	default:
		return models.ID(c.Subject)
	}
}

func (c *claims) role() models.Role {
	for _, s := range []string{c.Role, c.UserType} {
		if r, err := models.ParseRole(s); err == nil {
			return r
		}
	}
	return ""
}
