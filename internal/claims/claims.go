package claims

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ppandov/trail-service/internal/models"
)

// Claims is the identity extracted from a verified access token. It lives for
// one request; the role is taken from the token as-is.
type Claims struct {
	UserID uint
	Email  string
	Role   string
}

func (cl Claims) IsAdmin() bool {
	return cl.Role == models.RoleAdmin
}

// FromContext extracts Claims from the verified JWT that the auth middleware
// stored in Fiber context locals.
func FromContext(c *fiber.Ctx) (Claims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Claims{}, errors.New("invalid token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return Claims{}, errors.New("missing sub claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Claims{}, errors.New("malformed sub claim")
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	if !models.ValidRole(role) {
		return Claims{}, errors.New("unknown role claim")
	}

	return Claims{UserID: uint(userID), Email: email, Role: role}, nil
}
