package middleware

import (
	"strings"

	"github.com/clinicproject/vetclinic-backend/internal/config"
	"github.com/clinicproject/vetclinic-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenKey = "user"

// OptionalJWT verifies a bearer token when one is sent and leaves it in the
// request locals. Requests without an Authorization header pass through;
// nothing here rejects an anonymous caller.
func OptionalJWT(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ContextKey: tokenKey,
		Filter: func(c *fiber.Ctx) bool {
			return strings.TrimSpace(c.Get(fiber.HeaderAuthorization)) == ""
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// ActorID names who performed a change. An explicit id from the request
// wins; otherwise the subject of a verified token is used. It is "" for
// anonymous calls.
func ActorID(c *fiber.Ctx, explicit string) string {
	if id := strings.TrimSpace(explicit); id != "" {
		return id
	}
	token, ok := c.Locals(tokenKey).(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
