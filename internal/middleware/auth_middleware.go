package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"eventexplorer/internal/models"
)

const userLocalsKey = "user"

// CredentialChecker resolves basic credentials to a user.
type CredentialChecker interface {
	Authenticate(username, password string) (*models.User, error)
}

// AuthMiddleware authenticates the request's basic credentials, if any, and
// authorizes the request against the ordered rule table. Requests carrying
// invalid credentials are rejected even on public routes.
func AuthMiddleware(checker CredentialChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user *models.User

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader != "" {
			username, password, ok := parseBasicAuth(authHeader)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
			}
			u, err := checker.Authenticate(username, password)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
			}
			user = u
		}

		r := resolveRule(c.Method(), c.Path())
		switch r.access {
		case accessPublic:
			// fall through
		case accessAuthenticated:
			if user == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
			}
		case accessRoles:
			if user == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
			}
			if !r.allows(user.Role) {
				return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Insufficient permissions"))
			}
		}

		if user != nil {
			c.Locals(userLocalsKey, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleware, or
// nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	if !strings.HasPrefix(header, "Basic ") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
