package fiber

import (
	"strings"

	"github.com/arya-analytics/wall/pkg/token"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const subjectKey = "subject"

// SetSubject stores the authenticated entity's key on the request.
func SetSubject(c *fiber.Ctx, key uuid.UUID) { c.Locals(subjectKey, key) }

// GetSubject retrieves the key of the entity that issued the request.
// Reports false when no authenticated subject is set.
func GetSubject(c *fiber.Ctx) (uuid.UUID, bool) {
	key, ok := c.Locals(subjectKey).(uuid.UUID)
	return key, ok
}

// TokenMiddleware parses a token from the request and checks if it is valid.
// If the token is valid, it sets the entity's key in the request context.
func TokenMiddleware(svc *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tk, err := parseToken(c)
		if err != nil {
			c.Status(fiber.StatusUnauthorized)
			return c.JSON(fiber.Map{"error": err.Error()})
		}
		key, err := svc.Validate(tk)
		if err != nil {
			c.Status(fiber.StatusUnauthorized)
			return c.JSON(fiber.Map{"error": err.Error()})
		}
		SetSubject(c, key)
		return c.Next()
	}
}

type tokenParser func(c *fiber.Ctx) (token string, found bool, err error)

const (
	tokenCookieName               = "Token"
	headerTokenPrefix             = "Bearer "
	invalidAuthorizationHeaderMsg = `
	invalid authorization header. Format should be

		'Authorization: Bearer <Token>'
	`
)

var tokenParsers = []tokenParser{
	tryParseCookieToken,
	tryParseHeaderToken,
}

func parseToken(c *fiber.Ctx) (string, error) {
	for _, tp := range tokenParsers {
		if tk, found, err := tp(c); found {
			return tk, err
		}
	}
	return "", errors.New("invalid token")
}

func tryParseCookieToken(c *fiber.Ctx) (string, bool, error) {
	tk := c.Cookies(tokenCookieName)
	return tk, len(tk) != 0, nil
}

func tryParseHeaderToken(c *fiber.Ctx) (string, bool, error) {
	authHeader := c.Get("Authorization")
	if len(authHeader) == 0 {
		return "", false, nil
	}
	splitToken := strings.Split(authHeader, headerTokenPrefix)
	if len(splitToken) != 2 {
		return "", false, errors.New(invalidAuthorizationHeaderMsg)
	}
	return splitToken[1], true, nil
}
