package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/config"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/constants"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

func secret() []byte {
	return []byte(config.Config("JWT_SECRET", "demo-session-secret"))
}

// IssueRoleToken signs a demo session token carrying the chosen role. The
// token attributes actions to a persona; it is not authentication.
func IssueRoleToken(role, userName string) (string, error) {
	claims := jwt.MapClaims{
		"role":     role,
		"userName": userName,
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// RoleRequired parses the role token and lets the request through when the
// token names one of the given roles. With no roles listed, any valid token
// passes.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("role_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, constants.MISSING_ROLE, errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret(), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, constants.MISSING_ROLE, err)
		}

		claims, ok := jwtToken.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, 401, constants.MISSING_ROLE, errors.New("bad claims"))
		}
		role, _ := claims["role"].(string)
		userName, _ := claims["userName"].(string)

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if r == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return utils.ErrorResponse(c, 403, constants.ROLE_NOT_ALLOWED, errors.New("role "+role))
			}
		}

		c.Locals("role", role)
		c.Locals("userName", userName)
		return c.Next()
	}
}
