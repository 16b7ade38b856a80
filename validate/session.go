package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func RoleSession() fiber.Handler {
	return body[model.RoleSessionInput]
}
