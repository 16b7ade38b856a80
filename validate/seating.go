package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func AssignSeat() fiber.Handler {
	return body[model.AssignSeatInput]
}
