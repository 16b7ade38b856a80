package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func CreateEvent() fiber.Handler {
	return body[model.CreateEventInput]
}

func AdvanceEventStatus() fiber.Handler {
	return body[model.AdvanceEventStatusInput]
}
