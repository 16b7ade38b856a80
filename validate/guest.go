package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

func CreateGuest() fiber.Handler {
	return body[model.CreateGuestInput]
}

func ImportGuests() fiber.Handler {
	return body[model.ImportGuestsInput]
}

func RespondRSVP() fiber.Handler {
	return body[model.RespondRSVPInput]
}

// CheckIn accepts an empty body; the desk UI usually sends nothing and the
// server stamps "now".
func CheckIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckInInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
			}
		}
		c.Locals("input", input)
		return c.Next()
	}
}
