package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

// ResetDemo restores the seeded collections and empties the outbox. Any
// role may reset; it is the demo's panic button.
func (h *Handler) ResetDemo(c *fiber.Ctx) error {
	h.store.Reset()
	h.outbox.Reset()
	log.Println("demo session reset to seed data")
	return utils.SuccessResponse(c, 200, fiber.Map{"reset": true})
}

// FlushOutbox delivers pending simulated mail immediately; exposed so the
// demo UI can skip the fake latency.
func (h *Handler) FlushOutbox(c *fiber.Ctx) error {
	delivered := h.outbox.Flush()
	return utils.SuccessResponse(c, 200, fiber.Map{"delivered": delivered})
}
