package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

// Summaries are recomputed from the live collections on every read; there is
// no cached aggregate to drift.

func (h *Handler) GetEventSummary(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)

	event, err := h.findEvent(eventId)
	if err != nil {
		return respondDomainError(c, err)
	}

	return utils.SuccessResponse(c, 200, helper.Summarize(event, h.store.Guests()))
}

func (h *Handler) GetAllSummaries(c *fiber.Ctx) error {
	summaries := helper.SummarizeAll(h.store.Events(), h.store.Guests())
	return utils.SuccessResponse(c, 200, model.ResponseCustom{
		Rows:       summaries,
		TotalCount: len(summaries),
	})
}
