package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/constants"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

// checkInGuest applies the arrival transition and writes it through the
// store. Duplicate attempts are answered with a 409 carrying the original
// check-in time so the desk sees when the guest first arrived.
func (h *Handler) checkInGuest(c *fiber.Ctx, guest model.Guest, at time.Time) error {
	event, err := h.findEvent(guest.EventID)
	if err != nil {
		return respondDomainError(c, err)
	}

	if guest.CheckInStatus == model.CheckedIn {
		return c.Status(409).JSON(fiber.Map{
			"message":     constants.ALREADY_CHECKED_IN,
			"outcome":     "DUPLICATE",
			"guestId":     guest.ID,
			"checkInTime": guest.CheckInTime,
		})
	}

	if err := helper.CheckIn(&guest, event, at); err != nil {
		return respondDomainError(c, err)
	}

	h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		for i := range guests {
			if guests[i].ID == guest.ID {
				guests[i].CheckInStatus = guest.CheckInStatus
				guests[i].CheckInTime = guest.CheckInTime
				guests[i].IsLate = guest.IsLate
				guests[i].UpdatedAt = h.now()
			}
		}
		return guests
	})

	return utils.SuccessResponse(c, 200, fiber.Map{
		"outcome":     "CHECKED_IN",
		"guestId":     guest.ID,
		"guestName":   guest.FullName,
		"checkInTime": guest.CheckInTime,
		"isLate":      guest.IsLate,
	})
}

func (h *Handler) checkInTime(input model.CheckInInput) time.Time {
	if input.At != nil {
		return *input.At
	}
	return h.now()
}

func (h *Handler) CheckInGuest(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.CheckInInput)

	guest, err := h.findGuest(guestId)
	if err != nil {
		return respondDomainError(c, err)
	}

	return h.checkInGuest(c, guest, h.checkInTime(input))
}

// CheckInByCode is the QR scan path, looking the guest up by check-in code.
func (h *Handler) CheckInByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	for _, g := range h.store.Guests() {
		if g.CheckInCode == code {
			return h.checkInGuest(c, g, h.now())
		}
	}
	return respondDomainError(c, helper.ErrGuestNotFound)
}

// ConfirmReEntry is the explicit second step when a checked-in guest passes
// the desk again. It acknowledges without touching the original record.
func (h *Handler) ConfirmReEntry(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)

	guest, err := h.findGuest(guestId)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := helper.ConfirmReEntry(&guest); err != nil {
		return respondDomainError(c, err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"outcome":     "RE_ENTRY",
		"guestId":     guest.ID,
		"guestName":   guest.FullName,
		"checkInTime": guest.CheckInTime,
		"isLate":      guest.IsLate,
	})
}
