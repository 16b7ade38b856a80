package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

func (h *Handler) GetLayoutByEvent(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)

	if _, err := h.findEvent(eventId); err != nil {
		return respondDomainError(c, err)
	}

	for _, l := range h.store.RoomLayouts() {
		if l.EventID == eventId {
			return utils.SuccessResponse(c, 200, l)
		}
	}
	return respondDomainError(c, helper.ErrLayoutNotFound)
}

// AssignSeat seats a guest, relocating them if they already sit elsewhere in
// the event's layout. The conflict check runs inside the layout transform, so
// a rejected assignment leaves both the layout and the guest record alone.
func (h *Handler) AssignSeat(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AssignSeatInput)

	guest, err := h.findGuest(input.GuestID)
	if err != nil {
		return respondDomainError(c, err)
	}

	layouts := h.store.RoomLayouts()
	idx := helper.LayoutOfSeat(layouts, input.SeatID)
	if idx < 0 {
		return respondDomainError(c, helper.ErrSeatNotFound)
	}
	if layouts[idx].EventID != guest.EventID {
		return utils.ErrorResponse(c, 409, "Seat belongs to a different event",
			errors.New("cross-event assignment"))
	}

	// The transform's own result decides; a conflict inside it returns the
	// collection unchanged and nothing below runs, so guest records and
	// layout can never diverge.
	var assignErr error
	h.store.ReplaceRoomLayouts(func(current []model.RoomLayout) []model.RoomLayout {
		i := helper.LayoutOfSeat(current, input.SeatID)
		if i < 0 {
			assignErr = helper.ErrSeatNotFound
			return current
		}
		assignErr = helper.AssignSeat(&current[i], guest.ID, input.SeatID)
		return current
	})
	if assignErr != nil {
		return respondDomainError(c, assignErr)
	}

	h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		for i := range guests {
			if guests[i].ID == guest.ID {
				seatId := input.SeatID
				guests[i].SeatID = &seatId
				guests[i].UpdatedAt = h.now()
			}
		}
		return guests
	})

	seatLabel := ""
	updated := h.store.RoomLayouts()
	if i := helper.LayoutOfSeat(updated, input.SeatID); i >= 0 {
		seatLabel = helper.FindSeat(&updated[i], input.SeatID).Label
	}
	return utils.SuccessResponse(c, 200, fiber.Map{
		"guestId":   guest.ID,
		"seatId":    input.SeatID,
		"seatLabel": seatLabel,
	})
}

// UnassignSeat frees a seat and clears the seat reference on whoever held it.
func (h *Handler) UnassignSeat(c *fiber.Ctx) error {
	seatId := c.Locals("inputId").(uint)

	layouts := h.store.RoomLayouts()
	idx := helper.LayoutOfSeat(layouts, seatId)
	if idx < 0 {
		return respondDomainError(c, helper.ErrSeatNotFound)
	}

	var held *uint
	h.store.ReplaceRoomLayouts(func(current []model.RoomLayout) []model.RoomLayout {
		if i := helper.LayoutOfSeat(current, seatId); i >= 0 {
			held, _ = helper.UnassignSeat(&current[i], seatId)
		}
		return current
	})

	if held != nil {
		guestId := *held
		h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
			for i := range guests {
				if guests[i].ID == guestId {
					guests[i].SeatID = nil
					guests[i].UpdatedAt = h.now()
				}
			}
			return guests
		})
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"seatId":   seatId,
		"released": held != nil,
	})
}
