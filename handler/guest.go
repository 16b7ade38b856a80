package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/config"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

func newCheckInCode() string {
	return "GST-" + strings.ToUpper(uuid.New().String()[:8])
}

// GetGuestsByEvent lists an event's guests, optionally filtered by
// ?rsvp=ACCEPTED and/or ?category=VIP.
func (h *Handler) GetGuestsByEvent(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)

	if _, err := h.findEvent(eventId); err != nil {
		return respondDomainError(c, err)
	}

	rsvp := c.Query("rsvp")
	category := c.Query("category")

	rows := []model.Guest{}
	for _, g := range h.store.Guests() {
		if g.EventID != eventId {
			continue
		}
		if rsvp != "" && string(g.RSVPStatus) != rsvp {
			continue
		}
		if category != "" && string(g.Category) != category {
			continue
		}
		rows = append(rows, g)
	}

	return utils.SuccessResponse(c, 200, model.ResponseCustom{
		Rows:       rows,
		TotalCount: len(rows),
	})
}

func (h *Handler) newGuest(input model.CreateGuestInput, eventId uint) model.Guest {
	var guest model.Guest
	copier.Copy(&guest, &input)
	guest.DTO = model.DTO{ID: h.store.NextID(), CreatedAt: h.now(), UpdatedAt: h.now()}
	guest.RSVPStatus = model.RSVPNotInvited
	guest.CheckInStatus = model.NotArrived
	guest.CheckInCode = newCheckInCode()
	guest.EventID = eventId
	if guest.RankLevel == 0 {
		guest.RankLevel = 5
	}
	return guest
}

func (h *Handler) CreateGuest(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.CreateGuestInput)

	if _, err := h.findEvent(eventId); err != nil {
		return respondDomainError(c, err)
	}

	newGuest := h.newGuest(input, eventId)

	h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		return append(guests, newGuest)
	})

	return utils.SuccessResponse(c, 201, newGuest)
}

// ImportGuests is the simulated file import: the UI posts parsed rows, each
// row is validated and added, and the caller gets a per-row report plus a
// batch code. No file ever touches the server.
func (h *Handler) ImportGuests(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.ImportGuestsInput)

	if _, err := h.findEvent(eventId); err != nil {
		return respondDomainError(c, err)
	}

	existing := make(map[string]bool)
	for _, g := range h.store.Guests() {
		if g.EventID == eventId && g.Email != "" {
			existing[g.Email] = true
		}
	}

	report := model.ImportReport{
		BatchCode: "IMP-" + uuid.New().String()[:8],
		FileName:  input.FileName,
	}
	var added []model.Guest
	for i, row := range input.Rows {
		if row.Email != "" && existing[row.Email] {
			report.Failed++
			report.Results = append(report.Results, model.ImportRowResult{
				Row: i + 1, Error: "duplicate email for this event",
			})
			continue
		}
		guest := h.newGuest(row, eventId)
		added = append(added, guest)
		if row.Email != "" {
			existing[row.Email] = true
		}
		report.Imported++
		report.Results = append(report.Results, model.ImportRowResult{
			Row: i + 1, GuestID: guest.ID,
		})
	}

	if len(added) > 0 {
		h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
			return append(guests, added...)
		})
	}

	return utils.SuccessResponse(c, 200, report)
}

// RespondRSVP records an accept/decline on an invited guest.
func (h *Handler) RespondRSVP(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.RespondRSVPInput)

	guest, err := h.findGuest(guestId)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := helper.Respond(&guest, input.Status); err != nil {
		return respondDomainError(c, err)
	}

	h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		for i := range guests {
			if guests[i].ID == guestId {
				guests[i].RSVPStatus = guest.RSVPStatus
				guests[i].UpdatedAt = h.now()
			}
		}
		return guests
	})

	return utils.SuccessResponse(c, 200, guest)
}

// RemoveGuest soft-removes a guest and releases their seat. The record stays
// in the collection with status REMOVED.
func (h *Handler) RemoveGuest(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)

	guest, err := h.findGuest(guestId)
	if err != nil {
		return respondDomainError(c, err)
	}

	if guest.SeatID != nil {
		seatId := *guest.SeatID
		h.store.ReplaceRoomLayouts(func(layouts []model.RoomLayout) []model.RoomLayout {
			if i := helper.LayoutOfSeat(layouts, seatId); i >= 0 {
				helper.UnassignSeat(&layouts[i], seatId)
			}
			return layouts
		})
	}

	h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		for i := range guests {
			if guests[i].ID == guestId {
				helper.Remove(&guests[i])
				guests[i].SeatID = nil
				guests[i].UpdatedAt = h.now()
			}
		}
		return guests
	})

	return utils.SuccessResponse(c, 200, fiber.Map{
		"guestId": guestId,
		"status":  model.RSVPRemoved,
	})
}

// GuestQR returns the PNG QR code the guest presents at the entrance desk.
func (h *Handler) GuestQR(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)

	guest, err := h.findGuest(guestId)
	if err != nil {
		return respondDomainError(c, err)
	}

	base := config.Config("CHECKIN_BASE_URL", "https://demo.example/checkin")
	qrBytes, err := utils.GenerateQRCode(fmt.Sprintf("%s/%s", base, guest.CheckInCode), 256)
	if err != nil {
		return utils.ErrorResponse(c, 500, "QR generation failed", err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(qrBytes)
}
