package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

// SendInvitations invites every not-yet-invited guest of the event and
// queues their invitation email in the simulated outbox. A draft event is
// advanced to INVITATIONS_SENT in the same action.
func (h *Handler) SendInvitations(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)

	event, err := h.findEvent(eventId)
	if err != nil {
		return respondDomainError(c, err)
	}

	var invited []model.Guest
	h.store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		for i := range guests {
			if guests[i].EventID != eventId {
				continue
			}
			if err := helper.Invite(&guests[i]); err != nil {
				continue
			}
			guests[i].UpdatedAt = h.now()
			invited = append(invited, guests[i])
		}
		return guests
	})

	queued := 0
	for _, g := range invited {
		if g.Email == "" {
			continue
		}
		if err := h.outbox.QueueInvitation(g, event); err != nil {
			log.Printf("invitation for guest %d not queued: %v", g.ID, err)
			continue
		}
		queued++
	}

	if event.Status == model.EventDraft {
		h.store.ReplaceEvents(func(events []model.Event) []model.Event {
			for i := range events {
				if events[i].ID == eventId && events[i].Status == model.EventDraft {
					events[i].Status = model.EventInvitationsSent
					events[i].UpdatedAt = h.now()
				}
			}
			return events
		})
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"invited": len(invited),
		"queued":  queued,
	})
}

// SendReminders queues a reminder for every invited guest who has not
// responded yet.
func (h *Handler) SendReminders(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)

	event, err := h.findEvent(eventId)
	if err != nil {
		return respondDomainError(c, err)
	}

	reminded := 0
	for _, g := range h.store.Guests() {
		if g.EventID != eventId || g.RSVPStatus != model.RSVPInvited || g.Email == "" {
			continue
		}
		if err := h.outbox.QueueReminder(g, event); err != nil {
			log.Printf("reminder for guest %d not queued: %v", g.ID, err)
			continue
		}
		reminded++
	}

	return utils.SuccessResponse(c, 200, fiber.Map{"reminded": reminded})
}

// GetOutbox exposes the simulated mail log for the demo UI.
func (h *Handler) GetOutbox(c *fiber.Ctx) error {
	entries := h.outbox.Entries()
	return utils.SuccessResponse(c, 200, model.ResponseCustom{
		Rows:       entries,
		TotalCount: len(entries),
	})
}
