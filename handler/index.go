package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/constants"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/database"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

// Handler carries the session store and its collaborators. Everything is
// injected so tests can build a Handler around a fresh store.
type Handler struct {
	store  *database.Store
	outbox *utils.Outbox
	hub    *Hub
	now    func() time.Time
}

func New(store *database.Store, outbox *utils.Outbox) *Handler {
	h := &Handler{
		store:  store,
		outbox: outbox,
		hub:    NewHub(),
		now:    time.Now,
	}

	// Delivered mail stamps the guest's last-email timestamp.
	outbox.OnDelivered(func(e utils.OutboxEntry) {
		ts := *e.DeliveredAt
		store.ReplaceGuests(func(guests []model.Guest) []model.Guest {
			for i := range guests {
				if guests[i].ID == e.GuestID {
					guests[i].LastEmailSent = &ts
				}
			}
			return guests
		})
	})

	// Every store change repaints connected dashboards.
	store.Subscribe(h.BroadcastSummaries)

	return h
}

// respondDomainError maps helper errors onto the HTTP envelope. Conflicts
// and duplicates get their own messages so the UI can tell the user what
// actually went wrong instead of a generic failure.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrEventNotFound):
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	case errors.Is(err, helper.ErrGuestNotFound):
		return utils.ErrorResponse(c, 404, constants.GUEST_NOT_FOUND, err)
	case errors.Is(err, helper.ErrLayoutNotFound):
		return utils.ErrorResponse(c, 404, constants.LAYOUT_NOT_FOUND, err)
	case errors.Is(err, helper.ErrSeatNotFound):
		return utils.ErrorResponse(c, 404, constants.SEAT_NOT_FOUND, err)
	case errors.Is(err, helper.ErrSeatOccupied):
		return utils.ErrorResponse(c, 409, constants.SEAT_OCCUPIED, err)
	case errors.Is(err, helper.ErrAlreadyCheckedIn):
		return utils.ErrorResponse(c, 409, constants.ALREADY_CHECKED_IN, err)
	case errors.Is(err, helper.ErrNotCheckedIn):
		return utils.ErrorResponse(c, 409, constants.NOT_CHECKED_IN, err)
	case errors.Is(err, helper.ErrInvalidTransition):
		return utils.ErrorResponse(c, 409, constants.INVALID_RSVP, err)
	default:
		return utils.ErrorResponse(c, 500, "Unexpected error", err)
	}
}

// findEvent returns the event with the given id from the current snapshot.
func (h *Handler) findEvent(id uint) (model.Event, error) {
	for _, e := range h.store.Events() {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, helper.ErrEventNotFound
}

func (h *Handler) findGuest(id uint) (model.Guest, error) {
	for _, g := range h.store.Guests() {
		if g.ID == id {
			return g, nil
		}
	}
	return model.Guest{}, helper.ErrGuestNotFound
}
