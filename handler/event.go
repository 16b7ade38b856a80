package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/constants"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

func (h *Handler) GetEvents(c *fiber.Ctx) error {
	events := h.store.Events()
	return utils.SuccessResponse(c, 200, model.ResponseCustom{
		Rows:       events,
		TotalCount: len(events),
	})
}

func (h *Handler) GetEventById(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)

	event, err := h.findEvent(eventId)
	if err != nil {
		return respondDomainError(c, err)
	}
	return utils.SuccessResponse(c, 200, event)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)

	newEvent := model.Event{
		DTO:       model.DTO{ID: h.store.NextID(), CreatedAt: h.now(), UpdatedAt: h.now()},
		Name:      input.Name,
		Slug:      slug.Make(input.Name),
		StartTime: input.StartTime,
		Venue:     input.Venue,
		Type:      input.Type,
		Status:    model.EventDraft,
	}

	h.store.ReplaceEvents(func(events []model.Event) []model.Event {
		return append(events, newEvent)
	})

	return utils.SuccessResponse(c, 201, newEvent)
}

// AdvanceEventStatus moves an event forward through its lifecycle. Backward
// moves are refused; the demo has no "reopen" flow.
func (h *Handler) AdvanceEventStatus(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.AdvanceEventStatusInput)

	event, err := h.findEvent(eventId)
	if err != nil {
		return respondDomainError(c, err)
	}

	if !event.Status.CanAdvanceTo(input.Status) {
		return utils.ErrorResponse(c, 409, constants.INVALID_STATUS_CHANGE,
			errors.New(string(event.Status)+" -> "+string(input.Status)))
	}

	h.store.ReplaceEvents(func(events []model.Event) []model.Event {
		for i := range events {
			if events[i].ID == eventId {
				events[i].Status = input.Status
				events[i].UpdatedAt = h.now()
			}
		}
		return events
	})

	event.Status = input.Status
	return utils.SuccessResponse(c, 200, event)
}

func (h *Handler) GetOrganizations(c *fiber.Ctx) error {
	orgs := h.store.Organizations()
	return utils.SuccessResponse(c, 200, model.ResponseCustom{
		Rows:       orgs,
		TotalCount: len(orgs),
	})
}

func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users := h.store.Users()
	return utils.SuccessResponse(c, 200, model.ResponseCustom{
		Rows:       users,
		TotalCount: len(users),
	})
}
