package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/constants"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/handler"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/middleware"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/validate"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	managers := middleware.RoleRequired(constants.ROLE_PROTOCOL_CHIEF, constants.ROLE_EVENT_MANAGER)
	desk := middleware.RoleRequired(constants.ROLE_PROTOCOL_CHIEF, constants.ROLE_EVENT_MANAGER, constants.ROLE_USHER)

	session := v1.Group("/session")
	session.Post("/role", validate.RoleSession(), h.CreateRoleSession)

	event := v1.Group("/event", logger.New())
	event.Get("/", h.GetEvents)
	event.Post("/", managers, validate.CreateEvent(), h.CreateEvent)
	event.Get("/:eventId", validate.GetById("eventId"), h.GetEventById)
	event.Patch("/:eventId/status", managers, validate.GetById("eventId"), validate.AdvanceEventStatus(), h.AdvanceEventStatus)
	event.Get("/:eventId/guest", validate.GetById("eventId"), h.GetGuestsByEvent)
	event.Post("/:eventId/guest", managers, validate.GetById("eventId"), validate.CreateGuest(), h.CreateGuest)
	event.Post("/:eventId/guest/import", managers, validate.GetById("eventId"), validate.ImportGuests(), h.ImportGuests)
	event.Post("/:eventId/invitations", managers, validate.GetById("eventId"), h.SendInvitations)
	event.Post("/:eventId/reminders", managers, validate.GetById("eventId"), h.SendReminders)
	event.Get("/:eventId/layout", validate.GetById("eventId"), h.GetLayoutByEvent)
	event.Get("/:eventId/summary", validate.GetById("eventId"), h.GetEventSummary)

	guest := v1.Group("/guest", logger.New())
	guest.Patch("/:guestId/rsvp", validate.GetById("guestId"), validate.RespondRSVP(), h.RespondRSVP)
	guest.Delete("/:guestId", middleware.RoleRequired(constants.ROLE_PROTOCOL_CHIEF), validate.GetById("guestId"), h.RemoveGuest)
	guest.Get("/:guestId/qr", validate.GetById("guestId"), h.GuestQR)
	guest.Post("/:guestId/checkin", desk, validate.GetById("guestId"), validate.CheckIn(), h.CheckInGuest)
	guest.Post("/:guestId/reentry", desk, validate.GetById("guestId"), h.ConfirmReEntry)

	v1.Post("/checkin/code/:code", desk, h.CheckInByCode)

	layout := v1.Group("/layout", logger.New())
	layout.Put("/seat", managers, validate.AssignSeat(), h.AssignSeat)
	layout.Delete("/seat/:seatId", managers, validate.GetById("seatId"), h.UnassignSeat)

	v1.Get("/summary", h.GetAllSummaries)
	v1.Get("/outbox", h.GetOutbox)
	v1.Post("/outbox/flush", h.FlushOutbox)
	v1.Get("/organization", h.GetOrganizations)
	v1.Get("/user", h.GetUsers)

	demo := v1.Group("/demo")
	demo.Post("/reset", h.ResetDemo)

	v1.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	v1.Get("/ws/event/:eventId", websocket.New(h.EventWebsocket))
}
