package model

import "time"

type EventStatus string

const (
	EventDraft           EventStatus = "DRAFT"
	EventInvitationsSent EventStatus = "INVITATIONS_SENT"
	EventLive            EventStatus = "LIVE"
	EventCompleted       EventStatus = "COMPLETED"
)

// eventStatusOrder drives the monotonic status advance.
var eventStatusOrder = map[EventStatus]int{
	EventDraft:           0,
	EventInvitationsSent: 1,
	EventLive:            2,
	EventCompleted:       3,
}

// CanAdvanceTo reports whether the status may move from s to next.
// Only forward moves are allowed, an event never goes back to draft.
func (s EventStatus) CanAdvanceTo(next EventStatus) bool {
	cur, ok := eventStatusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := eventStatusOrder[next]
	if !ok {
		return false
	}
	return nxt > cur
}

type Event struct {
	DTO
	Name      string      `validate:"required" json:"name"`
	Slug      string      `json:"slug"`
	StartTime time.Time   `validate:"required" json:"startTime"`
	Venue     string      `validate:"required" json:"venue"`
	Type      string      `json:"type"` // e.g. STATE_DINNER, RECEPTION, CONFERENCE
	Status    EventStatus `json:"status"`
}

type CreateEventInput struct {
	Name      string    `json:"name" validate:"required,min=3"`
	StartTime time.Time `json:"startTime" validate:"required"`
	Venue     string    `json:"venue" validate:"required"`
	Type      string    `json:"type" validate:"omitempty,oneof=STATE_DINNER RECEPTION CONFERENCE CEREMONY"`
}

type AdvanceEventStatusInput struct {
	Status EventStatus `json:"status" validate:"required,oneof=INVITATIONS_SENT LIVE COMPLETED"`
}
