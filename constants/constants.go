package constants

// Demo roles. There is no real authentication; a role token only attributes
// actions to a persona so the UI can show the matching workflow.
const (
	ROLE_PROTOCOL_CHIEF = "PROTOCOL_CHIEF"
	ROLE_EVENT_MANAGER  = "EVENT_MANAGER"
	ROLE_USHER          = "USHER"
)

// Response messages
const (
	EVENT_NOT_FOUND          = "Event not found"
	GUEST_NOT_FOUND          = "Guest not found"
	LAYOUT_NOT_FOUND         = "Room layout not found"
	SEAT_NOT_FOUND           = "Seat not found"
	SEAT_OCCUPIED            = "Seat is already occupied by another guest"
	ALREADY_CHECKED_IN       = "Guest is already checked in"
	NOT_CHECKED_IN           = "Guest has not checked in yet"
	INVALID_RSVP             = "RSVP transition not allowed"
	INVALID_STATUS_CHANGE    = "Event status can only move forward"
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
	MISSING_ROLE             = "Missing or invalid role token"
	ROLE_NOT_ALLOWED         = "Role is not allowed to perform this action"
)
