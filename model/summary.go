package model

// EventSummary is the dashboard aggregate for one event. It is always
// recomputed from the guest collection, never cached.
type EventSummary struct {
	EventID      uint        `json:"eventId"`
	EventName    string      `json:"eventName"`
	Status       EventStatus `json:"status"`
	TotalGuests  int         `json:"totalGuests"` // excludes removed guests
	NotInvited   int         `json:"notInvited"`
	Invited      int         `json:"invited"`
	Accepted     int         `json:"accepted"`
	Declined     int         `json:"declined"`
	Removed      int         `json:"removed"`
	CheckedIn    int         `json:"checkedIn"`
	Absent       int         `json:"absent"` // accepted but not arrived
	LateArrivals int         `json:"lateArrivals"`
	Seated       int         `json:"seated"`
	VIPTotal     int         `json:"vipTotal"`
	VIPCheckedIn int         `json:"vipCheckedIn"`
}
