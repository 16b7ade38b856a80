package helper

import (
	"time"

	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

// CheckIn transitions a guest from NOT_ARRIVED to CHECKED_IN. The timestamp
// and the lateness flag are computed together so a reader can never observe
// one without the other. A second check-in attempt fails with
// ErrAlreadyCheckedIn and leaves the original timestamp untouched; re-entry
// of a checked-in guest goes through ConfirmReEntry instead.
func CheckIn(guest *model.Guest, event model.Event, at time.Time) error {
	if guest.CheckInStatus == model.CheckedIn {
		return ErrAlreadyCheckedIn
	}
	ts := at
	guest.CheckInStatus = model.CheckedIn
	guest.CheckInTime = &ts
	guest.IsLate = ts.After(event.StartTime)
	return nil
}

// ConfirmReEntry acknowledges a checked-in guest passing the desk again.
// Nothing on the record changes, the original check-in time and lateness
// stand.
func ConfirmReEntry(guest *model.Guest) error {
	if guest.CheckInStatus != model.CheckedIn {
		return ErrNotCheckedIn
	}
	return nil
}
