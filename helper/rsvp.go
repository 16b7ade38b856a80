package helper

import "github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"

// RSVP moves one way: NOT_INVITED → INVITED → ACCEPTED or DECLINED. There is
// no un-RSVP. REMOVED is an administrative override reachable from any state.

// Invite marks a not-yet-invited guest as invited.
func Invite(guest *model.Guest) error {
	if guest.RSVPStatus != model.RSVPNotInvited {
		return ErrInvalidTransition
	}
	guest.RSVPStatus = model.RSVPInvited
	return nil
}

// Respond records the guest's answer to an invitation.
func Respond(guest *model.Guest, status model.RSVPStatus) error {
	if status != model.RSVPAccepted && status != model.RSVPDeclined {
		return ErrInvalidTransition
	}
	if guest.RSVPStatus != model.RSVPInvited {
		return ErrInvalidTransition
	}
	guest.RSVPStatus = status
	return nil
}

// Remove soft-deletes a guest from the modeled flows. The record stays in
// the collection; seat release is the caller's job.
func Remove(guest *model.Guest) {
	guest.RSVPStatus = model.RSVPRemoved
}
