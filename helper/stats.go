package helper

import "github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"

// Summarize computes the dashboard aggregate for one event from the current
// guest collection. Pure and deterministic: same input, same summary. Removed
// guests count only toward the Removed figure.
func Summarize(event model.Event, guests []model.Guest) model.EventSummary {
	sum := model.EventSummary{
		EventID:   event.ID,
		EventName: event.Name,
		Status:    event.Status,
	}
	for _, g := range guests {
		if g.EventID != event.ID {
			continue
		}
		if g.RSVPStatus == model.RSVPRemoved {
			sum.Removed++
			continue
		}
		sum.TotalGuests++
		switch g.RSVPStatus {
		case model.RSVPNotInvited:
			sum.NotInvited++
		case model.RSVPInvited:
			sum.Invited++
		case model.RSVPAccepted:
			sum.Accepted++
		case model.RSVPDeclined:
			sum.Declined++
		}
		if g.CheckInStatus == model.CheckedIn {
			sum.CheckedIn++
			if g.IsLate {
				sum.LateArrivals++
			}
		} else if g.RSVPStatus == model.RSVPAccepted {
			sum.Absent++
		}
		if g.SeatID != nil {
			sum.Seated++
		}
		if g.Category == model.CategoryVIP {
			sum.VIPTotal++
			if g.CheckInStatus == model.CheckedIn {
				sum.VIPCheckedIn++
			}
		}
	}
	return sum
}

// SummarizeAll returns a summary per event, in event order.
func SummarizeAll(events []model.Event, guests []model.Guest) []model.EventSummary {
	out := make([]model.EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, Summarize(e, guests))
	}
	return out
}
