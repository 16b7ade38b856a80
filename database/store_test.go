package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func TestOpen_SeedsCollections(t *testing.T) {
	s := Open()

	assert.NotEmpty(t, s.Events())
	assert.NotEmpty(t, s.Guests())
	assert.NotEmpty(t, s.RoomLayouts())
	assert.NotEmpty(t, s.Users())
	assert.NotEmpty(t, s.Organizations())
}

func TestReset_RoundTrip(t *testing.T) {
	s := Open()
	initial := s.Guests()

	s.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		for i := range guests {
			guests[i].FullName = "mutated"
			guests[i].RSVPStatus = model.RSVPRemoved
		}
		return append(guests, model.Guest{DTO: model.DTO{ID: s.NextID()}})
	})
	require.NotEqual(t, initial, s.Guests())

	s.Reset()
	assert.Equal(t, initial, s.Guests(), "reset();mutate();reset() equals the first reset()")
	assert.Equal(t, Open().Events(), s.Events())
	assert.Equal(t, Open().RoomLayouts(), s.RoomLayouts())
}

func TestSnapshots_AreIsolated(t *testing.T) {
	s := Open()

	snap := s.Guests()
	snap[0].FullName = "scribbled on"
	assert.NotEqual(t, "scribbled on", s.Guests()[0].FullName)

	layouts := s.RoomLayouts()
	layouts[0].Tables[0].Seats[0].GuestID = nil
	fresh := s.RoomLayouts()
	assert.NotNil(t, fresh[0].Tables[0].Seats[0].GuestID,
		"nested snapshot mutation must not reach the store")
}

func TestSeed_IsImmuneToSessionMutation(t *testing.T) {
	s := Open()
	initial := s.Events()

	s.ReplaceEvents(func(events []model.Event) []model.Event {
		for i := range events {
			events[i].Status = model.EventCompleted
		}
		return events
	})
	s.Reset()

	assert.Equal(t, initial, s.Events())
}

func TestReplace_AppliesTransform(t *testing.T) {
	s := Open()
	before := len(s.Guests())

	s.ReplaceGuests(func(guests []model.Guest) []model.Guest {
		return append(guests, model.Guest{
			DTO: model.DTO{ID: s.NextID()}, FullName: "Late Addition", EventID: 1,
		})
	})

	assert.Len(t, s.Guests(), before+1)
}

func TestNextID_BeyondSeedRange(t *testing.T) {
	s := Open()

	id := s.NextID()
	for _, g := range s.Guests() {
		assert.NotEqual(t, g.ID, id)
	}
	assert.Equal(t, id+1, s.NextID())

	// Reset also rewinds the allocator.
	s.Reset()
	assert.Equal(t, id, s.NextID())
}

func TestSubscribe_NotifiesOnReplaceAndReset(t *testing.T) {
	s := Open()

	fired := 0
	unsubscribe := s.Subscribe(func() { fired++ })

	s.ReplaceGuests(func(g []model.Guest) []model.Guest { return g })
	s.Reset()
	assert.Equal(t, 2, fired)

	unsubscribe()
	s.ReplaceGuests(func(g []model.Guest) []model.Guest { return g })
	assert.Equal(t, 2, fired, "unsubscribed listener must not fire")
}

func TestSeed_SeatAndGuestReferencesAgree(t *testing.T) {
	s := Open()
	guests := s.Guests()
	layouts := s.RoomLayouts()

	seatHolder := map[uint]uint{}
	for _, l := range layouts {
		for _, tb := range l.Tables {
			for _, seat := range tb.Seats {
				if seat.GuestID != nil {
					seatHolder[seat.ID] = *seat.GuestID
				}
			}
		}
	}

	for _, g := range guests {
		if g.SeatID == nil {
			continue
		}
		holder, ok := seatHolder[*g.SeatID]
		require.True(t, ok, "guest %d references unoccupied seat %d", g.ID, *g.SeatID)
		assert.Equal(t, g.ID, holder, "seat %d and guest %d disagree", *g.SeatID, g.ID)
	}
}
