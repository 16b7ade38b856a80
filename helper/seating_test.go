package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func ptr(v uint) *uint { return &v }

func testLayout() model.RoomLayout {
	return model.RoomLayout{
		DTO:     model.DTO{ID: 1},
		EventID: 1,
		Tables: []model.Table{
			{
				DTO: model.DTO{ID: 10}, Name: "T1",
				Seats: []model.Seat{
					{DTO: model.DTO{ID: 101}, Label: "T1-1"},
					{DTO: model.DTO{ID: 102}, Label: "T1-2", GuestID: ptr(2)},
					{DTO: model.DTO{ID: 103}, Label: "T1-3"},
				},
			},
			{
				DTO: model.DTO{ID: 11}, Name: "T2",
				Seats: []model.Seat{
					{DTO: model.DTO{ID: 104}, Label: "T2-1"},
					{DTO: model.DTO{ID: 105}, Label: "T2-2"},
				},
			},
		},
	}
}

// seatsHolding counts how many seats in the layout hold the guest.
func seatsHolding(layout model.RoomLayout, guestID uint) int {
	n := 0
	for _, t := range layout.Tables {
		for _, s := range t.Seats {
			if s.GuestID != nil && *s.GuestID == guestID {
				n++
			}
		}
	}
	return n
}

func TestAssignSeat_EmptySeat(t *testing.T) {
	layout := testLayout()

	err := AssignSeat(&layout, 1, 101)
	require.NoError(t, err)

	seat := FindSeat(&layout, 101)
	require.NotNil(t, seat.GuestID)
	assert.Equal(t, uint(1), *seat.GuestID)

	// The other occupied seat is untouched.
	assert.Equal(t, uint(2), *FindSeat(&layout, 102).GuestID)
}

func TestAssignSeat_RelocationClearsOldSeat(t *testing.T) {
	layout := testLayout()

	require.NoError(t, AssignSeat(&layout, 1, 101))
	require.NoError(t, AssignSeat(&layout, 1, 104))

	assert.Nil(t, FindSeat(&layout, 101).GuestID, "old seat must be cleared")
	assert.Equal(t, uint(1), *FindSeat(&layout, 104).GuestID)
	assert.Equal(t, 1, seatsHolding(layout, 1))
}

func TestAssignSeat_OccupiedSeatRejectedAndUnchanged(t *testing.T) {
	layout := testLayout()
	require.NoError(t, AssignSeat(&layout, 1, 101))

	before := testLayout()
	require.NoError(t, AssignSeat(&before, 1, 101))

	// Guest 3 tries the seat guest 2 holds.
	err := AssignSeat(&layout, 3, 102)
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Equal(t, before, layout, "rejected assignment must not mutate the layout")

	// Same when the asker is already seated elsewhere: no relocation either.
	err = AssignSeat(&layout, 1, 102)
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Equal(t, before, layout)
}

func TestAssignSeat_SameSeatIsNoopSuccess(t *testing.T) {
	layout := testLayout()
	require.NoError(t, AssignSeat(&layout, 1, 103))

	before := testLayout()
	require.NoError(t, AssignSeat(&before, 1, 103))

	err := AssignSeat(&layout, 1, 103)
	assert.NoError(t, err)
	assert.Equal(t, before, layout)
}

func TestAssignSeat_UnknownSeat(t *testing.T) {
	layout := testLayout()
	err := AssignSeat(&layout, 1, 999)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestAssignSeat_InvariantHoldsAcrossSequences(t *testing.T) {
	layout := testLayout()

	calls := []struct {
		guest, seat uint
	}{
		{1, 101}, {1, 103}, {1, 104}, {3, 101}, {3, 105},
		{1, 102}, // rejected, guest 2 holds it
		{3, 103}, {1, 103}, // rejected, guest 3 holds it
		{2, 102}, // noop
	}

	for _, call := range calls {
		_ = AssignSeat(&layout, call.guest, call.seat)
		for _, guestID := range []uint{1, 2, 3} {
			assert.LessOrEqual(t, seatsHolding(layout, guestID), 1,
				"guest %d occupies more than one seat after assign(%d,%d)",
				guestID, call.guest, call.seat)
		}
	}

	// Final positions: every guest on exactly one seat.
	assert.Equal(t, 1, seatsHolding(layout, 1))
	assert.Equal(t, 1, seatsHolding(layout, 2))
	assert.Equal(t, 1, seatsHolding(layout, 3))
}

func TestUnassignSeat(t *testing.T) {
	layout := testLayout()

	held, err := UnassignSeat(&layout, 102)
	require.NoError(t, err)
	require.NotNil(t, held)
	assert.Equal(t, uint(2), *held)
	assert.Nil(t, FindSeat(&layout, 102).GuestID)

	held, err = UnassignSeat(&layout, 103)
	require.NoError(t, err)
	assert.Nil(t, held, "empty seat releases nobody")

	_, err = UnassignSeat(&layout, 999)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestSeatOfAndLayoutOfSeat(t *testing.T) {
	layout := testLayout()

	seat := SeatOf(&layout, 2)
	require.NotNil(t, seat)
	assert.Equal(t, uint(102), seat.ID)
	assert.Nil(t, SeatOf(&layout, 42))

	layouts := []model.RoomLayout{testLayout()}
	assert.Equal(t, 0, LayoutOfSeat(layouts, 105))
	assert.Equal(t, -1, LayoutOfSeat(layouts, 999))
}
