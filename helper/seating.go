package helper

import "github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"

// AssignSeat binds guestID to the seat with seatID inside layout. A guest
// holds at most one seat at a time: if the guest already sits elsewhere in
// the layout the old seat is cleared (a relocation, never a duplicate). A
// seat occupied by a different guest is never overwritten; the call fails
// with ErrSeatOccupied and the layout is left exactly as it was, because the
// occupancy check runs before any seat is touched. Assigning a guest to the
// seat they already hold is a no-op success.
//
// The caller is responsible for verifying that guestID references a real
// guest of the layout's event.
func AssignSeat(layout *model.RoomLayout, guestID, seatID uint) error {
	target := FindSeat(layout, seatID)
	if target == nil {
		return ErrSeatNotFound
	}
	if target.GuestID != nil {
		if *target.GuestID == guestID {
			return nil
		}
		return ErrSeatOccupied
	}
	for ti := range layout.Tables {
		seats := layout.Tables[ti].Seats
		for si := range seats {
			if seats[si].GuestID != nil && *seats[si].GuestID == guestID {
				seats[si].GuestID = nil
			}
		}
	}
	id := guestID
	target.GuestID = &id
	return nil
}

// UnassignSeat clears the seat and returns the id of the guest who held it.
func UnassignSeat(layout *model.RoomLayout, seatID uint) (*uint, error) {
	seat := FindSeat(layout, seatID)
	if seat == nil {
		return nil, ErrSeatNotFound
	}
	held := seat.GuestID
	seat.GuestID = nil
	return held, nil
}

// FindSeat returns a pointer into layout for the seat with the given id.
func FindSeat(layout *model.RoomLayout, seatID uint) *model.Seat {
	for ti := range layout.Tables {
		seats := layout.Tables[ti].Seats
		for si := range seats {
			if seats[si].ID == seatID {
				return &seats[si]
			}
		}
	}
	return nil
}

// SeatOf returns the seat currently held by guestID, or nil.
func SeatOf(layout *model.RoomLayout, guestID uint) *model.Seat {
	for ti := range layout.Tables {
		seats := layout.Tables[ti].Seats
		for si := range seats {
			if seats[si].GuestID != nil && *seats[si].GuestID == guestID {
				return &seats[si]
			}
		}
	}
	return nil
}

// LayoutOfSeat locates the layout containing seatID among the given layouts
// and returns its index, or -1.
func LayoutOfSeat(layouts []model.RoomLayout, seatID uint) int {
	for i := range layouts {
		if FindSeat(&layouts[i], seatID) != nil {
			return i
		}
	}
	return -1
}
