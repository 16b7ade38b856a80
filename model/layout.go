package model

type RoomLayout struct {
	DTO
	EventID uint    `json:"eventId"`
	Name    string  `json:"name"`
	Tables  []Table `json:"tables"`
}

type Table struct {
	DTO
	Name  string `validate:"required" json:"name"`
	Seats []Seat `json:"seats"`
}

type Seat struct {
	DTO
	Label   string `validate:"required" json:"label"` // e.g. "T1-3"
	GuestID *uint  `json:"guestId"`
}

type AssignSeatInput struct {
	GuestID uint `json:"guestId" validate:"required"`
	SeatID  uint `json:"seatId" validate:"required"`
}
