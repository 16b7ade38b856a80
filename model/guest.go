package model

import "time"

type GuestCategory string

const (
	CategoryVIP        GuestCategory = "VIP"
	CategoryDiplomatic GuestCategory = "DIPLOMATIC"
	CategoryPress      GuestCategory = "PRESS"
	CategoryStaff      GuestCategory = "STAFF"
)

type RSVPStatus string

const (
	RSVPNotInvited RSVPStatus = "NOT_INVITED"
	RSVPInvited    RSVPStatus = "INVITED"
	RSVPAccepted   RSVPStatus = "ACCEPTED"
	RSVPDeclined   RSVPStatus = "DECLINED"
	RSVPRemoved    RSVPStatus = "REMOVED"
)

type CheckInStatus string

const (
	NotArrived CheckInStatus = "NOT_ARRIVED"
	CheckedIn  CheckInStatus = "CHECKED_IN"
)

type Guest struct {
	DTO
	FullName      string        `validate:"required" json:"fullName"`
	Title         string        `json:"title"` // e.g. Ambassador, Minister
	Organization  string        `json:"organization"`
	Category      GuestCategory `json:"category"`
	RankLevel     int           `json:"rankLevel"` // protocol precedence, 1 is highest
	RSVPStatus    RSVPStatus    `json:"rsvpStatus"`
	SeatID        *uint         `json:"seatId"`
	CheckInStatus CheckInStatus `json:"checkInStatus"`
	CheckInTime   *time.Time    `json:"checkInTime"`
	IsLate        bool          `json:"isLate"`
	Email         string        `json:"email"`
	LastEmailSent *time.Time    `json:"lastEmailSent"`
	CheckInCode   string        `json:"checkInCode"` // printed on the invitation QR
	EventID       uint          `json:"eventId"`
}

type CreateGuestInput struct {
	FullName     string        `json:"fullName" validate:"required,min=2"`
	Title        string        `json:"title"`
	Organization string        `json:"organization"`
	Category     GuestCategory `json:"category" validate:"required,oneof=VIP DIPLOMATIC PRESS STAFF"`
	RankLevel    int           `json:"rankLevel" validate:"omitempty,min=1,max=10"`
	Email        string        `json:"email" validate:"omitempty,email"`
}

type ImportGuestsInput struct {
	FileName string             `json:"fileName"`
	Rows     []CreateGuestInput `json:"rows" validate:"required,min=1,dive"`
}

// ImportRowResult reports the outcome of one imported row.
type ImportRowResult struct {
	Row     int    `json:"row"`
	GuestID uint   `json:"guestId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ImportReport struct {
	BatchCode string            `json:"batchCode"`
	FileName  string            `json:"fileName"`
	Imported  int               `json:"imported"`
	Failed    int               `json:"failed"`
	Results   []ImportRowResult `json:"results"`
}

type RespondRSVPInput struct {
	Status RSVPStatus `json:"status" validate:"required,oneof=ACCEPTED DECLINED"`
}

type CheckInInput struct {
	// At allows the desk UI to backfill a paper check-in; zero means "now".
	At *time.Time `json:"at"`
}
