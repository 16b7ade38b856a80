package database

import (
	"time"

	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

// Fixture data for the demo session. IDs are partitioned per collection so a
// glance at a payload tells you what kind of record it references: events
// 1..9, layouts 21.., guests 101.., tables 201.., seats 301.., organizations
// 401.., users 501.. Runtime records start at seedNextID.
const seedNextID = 1000

func seedTime(value string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", value)
	return t
}

func ptrUint(v uint) *uint { return &v }

func ptrTime(t time.Time) *time.Time { return &t }

var seedEvents = []model.Event{
	{
		DTO:       model.DTO{ID: 1},
		Name:      "National Day Reception",
		Slug:      "national-day-reception",
		StartTime: seedTime("2026-09-02 19:00"),
		Venue:     "State Guest House, Mirror Hall",
		Type:      "RECEPTION",
		Status:    model.EventLive,
	},
	{
		DTO:       model.DTO{ID: 2},
		Name:      "Trade Delegation Dinner",
		Slug:      "trade-delegation-dinner",
		StartTime: seedTime("2026-10-12 20:00"),
		Venue:     "Grand Continental, Ballroom A",
		Type:      "STATE_DINNER",
		Status:    model.EventDraft,
	},
	{
		DTO:       model.DTO{ID: 3},
		Name:      "Press Accreditation Forum",
		Slug:      "press-accreditation-forum",
		StartTime: seedTime("2026-06-15 09:30"),
		Venue:     "Ministry Annex, Auditorium",
		Type:      "CONFERENCE",
		Status:    model.EventCompleted,
	},
}

var seedGuests = []model.Guest{
	// National Day Reception: mid check-in, partially seated.
	{
		DTO: model.DTO{ID: 101}, FullName: "Amb. Helena Vargas", Title: "Ambassador",
		Organization: "Embassy of Aurelia", Category: model.CategoryDiplomatic, RankLevel: 1,
		RSVPStatus: model.RSVPAccepted, SeatID: ptrUint(301),
		CheckInStatus: model.CheckedIn, CheckInTime: ptrTime(seedTime("2026-09-02 18:48")),
		IsLate: false, Email: "h.vargas@aurelia-embassy.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:02")),
		CheckInCode:   "GST-7F3A2B41", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 102}, FullName: "Min. Robert Akintola", Title: "Minister of Trade",
		Organization: "Ministry of Commerce", Category: model.CategoryVIP, RankLevel: 1,
		RSVPStatus: model.RSVPAccepted, SeatID: ptrUint(302),
		CheckInStatus: model.CheckedIn, CheckInTime: ptrTime(seedTime("2026-09-02 19:22")),
		IsLate: true, Email: "r.akintola@commerce.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:02")),
		CheckInCode:   "GST-9D11C0AE", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 103}, FullName: "Dr. Ingrid Solheim", Title: "Trade Attaché",
		Organization: "Embassy of Nordmark", Category: model.CategoryDiplomatic, RankLevel: 3,
		RSVPStatus: model.RSVPAccepted, SeatID: ptrUint(304),
		CheckInStatus: model.NotArrived, Email: "i.solheim@nordmark.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:02")),
		CheckInCode:   "GST-55E2D970", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 104}, FullName: "Laila Haddad", Title: "Senior Correspondent",
		Organization: "Meridian Press Agency", Category: model.CategoryPress, RankLevel: 6,
		RSVPStatus: model.RSVPAccepted,
		CheckInStatus: model.CheckedIn, CheckInTime: ptrTime(seedTime("2026-09-02 19:05")),
		IsLate: true, Email: "l.haddad@meridianpress.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:03")),
		CheckInCode:   "GST-C4087D13", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 105}, FullName: "Gen. Marcus Oyelaran", Title: "Chief of Staff",
		Organization: "Defence Headquarters", Category: model.CategoryVIP, RankLevel: 2,
		RSVPStatus: model.RSVPDeclined, Email: "adc@defence-hq.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:03")),
		CheckInStatus: model.NotArrived,
		CheckInCode:   "GST-1B6FAA52", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 106}, FullName: "Sophie Marchand", Title: "Cultural Attaché",
		Organization: "Embassy of Valdore", Category: model.CategoryDiplomatic, RankLevel: 4,
		RSVPStatus: model.RSVPInvited, Email: "s.marchand@valdore.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:03")),
		CheckInStatus: model.NotArrived,
		CheckInCode:   "GST-E8A9034F", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 107}, FullName: "Tomas Jelen", Title: "Protocol Officer",
		Organization: "Office of the Presidency", Category: model.CategoryStaff, RankLevel: 8,
		RSVPStatus: model.RSVPAccepted,
		CheckInStatus: model.NotArrived, Email: "t.jelen@presidency.example",
		LastEmailSent: ptrTime(seedTime("2026-08-20 10:04")),
		CheckInCode:   "GST-3C5D6E7F", EventID: 1,
	},
	{
		DTO: model.DTO{ID: 108}, FullName: "Former invitee", Title: "",
		Organization: "Unaffiliated", Category: model.CategoryPress, RankLevel: 9,
		RSVPStatus: model.RSVPRemoved, Email: "",
		CheckInStatus: model.NotArrived,
		CheckInCode:   "GST-00D1REMD", EventID: 1,
	},

	// Trade Delegation Dinner: still a draft, nobody invited yet.
	{
		DTO: model.DTO{ID: 109}, FullName: "Chen Wei", Title: "Delegation Head",
		Organization: "Eastgate Trade Council", Category: model.CategoryVIP, RankLevel: 1,
		RSVPStatus: model.RSVPNotInvited,
		CheckInStatus: model.NotArrived, Email: "chen.wei@eastgate.example",
		CheckInCode: "GST-A1B2C3D4", EventID: 2,
	},
	{
		DTO: model.DTO{ID: 110}, FullName: "Priya Raghunathan", Title: "Investment Director",
		Organization: "Southbridge Capital", Category: model.CategoryVIP, RankLevel: 2,
		RSVPStatus: model.RSVPNotInvited,
		CheckInStatus: model.NotArrived, Email: "p.raghunathan@southbridge.example",
		CheckInCode: "GST-E5F60718", EventID: 2,
	},
	{
		DTO: model.DTO{ID: 111}, FullName: "Jonas Verbeke", Title: "Interpreter",
		Organization: "Office of the Presidency", Category: model.CategoryStaff, RankLevel: 7,
		RSVPStatus: model.RSVPNotInvited,
		CheckInStatus: model.NotArrived, Email: "j.verbeke@presidency.example",
		CheckInCode: "GST-29A3B4C5", EventID: 2,
	},
}

var seedRoomLayouts = []model.RoomLayout{
	{
		DTO: model.DTO{ID: 21}, EventID: 1, Name: "Mirror Hall — evening plan",
		Tables: []model.Table{
			{
				DTO: model.DTO{ID: 201}, Name: "Head Table",
				Seats: []model.Seat{
					{DTO: model.DTO{ID: 301}, Label: "HT-1", GuestID: ptrUint(101)},
					{DTO: model.DTO{ID: 302}, Label: "HT-2", GuestID: ptrUint(102)},
					{DTO: model.DTO{ID: 303}, Label: "HT-3"},
					{DTO: model.DTO{ID: 304}, Label: "HT-4", GuestID: ptrUint(103)},
				},
			},
			{
				DTO: model.DTO{ID: 202}, Name: "Table 2",
				Seats: []model.Seat{
					{DTO: model.DTO{ID: 305}, Label: "T2-1"},
					{DTO: model.DTO{ID: 306}, Label: "T2-2"},
					{DTO: model.DTO{ID: 307}, Label: "T2-3"},
					{DTO: model.DTO{ID: 308}, Label: "T2-4"},
				},
			},
		},
	},
	{
		DTO: model.DTO{ID: 22}, EventID: 2, Name: "Ballroom A — round tables",
		Tables: []model.Table{
			{
				DTO: model.DTO{ID: 203}, Name: "Round 1",
				Seats: []model.Seat{
					{DTO: model.DTO{ID: 309}, Label: "R1-1"},
					{DTO: model.DTO{ID: 310}, Label: "R1-2"},
					{DTO: model.DTO{ID: 311}, Label: "R1-3"},
				},
			},
		},
	},
}

var seedOrganizations = []model.Organization{
	{DTO: model.DTO{ID: 401}, Name: "Office of the Presidency", Type: "MINISTRY", Status: "ACTIVE"},
	{DTO: model.DTO{ID: 402}, Name: "Embassy of Aurelia", Type: "EMBASSY", Status: "ACTIVE"},
	{DTO: model.DTO{ID: 403}, Name: "Embassy of Nordmark", Type: "EMBASSY", Status: "ACTIVE"},
	{DTO: model.DTO{ID: 404}, Name: "Meridian Press Agency", Type: "MEDIA", Status: "ACTIVE"},
	{DTO: model.DTO{ID: 405}, Name: "Eastgate Trade Council", Type: "NGO", Status: "ACTIVE"},
}

var seedUsers = []model.User{
	{DTO: model.DTO{ID: 501}, FullName: "Adaeze Okonkwo", Email: "a.okonkwo@protocol.example", Role: "PROTOCOL_CHIEF", Status: "ACTIVE", Locale: "en", Timezone: "Africa/Lagos"},
	{DTO: model.DTO{ID: 502}, FullName: "Miguel Santos", Email: "m.santos@protocol.example", Role: "EVENT_MANAGER", Status: "ACTIVE", Locale: "pt", Timezone: "Europe/Lisbon"},
	{DTO: model.DTO{ID: 503}, FullName: "Fatima Noor", Email: "f.noor@protocol.example", Role: "USHER", Status: "ACTIVE", Locale: "en", Timezone: "Asia/Dubai"},
}
