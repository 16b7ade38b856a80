package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func eventStartingAt(hour, minute int) model.Event {
	return model.Event{
		DTO:       model.DTO{ID: 1},
		Name:      "Evening Reception",
		StartTime: time.Date(2026, 9, 2, hour, minute, 0, 0, time.UTC),
		Status:    model.EventLive,
	}
}

func TestCheckIn_OnTime(t *testing.T) {
	event := eventStartingAt(19, 0)
	guest := model.Guest{DTO: model.DTO{ID: 1}, CheckInStatus: model.NotArrived, EventID: 1}

	at := time.Date(2026, 9, 2, 18, 55, 0, 0, time.UTC)
	require.NoError(t, CheckIn(&guest, event, at))

	assert.Equal(t, model.CheckedIn, guest.CheckInStatus)
	require.NotNil(t, guest.CheckInTime)
	assert.Equal(t, at, *guest.CheckInTime)
	assert.False(t, guest.IsLate)
}

func TestCheckIn_Late(t *testing.T) {
	event := eventStartingAt(19, 0)
	guest := model.Guest{DTO: model.DTO{ID: 1}, CheckInStatus: model.NotArrived, EventID: 1}

	at := time.Date(2026, 9, 2, 19, 25, 0, 0, time.UTC)
	require.NoError(t, CheckIn(&guest, event, at))

	assert.True(t, guest.IsLate)
}

func TestCheckIn_ExactlyAtStartIsNotLate(t *testing.T) {
	event := eventStartingAt(19, 0)
	guest := model.Guest{DTO: model.DTO{ID: 1}, CheckInStatus: model.NotArrived}

	require.NoError(t, CheckIn(&guest, event, event.StartTime))
	assert.False(t, guest.IsLate, "isLate is true only strictly after start")
}

func TestCheckIn_DuplicateKeepsOriginalRecord(t *testing.T) {
	event := eventStartingAt(19, 0)
	guest := model.Guest{DTO: model.DTO{ID: 1}, CheckInStatus: model.NotArrived}

	first := time.Date(2026, 9, 2, 19, 10, 0, 0, time.UTC)
	require.NoError(t, CheckIn(&guest, event, first))

	err := CheckIn(&guest, event, first.Add(30*time.Minute))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Equal(t, first, *guest.CheckInTime, "original timestamp stands")
	assert.True(t, guest.IsLate)
}

func TestConfirmReEntry(t *testing.T) {
	event := eventStartingAt(19, 0)
	guest := model.Guest{DTO: model.DTO{ID: 1}, CheckInStatus: model.NotArrived}

	assert.ErrorIs(t, ConfirmReEntry(&guest), ErrNotCheckedIn)

	at := time.Date(2026, 9, 2, 18, 40, 0, 0, time.UTC)
	require.NoError(t, CheckIn(&guest, event, at))

	require.NoError(t, ConfirmReEntry(&guest))
	assert.Equal(t, at, *guest.CheckInTime)
	assert.False(t, guest.IsLate)
}
