package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/model"
)

func TestInvite(t *testing.T) {
	guest := model.Guest{RSVPStatus: model.RSVPNotInvited}
	require.NoError(t, Invite(&guest))
	assert.Equal(t, model.RSVPInvited, guest.RSVPStatus)

	// Inviting twice is not a valid transition.
	assert.ErrorIs(t, Invite(&guest), ErrInvalidTransition)
}

func TestRespond(t *testing.T) {
	guest := model.Guest{RSVPStatus: model.RSVPInvited}
	require.NoError(t, Respond(&guest, model.RSVPAccepted))
	assert.Equal(t, model.RSVPAccepted, guest.RSVPStatus)

	// One-directional: no changing the answer afterwards.
	assert.ErrorIs(t, Respond(&guest, model.RSVPDeclined), ErrInvalidTransition)
}

func TestRespond_RequiresInvitation(t *testing.T) {
	guest := model.Guest{RSVPStatus: model.RSVPNotInvited}
	assert.ErrorIs(t, Respond(&guest, model.RSVPAccepted), ErrInvalidTransition)
}

func TestRespond_RejectsNonAnswerStatuses(t *testing.T) {
	guest := model.Guest{RSVPStatus: model.RSVPInvited}
	assert.ErrorIs(t, Respond(&guest, model.RSVPRemoved), ErrInvalidTransition)
	assert.ErrorIs(t, Respond(&guest, model.RSVPInvited), ErrInvalidTransition)
}

func TestRemove_FromAnyState(t *testing.T) {
	for _, status := range []model.RSVPStatus{
		model.RSVPNotInvited, model.RSVPInvited,
		model.RSVPAccepted, model.RSVPDeclined,
	} {
		guest := model.Guest{RSVPStatus: status}
		Remove(&guest)
		assert.Equal(t, model.RSVPRemoved, guest.RSVPStatus, "from %s", status)
	}
}
