package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		canCheckIn  bool
		canCheckOut bool
		canCancel   bool
		active      bool
		terminal    bool
	}{
		{StatusConfirmed, true, true, true, true, false},
		{StatusCheckedIn, false, true, true, true, false},
		{StatusCheckedOut, false, false, false, false, true},
		{StatusCancelled, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.canCheckIn, b.CanCheckIn())
			assert.Equal(t, tt.canCheckOut, b.CanCheckOut())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}

func TestBookingTeamHead(t *testing.T) {
	b := &Booking{
		Members: []Member{
			{ID: 11, Position: 1, Name: "Second"},
			{ID: 10, Position: 0, Name: "Head"},
		},
	}

	head := b.TeamHead()
	require.NotNil(t, head)
	assert.Equal(t, int64(10), head.ID)
	assert.Equal(t, "Head", head.Name)

	empty := &Booking{}
	assert.Nil(t, empty.TeamHead())
}

func TestBookingMemberCount(t *testing.T) {
	b := &Booking{Members: []Member{{}, {}, {}}}
	assert.Equal(t, 3, b.MemberCount())
}

func TestSharedPatchIsEmpty(t *testing.T) {
	patch := BookingSharedPatch{}
	assert.True(t, patch.IsEmpty())

	mobile := "9998887766"
	patch.Mobile = &mobile
	assert.False(t, patch.IsEmpty())
}

func TestMemberIdentityPatchIsEmpty(t *testing.T) {
	patch := MemberIdentityPatch{}
	assert.True(t, patch.IsEmpty())

	age := 30
	patch.Age = &age
	assert.False(t, patch.IsEmpty())
}
