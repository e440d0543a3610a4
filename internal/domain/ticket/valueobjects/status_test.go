package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_IsValid(t *testing.T) {
	valid := []TicketStatus{StatusOpen, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, TicketStatus("pending").IsValid())
	assert.False(t, TicketStatus("").IsValid())
	assert.False(t, TicketStatus("OPEN").IsValid())
}

func TestTicketStatus_CanTransitionTo_Forward(t *testing.T) {
	tests := []struct {
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{StatusOpen, StatusAssigned, true},
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusClosed, true},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusResolved, true},
		{StatusInProgress, StatusResolved, true},
		{StatusResolved, StatusClosed, true},

		{StatusAssigned, StatusOpen, false},
		{StatusInProgress, StatusAssigned, false},
		{StatusResolved, StatusInProgress, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusResolved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestTicketStatus_CanTransitionTo_SameStatus(t *testing.T) {
	for _, s := range []TicketStatus{StatusOpen, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed} {
		assert.False(t, s.CanTransitionTo(s))
	}
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = NewTicketStatus("bogus")
	assert.Error(t, err)
}
