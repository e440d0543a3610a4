package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// statusOrder encodes the linear lifecycle. Transitions may only move
// forward; there is no reopen path.
var statusOrder = map[TicketStatus]int{
	StatusOpen:       0,
	StatusAssigned:   1,
	StatusInProgress: 2,
	StatusResolved:   3,
	StatusClosed:     4,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	_, ok := statusOrder[ts]
	return ok
}

// CanTransitionTo reports whether newStatus is strictly later in the
// lifecycle. Skipping intermediate states is allowed (an open ticket
// can go straight to in_progress).
func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	from, ok := statusOrder[ts]
	if !ok {
		return false
	}
	to, ok := statusOrder[newStatus]
	if !ok {
		return false
	}
	return to > from
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsAssigned() bool {
	return ts == StatusAssigned
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
