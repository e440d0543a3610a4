package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "residconnect/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	tkt, err := NewTicket(
		"Fuite sous l'évier",
		"L'eau coule en continu sous l'évier de la cuisine",
		vo.CategoryPlumbing,
		vo.PriorityMedium,
		"alice@example.com",
		"A12",
		nil,
	)
	require.NoError(t, err)
	return tkt
}

func TestNewTicket_StartsOpen(t *testing.T) {
	tkt := newTestTicket(t)
	assert.Equal(t, vo.StatusOpen, tkt.Status())
	assert.False(t, tkt.IsAssigned())
	assert.Nil(t, tkt.ResolvedAt())
}

func TestTicket_Assign_MovesToAssigned(t *testing.T) {
	tkt := newTestTicket(t)

	err := tkt.Assign("recPro123", "plombier@example.com")
	require.NoError(t, err)

	assert.Equal(t, vo.StatusAssigned, tkt.Status())
	assert.Equal(t, "recPro123", tkt.ProfessionalID())
	assert.Equal(t, "plombier@example.com", tkt.AssignedTo())
	assert.True(t, tkt.IsAssigned())
}

func TestTicket_ChangeStatus_ForwardOnly(t *testing.T) {
	tkt := newTestTicket(t)

	require.NoError(t, tkt.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, tkt.ChangeStatus(vo.StatusResolved))

	err := tkt.ChangeStatus(vo.StatusInProgress)
	assert.Error(t, err)
	assert.Equal(t, vo.StatusResolved, tkt.Status())
}

func TestTicket_ChangeStatus_SameStatusIsNoop(t *testing.T) {
	tkt := newTestTicket(t)
	before := tkt.UpdatedAt()

	require.NoError(t, tkt.ChangeStatus(vo.StatusOpen))
	assert.Equal(t, vo.StatusOpen, tkt.Status())
	assert.Equal(t, before, tkt.UpdatedAt())
}

func TestTicket_ChangeStatus_ResolvedSetsTimestampOnce(t *testing.T) {
	tkt := newTestTicket(t)

	require.NoError(t, tkt.ChangeStatus(vo.StatusResolved))
	require.NotNil(t, tkt.ResolvedAt())
	first := *tkt.ResolvedAt()

	require.NoError(t, tkt.ChangeStatus(vo.StatusClosed))
	assert.Equal(t, first, *tkt.ResolvedAt())
}

func TestTicket_ChangeStatus_RejectsUnknownStatus(t *testing.T) {
	tkt := newTestTicket(t)
	err := tkt.ChangeStatus(vo.TicketStatus("archived"))
	assert.Error(t, err)
}

func TestTicket_AttachInvoice(t *testing.T) {
	tkt := newTestTicket(t)

	assert.Error(t, tkt.AttachInvoice(""))

	require.NoError(t, tkt.AttachInvoice("/uploads/reports/ticket_1.pdf"))
	assert.Equal(t, "/uploads/reports/ticket_1.pdf", tkt.InvoiceURL())
}

func TestNewTicket_Validation(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	_, err := NewTicket(string(long), "desc", vo.CategoryPlumbing, vo.PriorityLow, "a@b.fr", "A1", nil)
	assert.Error(t, err)

	_, err = NewTicket("titre", "desc", vo.Category("inconnu"), vo.PriorityLow, "a@b.fr", "A1", nil)
	assert.Error(t, err)

	_, err = NewTicket("titre", "desc", vo.CategoryPlumbing, vo.PriorityLow, "", "A1", nil)
	assert.Error(t, err)
}
