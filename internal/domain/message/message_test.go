package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "residconnect/internal/domain/message/valueobjects"
)

func TestNewMessage_AuthorLink(t *testing.T) {
	m, err := NewMessage("Vide-grenier", "Samedi dans la cour", vo.CategoryEvent, "recTenant1", "")
	require.NoError(t, err)
	assert.True(t, m.AuthoredByTenant())
	assert.Equal(t, "recTenant1", m.TenantID())
	assert.WithinDuration(t, time.Now(), m.CreatedAt(), time.Minute)

	m, err = NewMessage("Coupure d'eau", "Jeudi matin", vo.CategoryIntervention, "", "recAgency1")
	require.NoError(t, err)
	assert.False(t, m.AuthoredByTenant())
	assert.Equal(t, "recAgency1", m.ProfessionalID())
}

func TestNewMessage_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		body           string
		category       vo.Category
		tenantID       string
		professionalID string
	}{
		{"empty title", "", "b", vo.CategoryGeneral, "recTenant1", ""},
		{"empty body", "t", "", vo.CategoryGeneral, "recTenant1", ""},
		{"invalid category", "t", "b", vo.Category("annonce"), "recTenant1", ""},
		{"no author", "t", "b", vo.CategoryGeneral, "", ""},
		{"both authors", "t", "b", vo.CategoryGeneral, "recTenant1", "recAgency1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMessage(tt.title, tt.body, tt.category, tt.tenantID, tt.professionalID)
			assert.Error(t, err)
		})
	}
}

func TestMessage_SetIDOnce(t *testing.T) {
	m, err := NewMessage("t", "b", vo.CategoryGeneral, "recTenant1", "")
	require.NoError(t, err)

	require.NoError(t, m.SetID("recMsg1"))
	assert.Error(t, m.SetID("recMsg2"))
}
