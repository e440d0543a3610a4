package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"residconnect/internal/domain/professional"
	vo "residconnect/internal/domain/ticket/valueobjects"
)

func TestRequiredProfessionalType(t *testing.T) {
	tests := []struct {
		category vo.Category
		expected professional.Type
	}{
		{vo.CategoryPlumbing, professional.TypePlumber},
		{vo.CategoryElectrical, professional.TypeElectrician},
		{vo.CategoryConcierge, professional.TypeConcierge},
		{vo.CategoryOther, professional.TypeAgency},
	}

	for _, tt := range tests {
		profType, ok := RequiredProfessionalType(tt.category)
		assert.True(t, ok, "category %s", tt.category)
		assert.Equal(t, tt.expected, profType)
	}
}

func TestRequiredProfessionalType_UnknownCategory(t *testing.T) {
	_, ok := RequiredProfessionalType(vo.Category("jardinage"))
	assert.False(t, ok)
}
