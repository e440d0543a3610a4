package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "residconnect/internal/shared/errors"
)

type sampleRequest struct {
	Title    string `json:"titre" validate:"required,max=10"`
	Category string `json:"categorie" validate:"required,oneof=intervention evenement general"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Title: "Coupure", Category: "general"})
	assert.NoError(t, err)
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Category: "general"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "titre")
}

func TestValidateStruct_OneOf(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Title: "Coupure", Category: "annonce"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categorie")
}
