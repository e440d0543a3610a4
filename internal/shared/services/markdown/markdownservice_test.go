package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized("**Coupure d'eau** jeudi de 9h à 12h")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>")
	assert.Contains(t, html, "Coupure d&#39;eau")
}

func TestService_StripsScriptTags(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized(`Bonjour <script>alert("xss")</script> à tous`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
}

func TestService_StripsEventHandlers(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
	require.NoError(t, err)
	assert.NotContains(t, html, "onerror")
}

func TestService_KeepsLinks(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized("Voir https://mairie.example.fr pour les détails")
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="https://mairie.example.fr"`)
}
