package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorRendersTemplateData(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T("en", "verification.unknown_email", map[string]any{"Email": "a@b.com"})

	assert.Equal(t, "Email 'a@b.com' was not used for Rodeo. Please try another one", got)
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T("de", "reminder.starting_soon", nil)

	assert.Equal(t, "Starting in 5 minutes!", got)
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "nope.missing", tr.T("en", "nope.missing", nil))
}

func TestTranslatorFrenchCatalog(t *testing.T) {
	tr := NewTranslator("fr")

	got := tr.T("fr", "verification.granted", nil)

	assert.Equal(t, "Merci d'avoir vérifié ton email.", got)
}
