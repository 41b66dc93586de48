package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale("")
	assert.NoError(t, err)
	assert.Equal(t, LocaleEN, loc)

	loc, err = ParseLocale("tr")
	assert.NoError(t, err)
	assert.Equal(t, LocaleTR, loc)

	_, err = ParseLocale("de")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestRejectionMessageFallsBackToEnglish(t *testing.T) {
	en := RejectionMessage(ErrContainsURL, LocaleEN)
	tr := RejectionMessage(ErrContainsURL, LocaleTR)
	assert.NotEmpty(t, en)
	assert.NotEmpty(t, tr)
	assert.NotEqual(t, en, tr)

	// infrastructure errors have no display text
	assert.Empty(t, RejectionMessage(assert.AnError, LocaleTR))
}
