package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifySwedishCategory(t *testing.T) {
	ts := NewTextService()

	src := "Sju komma två'an roséviner"
	expect := "sju-komma-tvaan-roseviner"
	assert.Equal(t, expect, ts.Slugify(src))
}

func TestSlugifyPlainText(t *testing.T) {
	ts := NewTextService()

	assert.Equal(t, "rott-vin", ts.Slugify("Rött vin"))
	assert.Equal(t, "ol", ts.Slugify("Öl"))
	assert.Equal(t, "123-abc", ts.Slugify("123 ABC"))
}

func TestSlugifyDropsPunctuation(t *testing.T) {
	ts := NewTextService()

	assert.Equal(t, "mousserande-vin", ts.Slugify("Mousserande vin!"))
	assert.Equal(t, "", ts.Slugify("???"))
}

func TestTransliterate(t *testing.T) {
	ts := NewTextService()

	assert.Equal(t, "rosevin", ts.Transliterate("Rosévin"))
	assert.Equal(t, "aao", ts.Transliterate("ÅÄÖ"))
}
