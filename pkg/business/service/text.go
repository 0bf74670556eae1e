package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9 ]`)

type ITextService interface {
	Transliterate(input string) string
	Slugify(input string) string
}

// TextService normalizes remote catalog text into URL-safe form.
type TextService struct{}

func NewTextService() *TextService {
	return &TextService{}
}

// Transliterate lowercases the input and folds diacritics to their
// base letters, so "Rosévin" becomes "rosevin".
func (ts *TextService) Transliterate(input string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, strings.ToLower(input))
	if err != nil {
		return strings.ToLower(input)
	}
	return folded
}

// Slugify transliterates the input, drops everything outside
// [a-z0-9 ] and joins the remaining words with dashes.
func (ts *TextService) Slugify(input string) string {
	folded := ts.Transliterate(input)
	cleaned := nonSlugChars.ReplaceAllString(folded, "")
	return strings.ReplaceAll(cleaned, " ", "-")
}
