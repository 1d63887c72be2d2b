package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateSlug формирует slug из названия компании: убирает диакритику, приводит к нижнему регистру,
// заменяет пробелы и подчеркивания на дефис. Прочие символы вне [a-z0-9-] отбрасываются.
func GenerateSlug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		plain = strings.ToLower(strings.TrimSpace(name))
	}

	var b strings.Builder
	b.Grow(len(plain))
	dash := false
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
