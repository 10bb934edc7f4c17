// Package normalize normaliza términos de búsqueda para comparaciones sin
// tildes ni mayúsculas: "Señalización" y "senalizacion" deben coincidir.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // marcas diacríticas
	norm.NFC,
)

// Term devuelve el término en minúsculas y sin marcas diacríticas, con los
// espacios de los extremos recortados. Si la transformación falla (entrada no
// UTF-8 válida) devuelve el término en minúsculas tal cual.
func Term(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}
