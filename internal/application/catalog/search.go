package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// fold minúsculas y sin acentos ("Café" -> "cafe").
// transform.Chain guarda estado: se arma uno por llamada.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matches aplica el filtro de búsqueda: nombre o SKU por subcadena normalizada,
// código de barras por subcadena exacta.
func matches(p *entity.Product, term string) bool {
	if term == "" {
		return true
	}
	f := fold(term)
	return strings.Contains(fold(p.Name), f) ||
		strings.Contains(fold(p.SKU), f) ||
		(p.Barcode != "" && strings.Contains(p.Barcode, term))
}
