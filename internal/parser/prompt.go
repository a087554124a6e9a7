package parser

import (
	"fmt"
	"unicode/utf8"

	"docval/internal/domain"
)

// DefaultMaxChars is how much document text is sent to the model when the
// provider config does not say otherwise.
const DefaultMaxChars = 8000

// BuildExtractionPrompt returns the prompt asking the model to identify the
// document kind and identity fields of a LATAM legal or fiscal document.
func BuildExtractionPrompt(country string, personType domain.PersonType, text string, maxChars int) string {
	return fmt.Sprintf(`Eres un asistente experto en lectura de documentos legales y fiscales de LATAM.

Contexto:
- País: %s
- Tipo de contribuyente: %s

Del siguiente texto de un PDF, extrae (si existen) los campos:
- tipo_documento: (ejemplos según el país/contexto: "RUT", "Camara de Comercio",
  "Certificado Bancario", "Constancia de Situacion Fiscal", "INE", "CPF", "CNPJ",
  "CUIT", "RUC", etc.)
- razon_social
- identificacion (NIT, RFC, CNPJ, CUIT, RUC, etc., según corresponda)
- fecha_emision (en formato YYYY-MM-DD si puedes inferirla)
- fecha_vencimiento (en formato YYYY-MM-DD si aplica, si no aplica usar null)

Si algún dato no se encuentra, usa null.

Responde SOLO un JSON con exactamente estas claves:
{"tipo_documento": ..., "razon_social": ..., "identificacion": ..., "fecha_emision": ..., "fecha_vencimiento": ...}

Texto del documento:
"""%s"""`, country, personType.Label(), TruncateText(text, maxChars))
}

// TruncateText cuts text to at most maxChars runes. A non-positive maxChars
// uses DefaultMaxChars.
func TruncateText(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxChars])
}
