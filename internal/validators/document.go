package validators

import "strings"

// NormalizeDocument remove toda a pontuação de um CPF/CNPJ, deixando só os
// dígitos — o formato que a API do banco espera no campo devedor.
func NormalizeDocument(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDocumentShapeValid aceita CPF (11 dígitos) ou CNPJ (14 dígitos) já
// normalizados. Não valida dígito verificador.
func IsDocumentShapeValid(doc string) bool {
	d := NormalizeDocument(doc)
	return len(d) == 11 || len(d) == 14
}
