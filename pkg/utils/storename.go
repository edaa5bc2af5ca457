package utils

import "strings"

// Siglas jurídicas que não fazem parte do nome comercial da loja
var legalNoise = map[string]bool{
	"ME":     true,
	"S.A.":   true,
	"LTDA":   true,
	"EIRELI": true,
	"EPP":    true,
	"EI":     true,
	"FILHOS": true,
}

// FormatStoreName limpa o nome de loja vindo da base operacional, que segue
// a convenção invertida "Razão Social - Nome Fantasia". Prioriza o nome
// comercial (última parte) e descarta siglas jurídicas do restante.
// É apenas um ajuste de exibição: nunca falha, e nomes sem separador
// voltam inalterados.
func FormatStoreName(rawName string) string {
	if !strings.Contains(rawName, " - ") {
		return rawName
	}

	parts := strings.Split(rawName, " - ")
	if len(parts) < 2 {
		return rawName
	}

	principal := strings.TrimSpace(parts[len(parts)-1])

	contextParts := make([]string, 0, len(parts)-1)
	for _, part := range parts[:len(parts)-1] {
		clean := strings.TrimSpace(part)
		if clean == "" || legalNoise[strings.ToUpper(clean)] {
			continue
		}
		contextParts = append(contextParts, clean)
	}

	context := strings.TrimSpace(strings.Join(contextParts, " "))
	if context == "" {
		return principal
	}

	return principal + " " + context
}
