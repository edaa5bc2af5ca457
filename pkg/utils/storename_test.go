package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStoreName(t *testing.T) {
	tests := []struct {
		name     string
		rawName  string
		expected string
	}{
		{
			name:     "Nome invertido com sigla jurídica",
			rawName:  "Restaurante Sabor do Norte LTDA - Ingrediente Certo Centro",
			expected: "Ingrediente Certo Centro Restaurante Sabor do Norte LTDA",
		},
		{
			name:     "Sigla jurídica isolada é descartada",
			rawName:  "LTDA - Ingrediente Certo Matriz",
			expected: "Ingrediente Certo Matriz",
		},
		{
			name:     "Múltiplas partes com ruído",
			rawName:  "Silva - ME - Ingrediente Certo Praia",
			expected: "Ingrediente Certo Praia Silva",
		},
		{
			name:     "Sem separador volta inalterado",
			rawName:  "Loja X",
			expected: "Loja X",
		},
		{
			name:     "String vazia não quebra",
			rawName:  "",
			expected: "",
		},
		{
			name:     "Só separadores e espaços não quebra",
			rawName:  " - ",
			expected: "",
		},
		{
			name:     "Sigla em caixa baixa também é ruído",
			rawName:  "ltda - Ingrediente Certo Norte",
			expected: "Ingrediente Certo Norte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatStoreName(tt.rawName))
		})
	}
}
