package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReference(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"plain id", "CMD12345", "CMD12345", true},
		{"embedded in sentence", "Où en est ma commande CMD12345 s'il vous plaît ?", "CMD12345", true},
		{"lowercase", "statut de cmd67890", "CMD67890", true},
		{"mixed case", "Cmd42 est-elle expédiée ?", "CMD42", true},
		{"first occurrence wins", "cmd111 ou CMD222 ?", "CMD111", true},
		{"prefix without digits", "où est ma CMD ?", "", false},
		{"digits without prefix", "commande 12345", "", false},
		{"no reference", "Quels sont vos horaires ?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := DetectReference(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
