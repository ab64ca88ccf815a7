package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1133334444", "(11) 3333-4444"},
		{"11987654321", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"11 98765 4321", "(11) 98765-4321"},

		// fora dos tamanhos conhecidos: devolve como chegou
		{"123", "123"},
		{"", ""},
		{"+55 11 98765-4321", "+55 11 98765-4321"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.in), "entrada %q", tt.in)
	}
}
