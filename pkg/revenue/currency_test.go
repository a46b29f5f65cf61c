package revenue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "milhares", value: 45000, want: "$45,000"},
		{name: "zero", value: 0, want: "$0"},
		{name: "sem agrupamento", value: 999.49, want: "$999"},
		{name: "arredonda meio para cima", value: 1234.5, want: "$1,235"},
		{name: "milhões", value: 1081348, want: "$1,081,348"},
		{name: "negativo", value: -1234.4, want: "-$1,234"},
		{name: "acima do limite de int64", value: 1e19, want: "$10,000,000,000,000,000,000"},
		{name: "negativo acima do limite de int64", value: -1e20, want: "-$100,000,000,000,000,000,000"},
		{name: "negativo que arredonda para zero", value: -0.4, want: "$0"},
		{name: "NaN", value: math.NaN(), want: "$0"},
		{name: "infinito", value: math.Inf(1), want: "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.value))
		})
	}
}
