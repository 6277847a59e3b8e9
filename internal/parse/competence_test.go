package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompetence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "month dash year", input: "jan-24", want: "01/2024"},
		{name: "uppercase without separator", input: "DEC23", want: "12/2023"},
		{name: "mixed case", input: "Mar-24", want: "03/2024"},
		{name: "embedded token", input: "ref apr-24", want: "04/2024"},
		{name: "installment counter passes through", input: "14/60", want: "14/60"},
		{name: "unknown month passes through", input: "xyz-24", want: "xyz-24"},
		{name: "empty passes through", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Competence(tt.input))
		})
	}
}
