package vendors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"50000", 50000},
		{"50,000", 50000},
		{"1,50,000", 150000},
		{"50,000.50", 50000.50},
		{" 12 500 ", 12500},
		{"", 0},
		{"   ", 0},
		{"N/A", 0},
		{"tbd", 0},
		{"₹50,000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrency(tt.input))
		})
	}
}
