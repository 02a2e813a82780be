package numeric

import (
	"encoding/json"
	"math"
	"testing"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  float64
		want float64
	}{
		{"nil", nil, 0, 0},
		{"nil with default", nil, 7, 7},
		{"float", 1.5, 0, 1.5},
		{"int", 42, 0, 42},
		{"int64", int64(-3), 0, -3},
		{"json number", json.Number("2e9"), 0, 2e9},
		{"bad json number", json.Number("abc"), 3, 3},
		{"numeric string", " 12.25 ", 0, 12.25},
		{"empty string", "", 9, 9},
		{"garbage string", "n/a", 0, 0},
		{"bool", true, 4, 4},
		{"map", map[string]any{"usd": 1}, 0, 0},
		{"nan", math.NaN(), 5, 5},
		{"inf", math.Inf(1), 6, 6},
		{"nan string", "NaN", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToFloat(tt.in, tt.def); got != tt.want {
				t.Errorf("ToFloat(%v, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
			}
		})
	}
}
