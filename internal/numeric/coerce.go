// Package numeric converts loosely typed provider fields into numbers.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFloat returns v as a finite float64, or def when v is absent, not
// numeric, or not finite. It never panics.
func ToFloat(v any, def float64) float64 {
	var f float64

	switch n := v.(type) {
	case nil:
		return def
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return def
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
