package report

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cast"
)

// Tokens substituted for missing values.
const (
	tokenNaN = "NaN"
	tokenNil = "None"
)

// formatValue renders a single cell or metric value. Floats use a fixed
// number of decimals unless the value is integral, in which case the
// fractional part is dropped. Integers and strings pass through verbatim;
// nil becomes "None" and NaN becomes "NaN".
func formatValue(v any, decimals int) string {
	switch x := v.(type) {
	case nil:
		return tokenNil
	case string:
		return x
	case float64:
		return formatFloat(x, decimals)
	case float32:
		return formatFloat(float64(x), decimals)
	default:
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64, decimals int) string {
	switch {
	case math.IsNaN(f):
		return tokenNaN
	case math.IsInf(f, 0):
		return strconv.FormatFloat(f, 'f', -1, 64)
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// isNumeric reports whether v is a numeric scalar. NaN and nil count as
// numeric for column-alignment purposes so that a column of floats with
// missing entries still aligns right.
func isNumeric(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// kindOf classifies a value for mixed-type reporting.
func kindOf(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case bool:
		return "bool"
	case float32, float64:
		return "float"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "int"
	default:
		switch reflect.ValueOf(x).Kind() {
		case reflect.Slice, reflect.Array:
			return "sequence"
		case reflect.Map:
			return "mapping"
		}
	}
	return "other"
}

// isScalar reports whether v renders inline as a single value.
func isScalar(v any) bool {
	switch kindOf(v) {
	case "nil", "string", "bool", "float", "int":
		return true
	}
	return false
}
