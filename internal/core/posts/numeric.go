package posts

import (
	"encoding/json"
	"strconv"
)

// asInt64 normalizes the numeric representations an extra-fields value
// can arrive in (JSON decoding yields float64 or json.Number, clients
// sometimes send strings) to a single canonical type. Anything
// non-numeric is a formatting error on the named field.
func asInt64(field string, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, NewValidationError(field, "must be a number")
			}
			return int64(f), nil
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(n, 64)
			if ferr != nil {
				return 0, NewValidationError(field, "must be a number")
			}
			return int64(f), nil
		}
		return i, nil
	}
	return 0, NewValidationError(field, "must be a number")
}

// asFloat64 is the float counterpart of asInt64, used for coordinates.
func asFloat64(field string, v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, NewValidationError(field, "must be a number")
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, NewValidationError(field, "must be a number")
		}
		return f, nil
	}
	return 0, NewValidationError(field, "must be a number")
}
