package utils

import (
	"strconv"
	"strings"
)

// ToInt converts integers, whole floats and decimal strings to int.
// It reports false for anything else, including empty strings.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		return ToInt(string(v))
	default:
		return 0, false
	}
}

// ToBool converts flags to bool. Numbers are true when equal to 1; strings
// accept "1", "true", "yes" and "on" in any case.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	default:
		i, ok := ToInt(v)
		return ok && i == 1
	}
}
