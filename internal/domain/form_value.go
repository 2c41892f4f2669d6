package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FormValue is a submitted form field that accepts any JSON type.
// Falsy values (null, false, 0, "") decode to the empty string, so the
// required rule reports them as missing. Other values are rendered as text
// the way the forms' own template literals would print them.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FormValue(formText(raw, true))
	return nil
}

func (v FormValue) String() string {
	return string(v)
}

// formText renders a decoded JSON value. top marks the field itself, where
// falsy scalars collapse to "" instead of printing "false" or "0".
func formText(val any, top bool) string {
	switch t := val.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t && top {
			return ""
		}
		return strconv.FormatBool(t)
	case float64:
		if t == 0 {
			if top {
				return ""
			}
			return "0"
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = formText(item, false)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
