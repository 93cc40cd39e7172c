package models

// Accessors for the map representation used by the serialization boundary.
// Values may arrive from JSON decoding, so numbers show up as float64 and
// lists as []any.

func mapString(m map[string]any, key, fallback string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case Role:
		return string(s)
	case BadgeType:
		return string(s)
	case SprintStatus:
		return string(s)
	}
	return fallback
}

func mapBool(m map[string]any, key string, fallback bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return fallback
}

func mapInt(m map[string]any, key string, fallback int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

func mapStrings(m map[string]any, key string) StringList {
	switch v := m[key].(type) {
	case StringList:
		return append(StringList(nil), v...)
	case []string:
		return append(StringList(nil), v...)
	case []any:
		out := make(StringList, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
