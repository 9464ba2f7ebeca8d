package booking

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value holds one JSON value exactly as the reservation backend sent it.
// The backend mixes numbers and strings for the same field, so values are
// kept raw and only rendered when displayed.
type Value struct {
	raw json.RawMessage
}

func NewValue(raw json.RawMessage) Value {
	if len(raw) == 0 {
		return Value{}
	}
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	return Value{raw: cp}
}

// StringValue builds a Value holding a JSON string.
func StringValue(s string) Value {
	b, _ := json.Marshal(s)
	return Value{raw: b}
}

func (v Value) Raw() json.RawMessage {
	return v.raw
}

// IsZero reports an absent field. An explicit null is present.
func (v Value) IsZero() bool {
	return len(v.raw) == 0
}

// String renders strings unquoted, numbers and booleans verbatim, and null or
// absent values as "". Objects and arrays are rendered as compact JSON.
func (v Value) String() string {
	trimmed := bytes.TrimSpace(v.raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// Truthy follows the backend's JavaScript semantics: absent, null, false,
// 0 and "" are falsy; everything else, including empty objects, is truthy.
func (v Value) Truthy() bool {
	trimmed := bytes.TrimSpace(v.raw)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		return v.String() != ""
	default:
		f, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return true
		}
		return f != 0
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = NewValue(data)
	return nil
}
