package booking

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrNotObject = errors.New("json value is not an object")

type Field struct {
	Key   string
	Value Value
}

// Object is a JSON object decoded with its keys in document order.
type Object []Field

func DecodeObject(raw json.RawMessage) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	obj := Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, ErrNotObject
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		obj = append(obj, Field{Key: key, Value: NewValue(val)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// Get returns the last occurrence of key, matching encoding/json's duplicate handling.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return Value{}, false
}

func (o Object) First() (Value, bool) {
	if len(o) == 0 {
		return Value{}, false
	}
	return o[0].Value, true
}
