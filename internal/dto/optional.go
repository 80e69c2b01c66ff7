package dto

import (
	"bytes"
	"encoding/json"
)

// OptionalString is a PATCH-style field: absent keeps the stored value,
// null clears it, and a string replaces it.
type OptionalString struct {
	Set   bool
	Value *string
}

func SetString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

func NullString() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Apply returns the value to store given the current one.
func (o OptionalString) Apply(current *string) *string {
	if !o.Set {
		return current
	}
	return o.Value
}
