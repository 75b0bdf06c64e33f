package handlers

import (
	"encoding/json"
	"reflect"
)

// Nullable tells an absent JSON field apart from an explicit null.
// Set is true whenever the key was present; Value is nil for null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// nullableString lets binding tags such as max=50 apply to the wrapped value.
// Absent and null both validate as empty.
func nullableString(field reflect.Value) interface{} {
	if n, ok := field.Interface().(Nullable[string]); ok && n.Value != nil {
		return *n.Value
	}
	return nil
}
