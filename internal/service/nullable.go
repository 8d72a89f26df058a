package service

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes a field left out of a patch from one explicitly set to null
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some returns a Nullable carrying v
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a Nullable explicitly cleared
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the document
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
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

// MarshalJSON writes the value or null
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// column returns the value to store for a set field: nil for null
func (n Nullable[T]) column() interface{} {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}
