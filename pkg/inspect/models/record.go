// Package models defines data structures for template inspection.
package models

import (
	"bytes"
	"encoding/json"
)

// Record is an insertion-ordered mapping from header text to a sample cell
// value. Setting an existing key overwrites its value but keeps the key's
// original position, so duplicate headers leave the last value at the first
// key's slot.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores value under key, preserving the key's first insertion position.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of keys in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order. The returned slice must not be
// modified by callers.
func (r *Record) Keys() []string {
	return r.keys
}

// MarshalJSON renders the record as a JSON object with keys in insertion
// order rather than the sorted order a plain map would produce.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || len(r.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
