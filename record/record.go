// Package record implements the Name->Field mapping that the streaming
// parser decodes one record at a time, and that the predicate AST
// evaluates against.
package record

import (
	"github.com/kvrecs/fql/name"
	"github.com/kvrecs/fql/value"
)

// defaultWidth is the expected record width new MutableRecords preallocate
// for, per the component-design default of 1024 slots.
const defaultWidth = 1024

// Record maps interned field names to their typed values.
type Record struct {
	fields map[name.Name]value.Value
}

// Get returns the field's value, or value.NullValue if absent.
func (r *Record) Get(n name.Name) value.Value {
	if r.fields == nil {
		return value.NullValue
	}
	if v, ok := r.fields[n]; ok {
		return v
	}
	return value.NullValue
}

// Has reports whether n is present and non-Null.
func (r *Record) Has(n name.Name) bool {
	v, ok := r.fields[n]
	return ok && !v.IsNull()
}

// Each invokes cb for every (Name, Field) pair. Iteration order is
// unspecified; Null entries, such as those left by MutableRecord.Clear,
// are included.
func (r *Record) Each(cb func(name.Name, value.Value)) {
	for n, v := range r.fields {
		cb(n, v)
	}
}

// MutableRecord is a Record that can be populated and reused across
// parses of a stream without reallocating its backing map.
type MutableRecord struct {
	Record
}

// NewMutable returns a MutableRecord preallocated for defaultWidth fields.
func NewMutable() *MutableRecord {
	return &MutableRecord{Record{fields: make(map[name.Name]value.Value, defaultWidth)}}
}

// Set stores value under name, returning true if the field was
// previously absent or Null.
func (r *MutableRecord) Set(n name.Name, v value.Value) bool {
	old, existed := r.fields[n]
	r.fields[n] = v
	return !existed || old.IsNull()
}

// Clear marks every entry Null but retains the map's keys and capacity,
// so the allocator is reused across records.
func (r *MutableRecord) Clear() {
	for n := range r.fields {
		r.fields[n] = value.NullValue
	}
}
