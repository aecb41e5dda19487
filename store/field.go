package store

import "github.com/killzin666/ozone/field"

// Field is the subset of field.IndexedField/field.UnIndexedField's surface
// the store needs to evaluate filters and partitions uniformly over either
// storage shape. Both concrete field types already satisfy it.
type Field interface {
	Descriptor() field.Descriptor
	RowHasValue(row int, v interface{}) bool
	Values(row int) []interface{}
}
