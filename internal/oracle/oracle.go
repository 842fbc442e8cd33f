// Package oracle builds per-type field descriptor tables. A freshly
// constructed value of a parameter type acts as the type oracle during
// decoding: each descriptor records the field's expected kind so raw text
// can be coerced without any declared schema.
package oracle

import (
	"reflect"
	"strings"
	"sync"
)

// Field describes one serializable field of a parameter struct.
type Field struct {
	// Name is the key used in the textual block: the params tag name if
	// present, otherwise the Go field name.
	Name string
	// Index is the field's index path for reflect.Value.FieldByIndex,
	// spanning embedded structs.
	Index []int
	// Type is the field's declared type.
	Type reflect.Type
	// Block marks a nested parameter struct (value or pointer), serialized
	// as its own labeled block.
	Block bool
	// Optional marks a pointer field.
	Optional bool
}

// Table is the descriptor table of a struct type: fields in declaration
// order plus a name lookup.
type Table struct {
	Fields []Field
	byName map[string]int
}

// Lookup resolves a key to a field descriptor. It tries an exact match
// first, then a case-insensitive fallback.
func (t *Table) Lookup(key string) (*Field, bool) {
	if i, ok := t.byName[key]; ok {
		return &t.Fields[i], true
	}
	if i, ok := t.byName[strings.ToLower(key)]; ok {
		return &t.Fields[i], true
	}
	return nil, false
}

// tableCache caches one Table per struct type.
var tableCache sync.Map // map[reflect.Type]*Table

// For returns the descriptor table for struct type t, building and caching
// it on first use.
//
// Exported fields are included in declaration order. Anonymous embedded
// structs are flattened in place, so their fields belong to the embedding
// type's own block. Fields tagged `params:"-"` and unexported fields are
// skipped. A named struct or pointer-to-struct field is a nested block.
func For(t reflect.Type) *Table {
	if cached, ok := tableCache.Load(t); ok {
		return cached.(*Table)
	}

	tbl := &Table{byName: make(map[string]int)}
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			path := append(append([]int(nil), idx...), i)

			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				walk(sf.Type, path)
				continue
			}
			if !sf.IsExported() {
				continue
			}

			tag := sf.Tag.Get("params")
			if tag == "-" {
				continue
			}

			f := Field{Index: path, Type: sf.Type}
			name, _, _ := strings.Cut(tag, ",")
			if name != "" {
				f.Name = name
			} else {
				f.Name = sf.Name
			}

			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				f.Optional = true
				ft = ft.Elem()
			}
			f.Block = ft.Kind() == reflect.Struct

			pos := len(tbl.Fields)
			tbl.Fields = append(tbl.Fields, f)
			tbl.byName[f.Name] = pos
			lower := strings.ToLower(f.Name)
			if _, ok := tbl.byName[lower]; !ok {
				tbl.byName[lower] = pos
			}
		}
	}
	walk(t, nil)

	tableCache.Store(t, tbl)
	return tbl
}
