package flag

import (
	"fmt"
	"reflect"
)

// Ref is a read/write handle on the storage behind a flag. The parser only
// ever talks to a Ref; it never knows whether the value lives in a Cell, a
// caller's variable, a struct field or a map entry.
//
// Set is called once when the flag is defined (to store the default) and
// then once per occurrence of the flag on the command line.
type Ref[T any] interface {
	Get() T
	Set(T)
}

// peeker is implemented by refs that can be read without the
// read-before-Parse check, for rendering values in usage and Visit output.
type peeker[T any] interface {
	peek() T
}

// Cell is a Ref that owns its value. Cells returned by the flag definition
// functions (Bool, Int, String, ...) belong to their FlagSet and may only be
// read once that set has been parsed.
type Cell[T any] struct {
	v     T
	owner *FlagSet
	name  string
}

// NewCell returns a free-standing Cell holding v.
func NewCell[T any](v T) *Cell[T] { return &Cell[T]{v: v} }

// Get returns the value held by the cell. It panics if the cell belongs to a
// FlagSet that has not been parsed yet.
func (c *Cell[T]) Get() T {
	if c.owner != nil && !c.owner.parsed {
		panic(newPanic("flag: -%s read before %s was parsed", c.name, c.owner.describe()))
	}
	return c.v
}

// Set replaces the value held by the cell.
func (c *Cell[T]) Set(v T) { c.v = v }

func (c *Cell[T]) peek() T { return c.v }

func (c *Cell[T]) String() string { return fmt.Sprintf("Cell(%v)", c.v) }

// ptrRef adapts a plain Go pointer.
type ptrRef[T any] struct{ p *T }

// Pointer returns a Ref that reads and writes *p.
func Pointer[T any](p *T) Ref[T] {
	if p == nil {
		panic(newPanic("flag: Pointer called with a nil %s", reflect.TypeFor[*T]()))
	}
	return ptrRef[T]{p: p}
}

func (r ptrRef[T]) Get() T  { return *r.p }
func (r ptrRef[T]) Set(v T) { *r.p = v }

// FieldRef is a Ref to a named field of a struct owned by the caller. The
// field is looked up by name on every access, so a FieldRef never holds a
// stale reflect.Value.
type FieldRef[T any] struct {
	obj  any
	name string
}

// Field returns a reference to the field called name in the struct that obj
// points to. The field must be exported and its type must be T or a type
// with T's kind that converts to and from T (for example a named int type
// for Field[int]). Field panics if any of that does not hold.
func Field[T any](obj any, name string) *FieldRef[T] {
	r := &FieldRef[T]{obj: obj, name: name}
	r.field()
	return r
}

func (r *FieldRef[T]) field() reflect.Value {
	v := reflect.ValueOf(r.obj)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		panic(newPanic("flag: field %q needs a non-nil pointer to a struct, got %T", r.name, r.obj))
	}
	st := v.Elem().Type()
	fv := v.Elem().FieldByName(r.name)
	if !fv.IsValid() {
		panic(newPanic("flag: %s has no field %q", st, r.name))
	}
	if !fv.CanSet() {
		panic(newPanic("flag: field %s.%s cannot be set", st, r.name))
	}
	if tt := reflect.TypeFor[T](); !compatibleTypes(fv.Type(), tt) {
		panic(newPanic("flag: field %s.%s is %s, not %s", st, r.name, fv.Type(), tt))
	}
	return fv
}

func compatibleTypes(ft, tt reflect.Type) bool {
	if ft == tt {
		return true
	}
	return ft.Kind() == tt.Kind() && ft.ConvertibleTo(tt) && tt.ConvertibleTo(ft)
}

// Get returns the current value of the field.
func (r *FieldRef[T]) Get() T {
	fv := r.field()
	tt := reflect.TypeFor[T]()
	if fv.Type() != tt {
		fv = fv.Convert(tt)
	}
	return fv.Interface().(T)
}

// Set stores v in the field.
func (r *FieldRef[T]) Set(v T) {
	fv := r.field()
	nv := reflect.ValueOf(&v).Elem()
	if fv.Type() != nv.Type() {
		nv = nv.Convert(fv.Type())
	}
	fv.Set(nv)
}

func (r *FieldRef[T]) String() string {
	return fmt.Sprintf("Field(%T.%s)", r.obj, r.name)
}

// KeyRef is a Ref to one entry of a map owned by the caller.
//
// The first Set creates the entry (defining a flag does this when it stores
// the default). Every later Set requires the entry to still be present:
// deleting it between definition and Parse is a programming error and
// panics.
type KeyRef[K comparable, V any] struct {
	m     map[K]V
	key   K
	bound bool
}

// Key returns a reference to m[key]. It panics if m is nil.
func Key[K comparable, V any](m map[K]V, key K) *KeyRef[K, V] {
	if m == nil {
		panic(newPanic("flag: Key(%v) called with a nil map", key))
	}
	return &KeyRef[K, V]{m: m, key: key}
}

// Get returns m[key]. It panics if the entry is absent.
func (r *KeyRef[K, V]) Get() V {
	v, ok := r.m[r.key]
	if !ok {
		panic(newPanic("flag: key %v is not present", r.key))
	}
	return v
}

// Set stores v at m[key].
func (r *KeyRef[K, V]) Set(v V) {
	if r.bound {
		if _, ok := r.m[r.key]; !ok {
			panic(newPanic("flag: key %v was deleted after it was bound", r.key))
		}
	}
	r.m[r.key] = v
	r.bound = true
}

func (r *KeyRef[K, V]) String() string { return fmt.Sprintf("Key(%v)", r.key) }

// EntryRef is a Ref to a typed entry of an untyped map, such as one decoded
// from YAML or JSON. The entry must keep holding a T: Get panics if it has
// been replaced with a value of another type.
type EntryRef[T any] struct {
	m     map[string]any
	key   string
	bound bool
}

// Entry returns a reference to the T stored at m[key]. It panics if m is nil.
func Entry[T any](m map[string]any, key string) *EntryRef[T] {
	if m == nil {
		panic(newPanic("flag: Entry(%q) called with a nil map", key))
	}
	return &EntryRef[T]{m: m, key: key}
}

// Get returns m[key] as a T.
func (r *EntryRef[T]) Get() T {
	v, ok := r.m[r.key]
	if !ok {
		panic(newPanic("flag: key %q is not present", r.key))
	}
	t, ok := v.(T)
	if !ok {
		panic(newPanic("flag: key %q holds %T, not %s", r.key, v, reflect.TypeFor[T]()))
	}
	return t
}

// Set stores v at m[key].
func (r *EntryRef[T]) Set(v T) {
	if r.bound {
		if _, ok := r.m[r.key]; !ok {
			panic(newPanic("flag: key %q was deleted after it was bound", r.key))
		}
	}
	r.m[r.key] = v
	r.bound = true
}

func (r *EntryRef[T]) String() string { return fmt.Sprintf("Entry(%q)", r.key) }
