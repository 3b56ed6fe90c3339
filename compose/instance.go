package compose

import (
	"fmt"
	"reflect"
)

// Group assigns one value to several field names at once.
type Group struct {
	Names []string
	Value any
}

// InstanceConfig describes one instantiation. Methods given here are
// bound to the type, not the instance, so later instances see them too.
type InstanceConfig struct {
	// Values sets individual fields.
	Values map[string]any
	// Grouped expands each group into one field per name, all holding
	// the group's value.
	Grouped []Group
	// Methods are bound to the instance's type.
	Methods []Method
}

// Instance is one value of a composed [Type].
type Instance struct {
	typ        *Type
	fields     map[string]any
	fieldOrder []string
}

// New creates an instance of t. Fields come from the type's defaults,
// then cfg.Values, then cfg.Grouped; a field named by more than one of
// the instantiation slots fails with ErrFieldCollision.
func (t *Type) New(cfg InstanceConfig) (*Instance, error) {
	if err := t.bind(cfg.Methods); err != nil {
		return nil, err
	}
	inst := &Instance{typ: t, fields: make(map[string]any)}
	for _, name := range t.fieldOrder {
		inst.fields[name] = t.fields[name]
		inst.fieldOrder = append(inst.fieldOrder, name)
	}
	assigned := make(map[string]bool)
	set := func(name string, v any) error {
		if assigned[name] {
			return fmt.Errorf("%w: %q", ErrFieldCollision, name)
		}
		assigned[name] = true
		if _, exists := inst.fields[name]; !exists {
			inst.fieldOrder = append(inst.fieldOrder, name)
		}
		inst.fields[name] = v
		return nil
	}
	for _, g := range cfg.Grouped {
		for _, name := range g.Names {
			if err := set(name, g.Value); err != nil {
				return nil, err
			}
		}
	}
	for name, v := range cfg.Values {
		if err := set(name, v); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Type returns the instance's type.
func (i *Instance) Type() *Type { return i.typ }

// Get returns a field value and whether the field exists.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.fields[name]
	return v, ok
}

// Set assigns a field, adding it if new.
func (i *Instance) Set(name string, v any) {
	if _, exists := i.fields[name]; !exists {
		i.fieldOrder = append(i.fieldOrder, name)
	}
	i.fields[name] = v
}

// Fields returns the field names in definition order.
func (i *Instance) Fields() []string {
	out := make([]string, len(i.fieldOrder))
	copy(out, i.fieldOrder)
	return out
}

// Call invokes a public method by name. Internal methods are rejected
// with ErrInternalMethod; use [Type.Invoke] for those.
func (i *Instance) Call(name string, args ...any) (any, error) {
	m, ok := i.typ.method(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %q", ErrNoSuchMethod, name, i.typ.name)
	}
	if m.Visibility == Internal {
		return nil, fmt.Errorf("%w: %q on %q", ErrInternalMethod, name, i.typ.name)
	}
	return m.Fn(i, args...)
}

// String returns the instance's textual form: the type's Stringer when
// one was configured or inherited, otherwise the "name" field if it is
// a string, otherwise the first string-valued field, otherwise the type
// name.
func (i *Instance) String() string {
	if i.typ.stringer != nil {
		return i.typ.stringer(i)
	}
	if v, ok := i.fields["name"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	for _, name := range i.fieldOrder {
		if s, ok := i.fields[name].(string); ok {
			return s
		}
	}
	return i.typ.name
}

// Clone copies the instance: the type's Cloner when one was configured
// or inherited, otherwise a deep copy of every field. Values exposing
// CloneAny (container types) clone themselves.
func (i *Instance) Clone() (*Instance, error) {
	if i.typ.cloner != nil {
		return i.typ.cloner(i)
	}
	out := &Instance{typ: i.typ, fields: make(map[string]any, len(i.fields))}
	out.fieldOrder = append(out.fieldOrder, i.fieldOrder...)
	for name, v := range i.fields {
		out.fields[name] = copyFieldValue(v)
	}
	return out, nil
}

// copyFieldValue duplicates slices, maps, and pointers recursively and
// lets self-cloning values copy themselves.
func copyFieldValue(v any) any {
	if v == nil {
		return nil
	}
	if c, ok := v.(interface{ CloneAny() any }); ok {
		return c.CloneAny()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for idx := 0; idx < rv.Len(); idx++ {
			out.Index(idx).Set(copyFieldInto(rv.Index(idx).Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copyFieldInto(iter.Value().Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(copyFieldInto(rv.Elem().Interface(), rv.Type().Elem()))
		return out.Interface()
	}
	return v
}

// copyFieldInto copies v as a reflect.Value assignable to type t. A nil
// copy (a nil element inside a slice or map) becomes t's zero value;
// reflect.ValueOf(nil) would be the unusable zero reflect.Value.
func copyFieldInto(v any, t reflect.Type) reflect.Value {
	c := copyFieldValue(v)
	if c == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(c)
}
