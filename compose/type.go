package compose

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/kevin-panoptic-dev/circulis/registry"
)

// Types records every defined type by name, in definition order. It is
// informational: lookups never drive dispatch.
var Types = registry.New[*Type]()

// Visibility controls how a method may be called.
type Visibility int

const (
	// Public methods are callable through instances and listed by
	// [Type.Describe].
	Public Visibility = iota
	// Internal methods are callable only through [Type.Invoke].
	Internal
)

// Fn is the shape of every composed method: it receives the instance
// it was called on plus the caller's arguments.
type Fn func(inst *Instance, args ...any) (any, error)

// Method is one named, visibility-tagged callable. An empty Name marks
// the method anonymous; a unique name is generated for it.
type Method struct {
	Name       string
	Visibility Visibility
	Fn         Fn
}

// Config describes a type to [Define] or [Type.Derive]. Every slot is
// honored; there are no silently ignored keys.
type Config struct {
	// Name is the type's registry key. Required.
	Name string
	// Methods are bound to the type.
	Methods []Method
	// Fields are default field values given to every instance.
	Fields map[string]any
	// Stringer overrides the textual form of instances. When nil, a
	// default is derived and, on a base type, inherited by derived
	// types.
	Stringer func(*Instance) string
	// Cloner overrides instance copying. When nil, a deep copy is
	// used and inherited the same way as Stringer.
	Cloner func(*Instance) (*Instance, error)
}

// Type is a runtime-composed record type.
type Type struct {
	name   string
	base   bool
	parent *Type

	mu          sync.RWMutex
	methods     map[string]Method
	methodOrder []string

	fields     map[string]any
	fieldOrder []string

	stringer func(*Instance) string
	cloner   func(*Instance) (*Instance, error)
}

var identRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// resolveName validates a method name, generating one for anonymous
// methods.
func resolveName(m Method) (string, error) {
	if m.Fn == nil {
		return "", fmt.Errorf("%w: method %q", ErrNilCallable, m.Name)
	}
	if m.Name == "" {
		name := "fn_" + uuid.NewString()[:8]
		slog.Warn("anonymous method given a generated name", "generated", name)
		return name, nil
	}
	if !identRe.MatchString(m.Name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, m.Name)
	}
	return m.Name, nil
}

func newType(cfg Config, parent *Type) (*Type, error) {
	if cfg.Name == "" {
		return nil, ErrUnnamedType
	}
	t := &Type{
		name:    cfg.Name,
		base:    parent == nil,
		parent:  parent,
		methods: make(map[string]Method),
		fields:  make(map[string]any),
	}
	if parent != nil {
		parent.mu.RLock()
		for _, name := range parent.methodOrder {
			t.methods[name] = parent.methods[name]
			t.methodOrder = append(t.methodOrder, name)
		}
		parent.mu.RUnlock()
		for _, name := range parent.fieldOrder {
			t.fields[name] = parent.fields[name]
			t.fieldOrder = append(t.fieldOrder, name)
		}
		t.stringer = parent.stringer
		t.cloner = parent.cloner
	}
	if err := t.bind(cfg.Methods); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cfg.Fields))
	for name := range cfg.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, exists := t.fields[name]; !exists {
			t.fieldOrder = append(t.fieldOrder, name)
		}
		t.fields[name] = cfg.Fields[name]
	}
	if cfg.Stringer != nil {
		t.stringer = cfg.Stringer
	}
	if cfg.Cloner != nil {
		t.cloner = cfg.Cloner
	}
	if err := Types.Register(t.name, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Define builds and registers a base type.
func Define(cfg Config) (*Type, error) { return newType(cfg, nil) }

// Derive builds and registers a type inheriting t's methods, fields,
// and default string/clone behavior.
func (t *Type) Derive(cfg Config) (*Type, error) { return newType(cfg, t) }

// bind attaches methods to the type, replacing same-named ones.
func (t *Type) bind(methods []Method) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, m := range methods {
		name, err := resolveName(m)
		if err != nil {
			return err
		}
		if _, exists := t.methods[name]; !exists {
			t.methodOrder = append(t.methodOrder, name)
		}
		m.Name = name
		t.methods[name] = m
	}
	return nil
}

// Name returns the type's registered name.
func (t *Type) Name() string { return t.name }

// IsBase reports whether the type was created by [Define] rather than
// derived.
func (t *Type) IsBase() bool { return t.base }

// Parent returns the type this one was derived from, or nil for a base
// type.
func (t *Type) Parent() *Type { return t.parent }

// Describe returns the public method names in binding order. Internal
// methods are not listed.
func (t *Type) Describe() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.methodOrder))
	for _, name := range t.methodOrder {
		if t.methods[name].Visibility == Public {
			out = append(out, name)
		}
	}
	return out
}

// method looks a method up by name.
func (t *Type) method(name string) (Method, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.methods[name]
	return m, ok
}

// Invoke calls a method on inst through the type, bypassing the
// visibility check. This is the only way to call an internal method.
func (t *Type) Invoke(inst *Instance, name string, args ...any) (any, error) {
	m, ok := t.method(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %q", ErrNoSuchMethod, name, t.name)
	}
	return m.Fn(inst, args...)
}
