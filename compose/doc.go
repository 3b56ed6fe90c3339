// Package compose builds record-like types at runtime from typed
// configuration: named fields, bound methods with a public/internal
// visibility split, and overridable textual and cloning behavior.
//
// A base type is created with [Define] and refined with [Type.Derive];
// derived types inherit their parent's fields, methods, and default
// string/clone behavior. Every definition is recorded once, by name, in
// the process-wide [Types] registry, which is informational only and
// never consulted for dispatch.
package compose
