package collections

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro. It receives
// the collection the macro was called on and the caller's extra arguments.
type MacroFunc func(c *Collection, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry.
// If a macro with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example – register a macro that keeps values above a threshold:
//
//	collections.RegisterMacro("above", func(c *collections.Collection, args ...any) any {
//	    limit := args[0].(int)
//	    return c.Filter(func(v, _ any) bool { return v.(int) > limit })
//	})
//
//	res, _ := collections.New(1, 5, 9).Macro("above", 4) // {1: 5, 2: 9}
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied collection and args.
// Returns an error wrapping [ErrMacroNotFound] if no macro is registered
// under name.
func CallMacro(name string, c *Collection, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, &Error{Op: "Macro", Kind: ErrMacroNotFound, Msg: fmt.Sprintf("%q", name)}
	}
	return fn(c, args...), nil
}

// Macro calls the named registered macro on c, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (c *Collection) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
