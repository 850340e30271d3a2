// Package builtins implements Tua's fixed set of built-in functions (§4.9):
// print, type, len, concat, append, pop, ipairs, and dump_stack.
package builtins

import (
	"io"

	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/scope"
	"github.com/tua-lang/tua/internal/values"
)

// Context is the slice of evaluator state a builtin is allowed to touch:
// where to write output, and the scope stack in effect at the call site
// (dump_stack is the only builtin that needs the latter).
type Context interface {
	Stdout() io.Writer
	Scope() *scope.Stack
}

// Func is an ordinary builtin: it consumes already-evaluated arguments and
// produces a single Value.
type Func func(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error)

// KVIterator is a lazy, pull-based sequence of (index, value) pairs. It is
// the only way a generic for-in loop can be driven (§4.6, §9) — Tua has no
// generator-expression syntax, so the iterator-producing builtins return
// this interface directly instead of a Value.
type KVIterator interface {
	// Next returns the next pair and true, or a zero Pair and false once
	// the sequence is exhausted.
	Next() (Pair, bool)
}

// Pair is one (key, value) step of a KVIterator.
type Pair struct {
	Key   values.Value
	Value values.Value
}

// IteratorFunc produces a KVIterator instead of a Value; ipairs is the only
// builtin registered this way.
type IteratorFunc func(ctx Context, args []values.Value, pos lexer.Position) (KVIterator, error)

// Registry holds every builtin by name, plus the separate iterator-producing
// set consulted only by generic for-in loops.
type Registry struct {
	funcs     map[string]Func
	iterFuncs map[string]IteratorFunc
}

// NewRegistry builds the registry of all eight standard builtins.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:     make(map[string]Func),
		iterFuncs: make(map[string]IteratorFunc),
	}
	r.funcs["print"] = builtinPrint
	r.funcs["type"] = builtinType
	r.funcs["len"] = builtinLen
	r.funcs["concat"] = builtinConcat
	r.funcs["append"] = builtinAppend
	r.funcs["pop"] = builtinPop
	r.funcs["dump_stack"] = builtinDumpStack
	r.iterFuncs["ipairs"] = builtinIpairs
	return r
}

// Lookup returns the ordinary builtin registered under name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// LookupIterator returns the iterator-producing builtin registered under
// name, if any.
func (r *Registry) LookupIterator(name string) (IteratorFunc, bool) {
	f, ok := r.iterFuncs[name]
	return f, ok
}

// IsBuiltin reports whether name is any registered builtin, ordinary or
// iterator-producing. The evaluator uses this to decide whether a call
// target is a builtin or a user-defined function before dispatching.
func (r *Registry) IsBuiltin(name string) bool {
	if _, ok := r.funcs[name]; ok {
		return true
	}
	_, ok := r.iterFuncs[name]
	return ok
}
