// Package scope implements Tua's scope stack (§4.8): an ordered sequence of
// binding frames searched innermost to outermost for lookups, deletions, and
// rebinds, with one documented exception for the top-level program frame
// (§9) that the evaluator package is responsible for never popping.
package scope

import "github.com/tua-lang/tua/internal/values"

// Frame is one level of the stack: a flat name -> value map.
type Frame map[string]values.Value

// Stack is the array-of-frames scope structure. Unlike a linked chain of
// enclosing environments, every operation that is documented to search
// "all frames" (Get, ChangeValue, DelIdentifier, GetFunctions) walks the
// whole slice rather than stopping at a lexical boundary.
type Stack struct {
	frames []Frame
}

// New returns a stack with a single frame already pushed — the program
// frame, per the evaluator's distinguished top-level frame design (§9).
func New() *Stack {
	return &Stack{frames: []Frame{make(Frame)}}
}

// Push opens a new, empty innermost frame.
func (s *Stack) Push() {
	s.frames = append(s.frames, make(Frame))
}

// Pop discards the innermost frame. It is a programming error to call Pop
// when only the program frame remains; callers must pair every Push with
// exactly one Pop.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of frames currently on the stack.
func (s *Stack) Depth() int { return len(s.frames) }

// NewIdentifier binds name to value in the innermost frame. It reports
// false if name is already bound in any frame — a name is defined if it
// exists anywhere on the stack, so redeclaration in the same frame and
// shadowing of an enclosing frame are both rejected (§3, §4.8).
func (s *Stack) NewIdentifier(name string, value values.Value) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, exists := s.frames[i][name]; exists {
			return false
		}
	}
	s.frames[len(s.frames)-1][name] = value
	return true
}

// Get searches every frame, innermost first, and returns the bound value.
func (s *Stack) Get(name string) (values.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v, true
		}
	}
	return values.Value{}, false
}

// ChangeValue replaces the value bound to name in whichever frame currently
// holds it, searching innermost to outermost. It reports false if name is
// not bound anywhere.
func (s *Stack) ChangeValue(name string, value values.Value) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i][name]; ok {
			s.frames[i][name] = value
			return true
		}
	}
	return false
}

// DelIdentifier removes name from whichever frame currently holds it. It
// reports false if name is not bound anywhere.
func (s *Stack) DelIdentifier(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i][name]; ok {
			delete(s.frames[i], name)
			return true
		}
	}
	return false
}

// NamedValue pairs a binding's name with its current value.
type NamedValue struct {
	Name  string
	Value values.Value
}

// Dump returns every binding in every frame, innermost frame first, for
// diagnostic display (dump_stack). Bindings stay grouped by frame, since
// the point is to show the literal frame structure.
func (s *Stack) Dump() [][]NamedValue {
	out := make([][]NamedValue, 0, len(s.frames))
	for i := len(s.frames) - 1; i >= 0; i-- {
		frame := make([]NamedValue, 0, len(s.frames[i]))
		for name, v := range s.frames[i] {
			frame = append(frame, NamedValue{Name: name, Value: v})
		}
		out = append(out, frame)
	}
	return out
}

// GetFunctions returns every function-typed binding visible across all
// frames, innermost first. Function calls use this to build the fresh
// callee scope's function table (§4.7.2 — function-table injection).
func (s *Stack) GetFunctions() []NamedValue {
	seen := make(map[string]bool)
	var out []NamedValue
	for i := len(s.frames) - 1; i >= 0; i-- {
		for name, v := range s.frames[i] {
			if seen[name] {
				continue
			}
			seen[name] = true
			if v.Type.ID == "function" {
				out = append(out, NamedValue{Name: name, Value: v})
			}
		}
	}
	return out
}
