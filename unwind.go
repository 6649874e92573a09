package tet

import "fmt"

// Error kinds (§7). Each is a small struct implementing error, one struct
// per kind as in the teacher's errors.go (ParsingError /
// backtrackingError); no is* predicate helpers are defined for them.

// TypeMismatchError is thrown when a typed stack accessor finds a
// different variant than it expected.
type TypeMismatchError struct {
	Expected, Got ValueKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch, got %s but expected %s", e.Got, e.Expected)
}

// StackOutOfBoundsError is thrown by an indexed operand-stack access
// beyond the current stack size.
type StackOutOfBoundsError struct {
	Index, Size int
}

func (e *StackOutOfBoundsError) Error() string {
	return fmt.Sprintf("attempt to access stack out of bounds: i=%d, len=%d", e.Index, e.Size)
}

// NotInvocableError is thrown when the head of an applied list is
// neither a Primitive nor a Closure.
type NotInvocableError struct {
	Got ValueKind
}

func (e *NotInvocableError) Error() string {
	return fmt.Sprintf("not invocable type: %s", e.Got)
}

// IllegalTypeError is thrown when the evaluator reaches a value tag it
// cannot evaluate.
type IllegalTypeError struct {
	Got ValueKind
}

func (e *IllegalTypeError) Error() string {
	return fmt.Sprintf("illegal type: %s", e.Got)
}

// BadMarkerError is thrown when the GC encounters a cell whose
// object-kind is outside the valid set (heap corruption).
type BadMarkerError struct {
	Kind objKind
}

func (e *BadMarkerError) Error() string {
	return fmt.Sprintf("bad marker type: %d", e.Kind)
}

// ArityError is thrown when a primitive promises more return values than
// exist on the stack.
type ArityError struct {
	Promised, Available int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("builtin wants to return %d values, but there are only %d values on the stack",
		e.Promised, e.Available)
}

// DivideByZeroError is thrown by the `/` primitive (Open Question 3,
// resolved in DESIGN.md).
type DivideByZeroError struct{}

func (e *DivideByZeroError) Error() string { return "division by zero" }

// OutOfMemoryError mirrors the one case tet.c reserves a static,
// untracked error value for: the allocator that failed while trying to
// build an ordinary Error value. staticOutOfMemory below plays that role
// here.
type OutOfMemoryError struct{}

func (e *OutOfMemoryError) Error() string { return "out of memory" }

// staticOutOfMemory is the predefined static memory-exhaustion error
// value referenced by §4.F: never registered in any State's heap, never
// swept. No code path in this package throws or returns it.
var staticOutOfMemory = &ErrorValue{header: newHeader(objKindValue), Message: "out of memory"}

// unwindSignal is the payload carried by panic() across a non-local
// unwind. A setjmp/longjmp handler stack (§4.F) is modeled with Go's own
// panic/recover: panic already unwinds to the nearest enclosing recover,
// which is exactly "jump to the innermost installed handler" — no
// explicit jump-buffer array is needed.
type unwindSignal struct {
	err *ErrorValue
}

// throwRaw pops the (implicit) innermost handler and jumps to it with err
// as the thrown value (§4.F ThrowRaw).
func (s *State) throwRaw(err *ErrorValue) {
	panic(unwindSignal{err: err})
}

// throw formats a message, allocates an Error value, and throws it raw
// (§4.F Throw). If err is an *errorValueCarrier wrapping an
// already-built *ErrorValue, that value is thrown directly instead of
// double-wrapping; any other error (e.g. a typed error kind) is formatted
// into a fresh Error value.
func (s *State) throw(err error) {
	if ev, ok := err.(*errorValueCarrier); ok {
		s.throwRaw(ev.value)
		return
	}
	s.throwRaw(s.NewError(err.Error()))
}

// errorValueCarrier lets a caller throw an already-constructed ErrorValue
// through the plain `error` interface used by throw's signature.
type errorValueCarrier struct {
	value *ErrorValue
}

func (c *errorValueCarrier) Error() string { return c.value.Message }

// Catch installs a handler around fn (§4.F Catch/Uncatch). If fn runs to
// completion without unwinding, Catch returns nil. If fn (or anything it
// calls) throws, Catch recovers the unwind, frees every registration-
// stack entry accumulated since Catch was entered, and returns the
// thrown error value.
func (s *State) Catch(fn func()) (caught *ErrorValue) {
	depth := s.pendingDepth()
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(unwindSignal)
			if !ok {
				panic(r) // not ours: a genuine programming error, keep unwinding
			}
			s.cleanupTo(depth)
			caught = sig.err
		}
	}()
	fn()
	return nil
}
