package tet

// Frame is a unit of in-progress evaluation with its own operand stack
// (§3, §4.D). Its operand stack uses the same grow-by-doubling policy as
// the heap registry (§4.A), and its push/pop/top/len shape is grounded on
// the teacher's vm_stack.go, adapted from a stack of parser backtracking
// frames to a stack of Values.
type Frame struct {
	header

	// Caller is the previous frame in the current call stack (nil for
	// the root frame). It is where return values are delivered (§4.H).
	Caller *Frame

	// Resumer is the frame this evaluation was entered from, if any — set
	// by the host when chaining successive top-level evaluations (e.g. a
	// REPL), so that the previous evaluation's frame chain stays reachable
	// to the GC even after its own Caller link has gone to nil (§3, §4.E).
	Resumer *Frame

	Env *Environment

	// Program is a reference into a pair chain, or nil once the frame
	// has finished producing operands.
	Program Value

	stack []Value
}

func (f *Frame) gcHeader() *header { return &f.header }

func (f *Frame) gcFinalize() {}

// gcMark implements §4.E step 3: mark every frame along the active chain
// and each frame's resumer link, and every value on each frame's operand
// stack.
func (f *Frame) gcMark(s *State, color uint8) int {
	c := 0
	for fr := f; fr != nil; fr = fr.Caller {
		if fr.color() == color {
			return c
		}
		fr.setColor(color)
		c++
		for _, v := range fr.stack {
			c += s.markValue(v, color)
		}
		if fr.Resumer != nil {
			c += fr.Resumer.gcMark(s, color)
		}
	}
	return c
}

const frameStackInitialCap = 8

func (s *State) frameInitialCap() int {
	if s.opts.StackInitialCap > 0 {
		return s.opts.StackInitialCap
	}
	return frameStackInitialCap
}

// NewFrame allocates a frame evaluating program under env, and registers
// it into the heap.
func (s *State) NewFrame(env *Environment, program Value) *Frame {
	f := &Frame{
		header:  newHeader(objKindFrame),
		Env:     env,
		Program: program,
		stack:   make([]Value, 0, s.frameInitialCap()),
	}
	s.track(f)
	return f
}

// Push appends v to the operand stack, growing the backing array by the
// same exact-doubling policy as the heap registry's track (§4.A, §4.D)
// rather than relying on Go's own append growth, which stops doubling
// once a slice's capacity passes a few hundred elements.
func (f *Frame) Push(v Value) {
	s := f.Env.state
	if cap(f.stack) == 0 {
		f.stack = make([]Value, 0, s.frameInitialCap())
	} else if len(f.stack) == cap(f.stack) {
		grown := make([]Value, len(f.stack), registryGrow(cap(f.stack)))
		copy(grown, f.stack)
		f.stack = grown
	}
	f.stack = append(f.stack, v)
}

// Pop removes and returns the last value, producing an Error value (not
// an unwind) if the stack is empty (§4.D).
func (f *Frame) Pop() Value {
	if len(f.stack) == 0 {
		return f.Env.state.NewError("cannot pop value from empty stack frame")
	}
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v
}

// Peek returns the last value without removing it, producing an Error
// value if the stack is empty.
func (f *Frame) Peek() Value {
	if len(f.stack) == 0 {
		return f.Env.state.NewError("cannot peek value from empty stack frame")
	}
	return f.stack[len(f.stack)-1]
}

// Get returns the i-th value on the stack, counting from the bottom. It
// unwinds with a StackOutOfBoundsError if i is out of bounds (§4.D).
func (f *Frame) Get(i int) Value {
	if i < 0 || i >= len(f.stack) {
		f.Env.state.throw(&StackOutOfBoundsError{Index: i, Size: len(f.stack)})
	}
	return f.stack[i]
}

// Size returns the number of values currently on the operand stack.
func (f *Frame) Size() int { return len(f.stack) }

// --- typed accessors ----------------------------------------------------
//
// Every typed accessor family (Number, Symbol, String, SExpr, QExpr,
// Primitive, Closure) enforces a type check that unwinds with a
// TypeMismatchError on failure (§4.D), grounded on tet.h/tet.c's
// TET_STACKFUNC/TET_STACKFUNC_DUAL macro families.

func (f *Frame) typed(i int, want ValueKind) Value {
	v := f.Get(i)
	if v.Kind() != want {
		f.Env.state.throw(&TypeMismatchError{Expected: want, Got: v.Kind()})
	}
	return v
}

func (f *Frame) IsNumber(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindNumber }
func (f *Frame) GetNumber(i int) int32 { return f.typed(i, KindNumber).(*Number).N }
func (f *Frame) PushNumber(n int32)    { f.Push(f.Env.state.NewNumber(n)) }
func (f *Frame) PopNumber() int32 {
	n := f.GetNumber(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return n
}

func (f *Frame) IsSymbol(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindSymbol }
func (f *Frame) GetSymbol(i int) *Symbol { return f.typed(i, KindSymbol).(*Symbol) }
func (f *Frame) PushSymbol(name string)  { f.Push(f.Env.state.NewSymbol(name)) }
func (f *Frame) PopSymbol() *Symbol {
	sy := f.GetSymbol(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return sy
}

func (f *Frame) IsString(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindString }
func (f *Frame) GetString(i int) *String { return f.typed(i, KindString).(*String) }
func (f *Frame) PushString(s string)     { f.Push(f.Env.state.NewString(s)) }
func (f *Frame) PopString() *String {
	st := f.GetString(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return st
}

func (f *Frame) IsError(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindError }
func (f *Frame) GetError(i int) *ErrorValue { return f.typed(i, KindError).(*ErrorValue) }
func (f *Frame) PushErrorValue(msg string)  { f.Push(f.Env.state.NewError(msg)) }
func (f *Frame) PopError() *ErrorValue {
	e := f.GetError(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return e
}

func (f *Frame) IsSExpr(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindSExpr }
func (f *Frame) GetSExpr(i int) *Pair { return f.typed(i, KindSExpr).(*Pair) }
func (f *Frame) PushSExpr(head, tail Value) { f.Push(f.Env.state.NewSExpr(head, tail)) }
func (f *Frame) PopSExpr() *Pair {
	p := f.GetSExpr(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return p
}

func (f *Frame) IsQExpr(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindQExpr }
func (f *Frame) GetQExpr(i int) *Pair { return f.typed(i, KindQExpr).(*Pair) }
func (f *Frame) PushQExpr(head, tail Value) { f.Push(f.Env.state.NewQExpr(head, tail)) }
func (f *Frame) PopQExpr() *Pair {
	p := f.GetQExpr(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return p
}

func (f *Frame) IsPrimitive(i int) bool {
	return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindPrimitive
}
func (f *Frame) GetPrimitive(i int) *Primitive { return f.typed(i, KindPrimitive).(*Primitive) }
func (f *Frame) PushPrimitive(name string, fn func(*Frame) (int, error)) {
	f.Push(f.Env.state.NewPrimitive(name, fn))
}
func (f *Frame) PopPrimitive() *Primitive {
	p := f.GetPrimitive(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return p
}

func (f *Frame) IsClosure(i int) bool { return i >= 0 && i < len(f.stack) && f.stack[i].Kind() == KindClosure }
func (f *Frame) GetClosure(i int) *Closure { return f.typed(i, KindClosure).(*Closure) }
func (f *Frame) PushClosure(params, body Value) { f.Push(f.Env.state.NewClosure(params, body)) }
func (f *Frame) PopClosure() *Closure {
	c := f.GetClosure(len(f.stack) - 1)
	f.stack = f.stack[:len(f.stack)-1]
	return c
}
