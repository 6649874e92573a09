package tet

// Value is the tagged union described in §3 DATA MODEL: every heap cell
// that isn't an Environment or a Frame is one of the variants below.
// Each variant is its own small struct with its own constructor, the way
// the teacher's value.go gives every parse-tree node (String, Sequence,
// Node, Error) its own NewXxx constructor and Type() tag.
type Value interface {
	gcObject
	Kind() ValueKind
}

// ErrorValue is the distinguished error variant: never a normal result,
// only ever produced by a failure (§3).
type ErrorValue struct {
	header
	Message string
}

func (e *ErrorValue) gcHeader() *header { return &e.header }
func (e *ErrorValue) Kind() ValueKind   { return KindError }
func (e *ErrorValue) gcFinalize()       {}
func (e *ErrorValue) gcMark(s *State, color uint8) int {
	if e.color() == color {
		return 0
	}
	e.setColor(color)
	return 1
}

// Number is a signed 32-bit integer value.
type Number struct {
	header
	N int32
}

func (n *Number) gcHeader() *header { return &n.header }
func (n *Number) Kind() ValueKind   { return KindNumber }
func (n *Number) gcFinalize()       {}
func (n *Number) gcMark(s *State, color uint8) int {
	if n.color() == color {
		return 0
	}
	n.setColor(color)
	return 1
}

// Symbol is interned by value only: lookup is by string comparison (§3).
type Symbol struct {
	header
	Name string
}

func (sy *Symbol) gcHeader() *header { return &sy.header }
func (sy *Symbol) Kind() ValueKind   { return KindSymbol }
func (sy *Symbol) gcFinalize()       {}
func (sy *Symbol) gcMark(s *State, color uint8) int {
	if sy.color() == color {
		return 0
	}
	sy.setColor(color)
	return 1
}

// String is a byte-string literal.
type String struct {
	header
	Bytes string
}

func (st *String) gcHeader() *header { return &st.header }
func (st *String) Kind() ValueKind   { return KindString }
func (st *String) gcFinalize()       {}
func (st *String) gcMark(s *State, color uint8) int {
	if st.color() == color {
		return 0
	}
	st.setColor(color)
	return 1
}

// Pair is the linked-list cell of both S-expressions (evaluated) and
// Q-expressions (quoted). The Quoted flag is the "kind" that distinguishes
// the two at the cell level (§3 invariant 3: never changes after creation).
type Pair struct {
	header
	Quoted     bool
	Head, Tail Value // either may be nil, meaning the empty list
}

func (p *Pair) gcHeader() *header { return &p.header }

func (p *Pair) Kind() ValueKind {
	if p.Quoted {
		return KindQExpr
	}
	return KindSExpr
}

func (p *Pair) gcFinalize() {}

func (p *Pair) gcMark(s *State, color uint8) int {
	if p.color() == color {
		return 0
	}
	p.setColor(color)
	c := 1
	c += s.markValue(p.Head, color)
	c += s.markValue(p.Tail, color)
	return c
}

// Primitive is a host function taking the current frame and returning
// the count of values it left on the stack.
type Primitive struct {
	header
	Name string
	Fn   func(f *Frame) (int, error)
}

func (pr *Primitive) gcHeader() *header { return &pr.header }
func (pr *Primitive) Kind() ValueKind   { return KindPrimitive }
func (pr *Primitive) gcFinalize()       {}
func (pr *Primitive) gcMark(s *State, color uint8) int {
	if pr.color() == color {
		return 0
	}
	pr.setColor(color)
	return 1
}

// Closure is a user-defined function: Params is a list of symbol cells,
// Body is a list of forms.
type Closure struct {
	header
	Params Value
	Body   Value
}

func (c *Closure) gcHeader() *header { return &c.header }
func (c *Closure) Kind() ValueKind   { return KindClosure }
func (c *Closure) gcFinalize()       {}
func (c *Closure) gcMark(s *State, color uint8) int {
	if c.color() == color {
		return 0
	}
	c.setColor(color)
	n := 1
	n += s.markValue(c.Params, color)
	n += s.markValue(c.Body, color)
	return n
}

// EnvRef is a first-class handle to an Environment, kept as a Value so
// the evaluator can keep an environment reachable through the value
// graph (§3).
type EnvRef struct {
	header
	Env *Environment
}

func (r *EnvRef) gcHeader() *header { return &r.header }
func (r *EnvRef) Kind() ValueKind   { return KindEnvRef }
func (r *EnvRef) gcFinalize()       {}
func (r *EnvRef) gcMark(s *State, color uint8) int {
	if r.color() == color {
		return 0
	}
	r.setColor(color)
	return 1 + r.Env.gcMark(s, color)
}

// FrameRef is a first-class handle to a Frame, analogous to EnvRef.
type FrameRef struct {
	header
	Frame *Frame
}

func (r *FrameRef) gcHeader() *header { return &r.header }
func (r *FrameRef) Kind() ValueKind   { return KindFrameRef }
func (r *FrameRef) gcFinalize()       {}
func (r *FrameRef) gcMark(s *State, color uint8) int {
	if r.color() == color {
		return 0
	}
	r.setColor(color)
	return 1 + r.Frame.gcMark(s, color)
}

// --- constructors -----------------------------------------------------
//
// Every constructor reserves a cell, registers it into the heap registry,
// assigns its object kind, and initializes its fields from owned copies
// of any supplied byte strings (§4.B). The raw bytes backing
// Symbol/String/ErrorValue are registered on the state's registration
// stack for the duration of construction (see registry.go) and forgotten
// immediately after, preserving the atomic-construction discipline (§5)
// even though Go's own runtime already owns the string's backing memory.

func (s *State) NewError(message string) *ErrorValue {
	s.register(len(message))
	v := &ErrorValue{header: newHeader(objKindValue), Message: message}
	s.track(v)
	s.forget(1)
	return v
}

func (s *State) NewNumber(n int32) *Number {
	v := &Number{header: newHeader(objKindValue), N: n}
	s.track(v)
	return v
}

func (s *State) NewSymbol(name string) *Symbol {
	s.register(len(name))
	v := &Symbol{header: newHeader(objKindValue), Name: name}
	s.track(v)
	s.forget(1)
	return v
}

func (s *State) NewString(bytes string) *String {
	s.register(len(bytes))
	v := &String{header: newHeader(objKindValue), Bytes: bytes}
	s.track(v)
	s.forget(1)
	return v
}

func (s *State) NewPair(quoted bool, head, tail Value) *Pair {
	v := &Pair{header: newHeader(objKindValue), Quoted: quoted, Head: head, Tail: tail}
	s.track(v)
	return v
}

func (s *State) NewSExpr(head, tail Value) *Pair { return s.NewPair(false, head, tail) }
func (s *State) NewQExpr(head, tail Value) *Pair { return s.NewPair(true, head, tail) }

func (s *State) NewPrimitive(name string, fn func(f *Frame) (int, error)) *Primitive {
	v := &Primitive{header: newHeader(objKindValue), Name: name, Fn: fn}
	s.track(v)
	return v
}

func (s *State) NewClosure(params, body Value) *Closure {
	v := &Closure{header: newHeader(objKindValue), Params: params, Body: body}
	s.track(v)
	return v
}

func (s *State) NewEnvRef(e *Environment) *EnvRef {
	v := &EnvRef{header: newHeader(objKindValue), Env: e}
	s.track(v)
	return v
}

func (s *State) NewFrameRef(f *Frame) *FrameRef {
	v := &FrameRef{header: newHeader(objKindValue), Frame: f}
	s.track(v)
	return v
}

// listLen returns the number of cells in a pair chain rooted at v (0 if
// v is nil or not a pair).
func listLen(v Value) int {
	n := 0
	for {
		p, ok := v.(*Pair)
		if !ok {
			return n
		}
		n++
		v = p.Tail
	}
}
