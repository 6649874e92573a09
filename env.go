package tet

// Environment is a linked chain of frames, each holding an association
// list of (symbol, value) pairs, plus a link to its parent (§3, §4.C).
// The global environment has no parent. An environment's association
// list is itself a chain of heap Pair cells, so the GC reaches its
// contents through ordinary pair traversal (§4.C).
type Environment struct {
	header
	state  *State
	Parent *Environment
	Vars   Value // nil, or a chain of *Pair{Head: *Pair{Head: *Symbol, Tail: Value}, Tail: ...}
}

func (e *Environment) gcHeader() *header { return &e.header }

func (e *Environment) gcFinalize() {}

// gcMark walks the parent chain per §4.E step 2: stop as soon as an
// already-colored environment is found, otherwise color it and mark its
// binding list.
func (e *Environment) gcMark(s *State, color uint8) int {
	c := 0
	for env := e; env != nil; env = env.Parent {
		if env.color() == color {
			return c
		}
		env.setColor(color)
		c++
		c += s.markValue(env.Vars, color)
	}
	return c
}

// NewEnvironment allocates a fresh environment with the given parent (nil
// for the root environment) and registers it into the heap.
func (s *State) NewEnvironment(parent *Environment) *Environment {
	e := &Environment{header: newHeader(objKindEnv), state: s, Parent: parent}
	s.track(e)
	return e
}

// Get walks outward from e; on miss it produces an UndefinedSymbol Error
// value rather than unwinding — the caller decides how to react (§4.C).
func (e *Environment) Get(sym *Symbol) Value {
	if pair := e.LookupPair(sym); pair != nil {
		return pair.(*Pair).Tail
	}
	return e.state.NewError("undefined symbol: " + sym.Name)
}

// LookupPair returns the (symbol . value) binding cell itself, or nil on
// miss.
func (e *Environment) LookupPair(sym *Symbol) Value {
	for env := e; env != nil; env = env.Parent {
		for cur := env.Vars; cur != nil; {
			p, ok := cur.(*Pair)
			if !ok {
				break
			}
			kv, _ := p.Head.(*Pair)
			if kv != nil {
				if k, ok := kv.Head.(*Symbol); ok && k.Name == sym.Name {
					return kv
				}
			}
			cur = p.Tail
		}
	}
	return nil
}

// Set rewrites the first binding found along the chain; if none exists,
// it inserts into the innermost (current) frame, same as Put (§4.C).
func (e *Environment) Set(sym *Symbol, v Value) Value {
	if pair := e.LookupPair(sym); pair != nil {
		pair.(*Pair).Tail = v
		return v
	}
	return e.Put(sym, v)
}

// Put overwrites sym's binding if it is already bound in *this* frame,
// else prepends a fresh pair (§4.C).
func (e *Environment) Put(sym *Symbol, v Value) Value {
	for cur := e.Vars; cur != nil; {
		p, ok := cur.(*Pair)
		if !ok {
			break
		}
		kv, _ := p.Head.(*Pair)
		if kv != nil {
			if k, ok := kv.Head.(*Symbol); ok && k.Name == sym.Name {
				kv.Tail = v
				return v
			}
		}
		cur = p.Tail
	}

	kv := e.state.NewSExpr(sym, v)
	e.Vars = e.state.NewSExpr(kv, e.Vars)
	return v
}
