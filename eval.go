package tet

// Eval drives f until its frame chain drains, per §4.H. A Catch is
// installed at entry so any unwind surfaces as the returned Error value
// instead of propagating past this call, matching "the evaluator's
// top-level handler" described in §7's propagation policy.
func Eval(s *State, f *Frame) Value {
	var result Value
	caught := s.Catch(func() {
		result = evalLoop(s, f)
	})
	if caught != nil {
		return caught
	}
	return result
}

// evalLoop is the inner loop of §4.H. It mutates its own local frame
// pointer rather than recursing, so tail substitution never grows the Go
// call stack either.
func evalLoop(s *State, f *Frame) Value {
	for f != nil {
		if p, ok := f.Program.(*Pair); ok {
			if p.Head == nil && p.Tail == nil {
				// The empty list read as a program has nothing to build;
				// treat it the same as a program that already ran dry.
				f.Program = nil
			}
		} else if f.Program != nil {
			// A bare top-level form was never wrapped in a call of its
			// own — it simply evaluates to itself (or, for a symbol, to
			// its binding) rather than being treated as something to
			// apply. Without this, Read setting Program directly to a
			// parsed atom (state.go's Read) would feed that atom straight
			// into the pair-chain walker below and throw
			// IllegalTypeError, breaking §8 invariant 4
			// (Eval(Read(Print(x))) == x for atomic x) and the repl's
			// most basic case: a bare number or variable name on its own
			// line.
			v := f.Program
			if v.Kind() == KindError {
				return v
			}
			if res, done := finish(f, []Value{evalAtom(s, f, v)}); done {
				return res
			}
			f = f.Caller
			continue
		}

		for f.Program != nil {
			cur, ok := f.Program.(*Pair)
			if !ok {
				s.throw(&IllegalTypeError{Got: f.Program.Kind()})
			}
			v := cur.Head
			if v == nil {
				s.throwRaw(s.NewError("nil in head of program during eval"))
			}

			switch v.Kind() {
			case KindError:
				return v

			case KindSExpr:
				nf := s.NewFrame(f.Env, v)
				nf.Caller = f
				f.Program = cur.Tail
				f = nf
				continue

			default:
				f.Push(evalAtom(s, f, v))
			}

			f.Program = cur.Tail
		}

		// Program exhausted: f.stack[0] (if any) is the callable, the rest
		// are its arguments.
		var fn Value
		if f.Size() > 0 {
			fn = f.Get(0)
		}

		if fn == nil {
			if res, done := finish(f, []Value{s.NewSExpr(nil, nil)}); done {
				return res
			}
			f = f.Caller
			continue
		}

		switch fn.Kind() {
		case KindPrimitive:
			prim := fn.(*Primitive)
			c, err := prim.Fn(f)
			if err != nil {
				s.throw(err)
			}
			if f.Size() < c {
				s.throw(&ArityError{Promised: c, Available: f.Size()})
			}
			var vals []Value
			if c > 0 {
				vals = f.stack[f.Size()-c:]
			}
			if res, done := finish(f, vals); done {
				return res
			}
			f = f.Caller

		case KindClosure:
			clo := fn.(*Closure)
			ne := s.NewEnvironment(f.Env)

			par := clo.Params
			for i := 1; i < f.Size(); i++ {
				pp, ok := par.(*Pair)
				if !ok {
					break
				}
				if key, ok := pp.Head.(*Symbol); ok {
					ne.Put(key, f.Get(i))
				}
				par = pp.Tail
				if par == nil {
					break
				}
			}

			nf := s.NewFrame(ne, clo.Body)
			nf.Caller = f.Caller
			f = nf
			continue

		default:
			s.throw(&NotInvocableError{Got: fn.Kind()})
		}
	}
	return nil
}

// evalAtom evaluates a single non-S-expression program element: numbers,
// strings, primitives and closures are self-evaluating, a symbol resolves
// through the environment, and a Q-expression converts to its
// S-expression equivalent (§4.H step 1).
func evalAtom(s *State, f *Frame, v Value) Value {
	switch v.Kind() {
	case KindNumber, KindString, KindPrimitive, KindClosure:
		return v
	case KindSymbol:
		return f.Env.Get(v.(*Symbol))
	case KindQExpr:
		return qexprToSExpr(s, v.(*Pair))
	default:
		s.throw(&IllegalTypeError{Got: v.Kind()})
		return nil
	}
}

// finish implements §4.H "Return values". When f has a caller, vals are
// pushed onto it in order and evaluation continues there. When f has no
// caller, f is the root of the whole evaluation: there is nothing left to
// hand vals to, so this *is* the final result, returned directly rather
// than handed to a frame the caller is about to discard by following
// f.Caller (which is nil).
func finish(f *Frame, vals []Value) (Value, bool) {
	if f.Caller != nil {
		for _, v := range vals {
			f.Caller.Push(v)
		}
		return nil, false
	}
	if len(vals) == 0 {
		return nil, true
	}
	return vals[len(vals)-1], true
}

// qexprToSExpr converts a Q-expression pair chain into a parallel chain
// of S-expression cells holding the same head values (§4.H step 1,
// invariant 5: the conversion preserves head-cell identity — it builds
// new cons cells, but every element value travels across unchanged).
func qexprToSExpr(s *State, v *Pair) Value {
	root := s.NewSExpr(v.Head, nil)
	cur := root
	for tail := v.Tail; tail != nil; {
		tp, ok := tail.(*Pair)
		if !ok {
			break
		}
		next := s.NewSExpr(tp.Head, nil)
		cur.Tail = next
		cur = next
		tail = tp.Tail
	}
	return root
}
