package tet

// State is the interpreter's process-wide state (§6 "Process-wide
// state"): the heap registry, the registration stack, the current mark
// color, the root environment and the active frame, if any. It is
// grounded on tet.c's tstate struct, minus the fields Go's own runtime
// makes unnecessary (no jmp-buffer array — see unwind.go; no manual
// free bookkeeping beyond the registration-stack's logical discipline).
type State struct {
	objects []gcObject
	pending []int
	color   uint8

	Root   *Environment
	Active *Frame

	opts Options
}

// NewInterpreter allocates a state with its own root environment and
// baseline bindings, mirroring tstate_new followed by main.c's bootstrap
// sequence.
func NewInterpreter(opts ...Option) *State {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	s := &State{opts: o}
	s.Root = s.NewEnvironment(nil)
	s.Bootstrap()
	return s
}

// Bootstrap binds the baseline primitives into the root environment, in
// the same order main.c does: car, cdr, lambda, +, -, *, /.
func (s *State) Bootstrap() {
	bind := func(name string, fn func(*Frame) (int, error)) {
		s.Root.Put(s.NewSymbol(name), s.NewPrimitive(name, fn))
	}
	bind("car", biCar)
	bind("cdr", biCdr)
	bind("lambda", biLambda)
	bind("+", biAdd)
	bind("-", biSub)
	bind("*", biMul)
	bind("/", biDiv)
}

// Read parses one top-level form from src and sets it directly as a fresh
// frame's program, mirroring tet_read's `f->vp = v` (no extra wrapping
// list). A bare atom (e.g. a lone number or symbol) is therefore a valid
// program on its own: evalLoop special-cases a non-pair program as
// something to evaluate and return directly rather than apply.
func (s *State) Read(src string) *Frame {
	pos := 0
	v, _ := s.Parse(src, &pos)
	return s.NewFrame(s.Root, v)
}

// EvalString reads and evaluates the first top-level form in src against
// this interpreter's root environment. The returned Value is either the
// program's result or an *ErrorValue describing why evaluation failed;
// EvalString never returns a Go error, matching the evaluator's own
// value-or-error-value contract (§7).
func (s *State) EvalString(src string) Value {
	f := s.Read(src)
	s.Active = f
	result := Eval(s, f)
	s.Active = nil
	return result
}

// GCLiveCount reports the number of cells currently tracked by the heap
// registry, for diagnostics and tests (§8 invariant 1).
func (s *State) GCLiveCount() int { return s.liveCount() }

// Close runs a final, unconditional sweep over every registered cell
// (§6: "destruction ... runs a final GC by reclaiming all registered
// cells regardless of reachability"), mirroring tstate_del. The state
// must not be used afterwards.
func (s *State) Close() int {
	return s.finalSweep()
}
