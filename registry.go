package tet

// registryInitialCap, registryGrow and registryShrink implement the
// growth/shrink policy of §4.A: double on overflow starting from 8,
// halve when live count falls to at most one quarter of capacity and
// the halved capacity is still at least the initial size. Grounded on
// tet.c's tstate_track/tstate_untrack.
const registryInitialCap = 8

func registryGrow(cap int) int { return cap * 2 }
func registryShrink(cap int) int { return cap / 2 }

// track registers o into the heap registry, growing the backing array
// per the policy above.
func (s *State) track(o gcObject) {
	if cap(s.objects) == 0 {
		s.objects = make([]gcObject, 0, s.heapInitialCap())
	} else if len(s.objects) == cap(s.objects) {
		grown := make([]gcObject, len(s.objects), registryGrow(cap(s.objects)))
		copy(grown, s.objects)
		s.objects = grown
	}
	s.objects = append(s.objects, o)
}

// untrack removes o from the heap registry by identity. Removal swaps the
// last slot into the victim's position, so registry order is never
// observable from outside the package (§4.A).
func (s *State) untrack(o gcObject) {
	for i, c := range s.objects {
		if c == o {
			last := len(s.objects) - 1
			s.objects[i] = s.objects[last]
			s.objects[last] = nil
			s.objects = s.objects[:last]
			s.maybeShrink()
			return
		}
	}
}

func (s *State) heapInitialCap() int {
	if s.opts.HeapInitialCap > 0 {
		return s.opts.HeapInitialCap
	}
	return registryInitialCap
}

func (s *State) maybeShrink() {
	capNow := cap(s.objects)
	half := registryShrink(capNow)
	quarter := registryShrink(half)
	if half >= s.heapInitialCap() && quarter >= len(s.objects) {
		shrunk := make([]gcObject, len(s.objects), half)
		copy(shrunk, s.objects)
		s.objects = shrunk
	}
}

// liveCount returns the number of cells currently registered.
func (s *State) liveCount() int { return len(s.objects) }

// --- registration stack -------------------------------------------------
//
// register/forget/cleanup model tet.c's tralloc/trforget/trclean: a
// scratchpad of not-yet-cell-owned raw allocations, so that a non-local
// unwind mid-construction can free everything accumulated since the
// enclosing Catch. In Go the runtime already owns the memory backing a
// string once it exists, so there is nothing to literally free; what
// this preserves is the *bookkeeping discipline* itself (§5): every
// multi-step constructor pushes one entry per owned buffer it is about to
// allocate and pops them off (via forget) the moment it has successfully
// wired them into a tracked cell. See registry_test.go for the invariant
// this is meant to make checkable: the registration stack always returns
// to its pre-call depth, on both the success and the unwind path.

// register records that l bytes of raw, not-yet-cell-owned data are
// pending. l itself carries no meaning beyond documentation; what matters
// is the depth of the stack.
func (s *State) register(l int) {
	s.pending = append(s.pending, l)
}

// forget pops the last n registrations without any cleanup action,
// because the corresponding constructor completed and the data is now
// owned by a tracked cell.
func (s *State) forget(n int) {
	s.pending = s.pending[:len(s.pending)-n]
}

// cleanupTo drops every registration past depth (used by a Catch handler
// to discard everything accumulated since it was installed).
func (s *State) cleanupTo(depth int) {
	s.pending = s.pending[:depth]
}

// pendingDepth returns the current registration-stack depth.
func (s *State) pendingDepth() int { return len(s.pending) }
