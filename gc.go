package tet

// markValue dispatches to v's own gcMark, nil-safe (an empty list is
// represented as a nil Value and contributes nothing to the count).
// Grounded on tet.c's tet_mark, which switches on the cell's tag and
// recurses into whichever fields that tag owns.
func (s *State) markValue(v Value, color uint8) int {
	if v == nil {
		return 0
	}
	return v.gcMark(s, color)
}

// GC runs one full mark-and-sweep cycle (§4.E): mark every object
// reachable from the root environment and the active frame chain with the
// next color, then sweep everything left at the previous color. Returns
// the number of objects collected.
func (s *State) GC() int {
	next := (s.color + 1) % 64
	marked := 0

	if s.Root != nil {
		marked += s.Root.gcMark(s, next)
	}
	if s.Active != nil {
		marked += s.Active.gcMark(s, next)
	}

	s.color = next

	// Sweep: anything not colored `next` is unreachable. tstate_gc skips
	// the sweep entirely when every tracked object was just marked (the
	// heap is saturated with live data and a sweep would find nothing);
	// tstate_del instead always performs one final, unconditional sweep
	// regardless of this shortcut (§4.E, §9 supplemented feature).
	if marked >= s.liveCount() {
		return 0
	}
	return s.sweep(next)
}

// sweep removes and finalizes every object not colored `keep`, swap-
// removing from the registry as it goes, and returns the number collected.
func (s *State) sweep(keep uint8) int {
	collected := 0
	i := 0
	for i < len(s.objects) {
		o := s.objects[i]
		if o.gcHeader().color() == keep {
			i++
			continue
		}
		o.gcFinalize()
		last := len(s.objects) - 1
		s.objects[i] = s.objects[last]
		s.objects[last] = nil
		s.objects = s.objects[:last]
		collected++
		// do not advance i: the swapped-in object still needs checking
	}
	s.maybeShrink()
	return collected
}

// finalSweep collects every tracked object unconditionally, used once by
// Close (§9 supplemented feature, mirroring tstate_del's unconditional
// final pass regardless of the GC's usual marked-count shortcut).
func (s *State) finalSweep() int {
	collected := 0
	for _, o := range s.objects {
		o.gcFinalize()
	}
	collected = len(s.objects)
	s.objects = nil
	s.pending = nil
	return collected
}
