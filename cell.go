package tet

// objKind is the 2-bit object-kind tag every heap-resident struct in tet
// carries in the top bits of its mark byte. It is assigned once, at
// construction, and never changes afterwards.
type objKind uint8

const (
	objKindEnv objKind = iota
	objKindFrame
	objKindValue
)

const (
	markOffset = 6
	markType   = uint8(0xC0)
	markValue  = uint8(0x3F)
)

// header is embedded by every heap-resident struct (Environment, Frame,
// and every Value variant). It packs a 2-bit kind and a 6-bit mark color
// into a single byte, mirroring tet.h's GC_HEADER/SETMARK/GETMARK macros.
type header struct {
	mark uint8
}

func newHeader(k objKind) header {
	return header{mark: uint8(k) << markOffset}
}

func (h *header) kind() objKind {
	return objKind(h.mark >> markOffset)
}

func (h *header) color() uint8 {
	return h.mark & markValue
}

func (h *header) setColor(c uint8) {
	h.mark = (h.mark & markType) | (c & markValue)
}

// gcObject is implemented by every struct the heap registry tracks:
// Environment, Frame, and every Value variant.
type gcObject interface {
	gcHeader() *header
	// gcMark colors this object (and everything it owns) with color,
	// and returns the count of objects newly colored, including self.
	// Returns 0 if this object was already colored.
	gcMark(s *State, color uint8) int
	// gcFinalize releases any resources this object owns beyond the
	// struct itself, prior to the object being dropped from the registry.
	gcFinalize()
}

// ValueKind is the tag of the Value tagged union (§3 DATA MODEL).
type ValueKind uint8

const (
	KindError ValueKind = iota
	KindNumber
	KindSymbol
	KindString
	KindSExpr
	KindQExpr
	KindPrimitive
	KindClosure
	KindEnvRef
	KindFrameRef
)

var valueKindNames = map[ValueKind]string{
	KindError:     "ERROR",
	KindNumber:    "NUMBER",
	KindSymbol:    "SYMBOL",
	KindString:    "STRING",
	KindSExpr:     "SEXPR",
	KindQExpr:     "QEXPR",
	KindPrimitive: "BUILTIN",
	KindClosure:   "LAMBDA",
	KindEnvRef:    "ENV",
	KindFrameRef:  "FRAME",
}

func (k ValueKind) String() string {
	if n, ok := valueKindNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}
