package tet

// Reader turns source text into Value trees (§4.G), grounded on tet.c's
// tet_parse family. It is a single left-to-right pass with no
// backtracking: once a form starts, it runs to its natural end (a
// matching bracket, a closing quote, or a run of non-blank characters).
//
// Open Question 1 (resolved in DESIGN.md): an unclosed '(' or '{' is not
// a parse error. Exactly like tet_parse_sexpr/tet_parse_qexpr, reading
// simply continues until the input is exhausted and returns whatever
// partial list it built. Parse's second return value only reports
// whether a form was found at all (false at end of input), never
// malformed input.
type reader struct {
	in string
	i  int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isBlank(c byte) bool { return c == ' ' || c == '\n' || c == '\r' || c == '\t' }
func isClose(c byte) bool { return c == ')' || c == '}' }

func (r *reader) eof() bool { return r.i >= len(r.in) }

// Parse reads the next complete form from in, starting at *pos, and
// reports whether one was found. *pos is advanced past whatever was
// consumed either way.
func (s *State) Parse(in string, pos *int) (Value, bool) {
	r := &reader{in: in, i: *pos}
	v := r.parse(s)
	*pos = r.i
	return v, v != nil
}

// ParseAll reads every top-level form in src in order.
func (s *State) ParseAll(src string) []Value {
	var forms []Value
	pos := 0
	for {
		v, ok := s.Parse(src, &pos)
		if !ok {
			return forms
		}
		forms = append(forms, v)
	}
}

func (r *reader) parse(s *State) Value {
	for !r.eof() {
		c := r.in[r.i]
		switch {
		case isBlank(c):
			r.i++
			continue
		case c == '"':
			r.i++
			return r.parseStr(s)
		case c == '(':
			r.i++
			return r.parseList(s, ')', s.NewSExpr)
		case c == '{':
			r.i++
			return r.parseList(s, '}', s.NewQExpr)
		case isDigit(c):
			return r.parseNum(s)
		default:
			return r.parseSym(s)
		}
	}
	return nil
}

func (r *reader) parseNum(s *State) Value {
	var n int32
	for !r.eof() && isDigit(r.in[r.i]) {
		n = n*10 + int32(r.in[r.i]-'0')
		r.i++
	}
	return s.NewNumber(n)
}

func (r *reader) parseSym(s *State) Value {
	b := r.i
	for !r.eof() && !isBlank(r.in[r.i]) && !isClose(r.in[r.i]) {
		r.i++
	}
	return s.NewSymbol(r.in[b:r.i])
}

func (r *reader) parseStr(s *State) Value {
	b := r.i
	escaped := false
	for !r.eof() {
		c := r.in[r.i]
		if !escaped {
			if c == '"' {
				break
			}
			if c == '\\' {
				escaped = true
			}
		} else {
			escaped = false
		}
		r.i++
	}
	str := r.in[b:r.i]
	if !r.eof() {
		r.i++ // consume closing quote
	}
	return s.NewString(str)
}

// parseList reads forms until close or end of input, building a proper
// list with cons exactly as tet_parse_sexpr/tet_parse_qexpr do: the first
// form becomes the root cell's head, each subsequent form is appended by
// consing a fresh cell onto the tail.
func (r *reader) parseList(s *State, close byte, cons func(head, tail Value) *Pair) Value {
	root := cons(nil, nil)
	cur := root
	for !r.eof() && r.in[r.i] != close {
		v := r.parse(s)
		if v == nil {
			break // no progress possible (e.g. trailing blanks at EOF)
		}
		if cur.Head == nil {
			cur.Head = v
		} else {
			next := cons(v, nil)
			cur.Tail = next
			cur = next
		}
	}
	if !r.eof() {
		r.i++ // consume the closing bracket
	}
	return root
}
