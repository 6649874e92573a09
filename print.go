package tet

import "strings"

// Sprint renders v the way tval_print does: symbols and error messages
// bare, strings quoted, numbers decimal, S/Q-expressions parenthesized/
// braced with space-separated elements, builtins and closures in angle
// brackets. A nil Value prints as "nil" (an empty list cell prints as
// "()"/"{}" instead, since it is never represented as Go nil — only the
// tail of the last cons cell in a proper list is).
func Sprint(v Value) string {
	var b strings.Builder
	sprint(&b, v)
	return b.String()
}

func sprint(b *strings.Builder, v Value) {
	if v == nil {
		b.WriteString("nil")
		return
	}

	switch vv := v.(type) {
	case *Symbol:
		b.WriteString(vv.Name)
	case *ErrorValue:
		b.WriteString(vv.Message)
	case *String:
		b.WriteByte('"')
		b.WriteString(vv.Bytes)
		b.WriteByte('"')
	case *Number:
		b.WriteString(itoa32(vv.N))
	case *Pair:
		open, close := byte('('), byte(')')
		if vv.Quoted {
			open, close = '{', '}'
		}
		b.WriteByte(open)
		if vv.Head == nil && vv.Tail == nil {
			b.WriteByte(close)
			return
		}
		cur := Value(vv)
		for cur != nil {
			p, ok := cur.(*Pair)
			if !ok {
				break
			}
			sprint(b, p.Head)
			cur = p.Tail
			if cur != nil {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(close)
	case *Primitive:
		b.WriteString("<builtin ")
		b.WriteString(vv.Name)
		b.WriteByte('>')
	case *Closure:
		b.WriteString("<lambda ")
		sprint(b, vv.Params)
		b.WriteByte(' ')
		sprint(b, vv.Body)
		b.WriteByte('>')
	case *EnvRef:
		b.WriteString("<env>")
	case *FrameRef:
		b.WriteString("<frame>")
	}
}

func itoa32(n int32) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
