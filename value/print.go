package value

import (
	"fmt"
	"io"
	"strconv"
)

var quoteForms = map[*Symbol]string{
	SymQuote.AsSymbol():           "'",
	SymQuasiquote.AsSymbol():      "`",
	SymUnquote.AsSymbol():         ",",
	SymUnquoteSplicing.AsSymbol(): ",@",
}

var charNames = map[byte]string{
	0:    "nul",
	'\r': "return",
	'\n': "newline",
	'\t': "tab",
	' ':  "space",
}

// Write renders v to w. When write is true, strings are double-quoted and
// characters use the #\ syntax (spec §6, the "write" flag); when false,
// both are rendered raw (disp form).
func Write(w io.Writer, v Value, write bool) error {
	b, err := appendValue(nil, v, write)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// String renders v the way Write would, returning the result directly;
// convenient for error messages and tests.
func String(v Value, write bool) string {
	b, _ := appendValue(nil, v, write)
	return string(b)
}

func appendValue(b []byte, v Value, write bool) ([]byte, error) {
	switch v.tag {
	case NIL:
		return append(b, "nil"...), nil
	case SYM:
		return append(b, v.sym.Name...), nil
	case NUM:
		return strconv.AppendFloat(b, v.num, 'g', 16, 64), nil
	case CHAR:
		if !write {
			return append(b, v.ch), nil
		}
		if name, ok := charNames[v.ch]; ok {
			return append(append(b, "#\\"...), name...), nil
		}
		return append(append(b, "#\\"...), v.ch), nil
	case STRING:
		s := v.AsStr()
		if !write {
			return append(b, s.B...), nil
		}
		return strconv.AppendQuote(b, string(s.B)), nil
	case CONS:
		return appendList(b, v, write)
	case TABLE:
		t := v.AsTable()
		b = append(b, "#<table:("...)
		first := true
		var err error
		t.Each(func(k, val Value) {
			if err != nil {
				return
			}
			if !first {
				b = append(b, ' ')
			}
			first = false
			b = append(b, '(')
			b, err = appendValue(b, k, write)
			if err != nil {
				return
			}
			b = append(b, " . "...)
			b, err = appendValue(b, val, write)
			if err != nil {
				return
			}
			b = append(b, ')')
		})
		if err != nil {
			return b, err
		}
		return append(b, ")>"...), nil
	case BUILTIN:
		name, _ := v.AsBuiltin()
		return append(b, fmt.Sprintf("#<builtin:%s>", name)...), nil
	case CLOSURE:
		c := v.AsClosure()
		return append(b, fmt.Sprintf("#<closure:%s>", c.Name)...), nil
	case MACRO:
		c := v.AsClosure()
		return append(b, fmt.Sprintf("#<macro:%s>", c.Name)...), nil
	case INPUT:
		return append(b, fmt.Sprintf("#<input:%s>", v.AsPort().Name)...), nil
	case INPUTPIPE:
		return append(b, fmt.Sprintf("#<input-pipe:%s>", v.AsPort().Name)...), nil
	case OUTPUT:
		return append(b, fmt.Sprintf("#<output:%s>", v.AsPort().Name)...), nil
	case CONTINUATION:
		return append(b, "#<continuation>"...), nil
	default:
		return b, fmt.Errorf("value: cannot print tag %d", v.tag)
	}
}

// appendList renders a CONS chain, recognizing the (quote x)-family
// two-element forms as their reader-macro prefix (spec §6).
func appendList(b []byte, v Value, write bool) ([]byte, error) {
	p := v.AsPair()
	if p.Car.tag == SYM && p.Cdr.tag == CONS {
		cdr := p.Cdr.AsPair()
		if cdr.Cdr.tag == NIL {
			if prefix, ok := quoteForms[p.Car.sym]; ok {
				b = append(b, prefix...)
				return appendValue(b, cdr.Car, write)
			}
		}
	}
	var err error
	b = append(b, '(')
	first := true
	cur := v
	for cur.tag == CONS {
		cp := cur.AsPair()
		if !first {
			b = append(b, ' ')
		}
		first = false
		b, err = appendValue(b, cp.Car, write)
		if err != nil {
			return b, err
		}
		cur = cp.Cdr
	}
	if cur.tag != NIL {
		b = append(b, " . "...)
		b, err = appendValue(b, cur, write)
		if err != nil {
			return b, err
		}
	}
	return append(b, ')'), nil
}
