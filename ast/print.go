package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders e back into the input language. It is used by the parser's
// round-trip test (parse(Print(parse(s))) must equal parse(s) structurally)
// and is not required to reproduce the original source text verbatim —
// only to be re-parseable to the same tree.
func Print(e Expr) string {
	var b strings.Builder
	print(&b, e)
	return b.String()
}

func print(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Const:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case VarRef:
		b.WriteString(n.Name)
	case Not:
		b.WriteString("not (")
		print(b, n.X)
		b.WriteString(")")
	case Bin:
		b.WriteString("(")
		print(b, n.X)
		fmt.Fprintf(b, " %s ", n.Op)
		print(b, n.Y)
		b.WriteString(")")
	case If:
		b.WriteString("(if (")
		print(b, n.Cond)
		b.WriteString(") then (")
		print(b, n.Then)
		b.WriteString(") else (")
		print(b, n.Else)
		b.WriteString("))")
	case Quant:
		if n.Kind == QuantExists {
			b.WriteString("(exists ")
		} else {
			b.WriteString("(forall ")
		}
		b.WriteString(strings.Join(n.Vars, ","))
		b.WriteString(" # (")
		print(b, n.Body)
		b.WriteString("))")
	case Card:
		b.WriteString("[")
		for i, t := range n.Terms {
			if i > 0 {
				b.WriteString(",")
			}
			print(b, t)
		}
		b.WriteString("]")
		fmt.Fprintf(b, " %s ", n.Cmp)
		switch rhs := n.RHS.(type) {
		case IntRHS:
			b.WriteString(strconv.Itoa(rhs.N))
		case VecRHS:
			b.WriteString("[")
			for i, t := range rhs.Terms {
				if i > 0 {
					b.WriteString(",")
				}
				print(b, t)
			}
			b.WriteString("]")
		}
	case Fix:
		if n.Kind == FixMu {
			b.WriteString("(mu ")
		} else {
			b.WriteString("(nu ")
		}
		b.WriteString(n.Var)
		b.WriteString(" # (")
		print(b, n.Body)
		b.WriteString("))")
	default:
		b.WriteString("?")
	}
}
