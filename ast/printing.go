package ast

import (
	"strings"
)

func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Object:
		sb.WriteByte('{')
		for i, m := range et.Methods {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.Name)
			sb.WriteString(": ")
			sb.WriteString(m.Param)
			sb.WriteString(" -> ")
			exprString(sb, false, m.Body)
		}
		sb.WriteByte('}')

	case *Call:
		exprString(sb, true, et.Object)
		sb.WriteByte('.')
		sb.WriteString(et.Method)
		sb.WriteByte('(')
		exprString(sb, false, et.Arg)
		sb.WriteByte(')')

	case *Begin:
		sb.WriteByte('(')
		for i, e := range et.Exprs {
			if i > 0 {
				sb.WriteString("; ")
			}
			exprString(sb, false, e)
		}
		sb.WriteByte(')')

	case *Let:
		letString(sb, simple, "let ", et.Bindings, et.Body)

	case *LetRec:
		letString(sb, simple, "let rec ", et.Bindings, et.Body)

	case nil:
		sb.WriteString("<nil>")
	}
}

func letString(sb *strings.Builder, simple bool, keyword string, bindings []LetBinding, body Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(keyword)
	for i, b := range bindings {
		if i > 0 {
			sb.WriteString(" and ")
		}
		sb.WriteString(b.Name)
		sb.WriteString(" = ")
		exprString(sb, false, b.Value)
	}
	sb.WriteString(" in ")
	exprString(sb, false, body)
	if simple {
		sb.WriteByte(')')
	}
}
