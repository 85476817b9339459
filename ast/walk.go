// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

// WalkExpr calls f for e and then for each sub-expression of e, depth-first and left-to-right.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Var:
		f(e)

	case *Object:
		f(e)
		for _, m := range e.Methods {
			WalkExpr(m.Body, f)
		}

	case *Call:
		f(e)
		WalkExpr(e.Object, f)
		WalkExpr(e.Arg, f)

	case *Begin:
		f(e)
		for _, sub := range e.Exprs {
			WalkExpr(sub, f)
		}

	case *Let:
		f(e)
		for _, b := range e.Bindings {
			WalkExpr(b.Value, f)
		}
		WalkExpr(e.Body, f)

	case *LetRec:
		f(e)
		for _, b := range e.Bindings {
			WalkExpr(b.Value, f)
		}
		WalkExpr(e.Body, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}
