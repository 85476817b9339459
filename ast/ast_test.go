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

package ast_test

import (
	"testing"

	"github.com/wdamron/objtype/ast"
	. "github.com/wdamron/objtype/construct"
)

func TestExprString(t *testing.T) {
	expr := LetRec(
		[]ast.LetBinding{
			LetBinding("loop", Object(Method("run", "x", Call(Var("loop"), "run", Var("x"))))),
		},
		Begin(
			Call(Var("loop"), "run", Var("0")),
			Call(Let("id", Object(Method("id", "x", Var("x"))), Var("id")), "id", This()),
		),
	)
	s := ast.ExprString(expr)
	expect := "let rec loop = {run: x -> loop.run(x)} in (loop.run(0); (let id = {id: x -> x} in id).id(this))"
	if s != expect {
		t.Fatalf("expr: %s", s)
	}
	t.Logf("expr: %s", s)
}

func TestWalkExpr(t *testing.T) {
	expr := LetGroup(
		[]ast.LetBinding{LetBinding("a", Var("0")), LetBinding("b", Object(Method("m", "x", Var("x"))))},
		Call(Var("a"), "add", Var("b")),
	)
	var names []string
	ast.WalkExpr(expr, func(e ast.Expr) { names = append(names, e.ExprName()) })
	expect := []string{"Let", "Var", "Object", "Var", "Call", "Var", "Var"}
	if len(names) != len(expect) {
		t.Fatalf("visited: %v", names)
	}
	for i := range expect {
		if names[i] != expect[i] {
			t.Fatalf("visited: %v", names)
		}
	}
}
