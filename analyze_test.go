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

package objtype_test

import (
	"errors"
	"testing"

	. "github.com/wdamron/objtype"
	. "github.com/wdamron/objtype/construct"

	"github.com/wdamron/objtype/ast"
	"github.com/wdamron/objtype/types"
)

func expectType(t *testing.T, expr ast.Expr, expect string) types.Type {
	t.Helper()
	c := NewChecker()
	ty, err := c.Check(expr, NewPrelude())
	if err != nil {
		t.Fatalf("%s: %v", ast.ExprString(expr), err)
	}
	if s := types.TypeString(ty); s != expect {
		t.Fatalf("%s: expected %q, found %q", ast.ExprString(expr), expect, s)
	}
	t.Logf("%s :: %s", ast.ExprString(expr), types.TypeString(ty))
	return ty
}

func expectMissingMethod(t *testing.T, expr ast.Expr, name string) *Checker {
	t.Helper()
	c := NewChecker()
	_, err := c.Check(expr, NewPrelude())
	var missing *types.MissingMethodError
	if !errors.As(err, &missing) || missing.Name != name {
		t.Fatalf("%s: expected missing method %s, found %v", ast.ExprString(expr), name, err)
	}
	if c.Error() != err || c.InvalidExpr() == nil {
		t.Fatalf("%s: expected the failure to be recorded", ast.ExprString(expr))
	}
	t.Logf("%s failed: %v", ast.ExprString(expr), err)
	return c
}

func identity() *ast.Object { return Object(Method("id", "x", Var("x"))) }

func ifThenElse(then, els ast.Expr) *ast.Call {
	return Call(Var("if"), "if", Object(Method("then", "x", then), Method("else", "x", els)))
}

func TestCheckBasics(t *testing.T) {
	expectType(t, Var("0"), "int")
	expectType(t, Call(Var("0"), "add", Var("1")), "int")
	expectType(t, identity(), "{id: A -> A}")
	expectType(t, Object(Method("self", "x", This())), "A\nwhere\n  A = {self: B -> A}")
	expectType(t, Call(identity(), "id", Var("0")), "int")
	expectType(t, Call(Var("true"), "match", Object(
		Method("true", "x", Var("0")),
		Method("false", "x", Var("1")),
	)), "int")

	var notSub *types.NotASubtypeError
	if _, err := NewChecker().Check(Call(Var("0"), "add", identity()), NewPrelude()); !errors.As(err, &notSub) {
		t.Fatalf("expected an object to not extend int, found %v", err)
	}
}

func TestCheckRequirements(t *testing.T) {
	gety := Object(Method("gety", "x", Call(Var("x"), "y", Var("void"))))
	expectType(t, gety, "{gety: A -> B}\nwhere\n  A = {y: void -> B}")
	expectType(t, Object(
		Method("gety", "x", Call(This(), "y", Var("void"))),
		Method("y", "x", Var("0")),
	), "{gety: A -> int, y: void -> int}")
	expectType(t, Call(gety, "gety", Object(Method("y", "x", Var("0")))), "int")

	gety = Object(Method("gety", "x", Call(Var("x"), "y", Var("void"))))
	c := expectMissingMethod(t, Call(gety, "gety", Object(Method("x", "_", Var("0")))), "y")
	if _, ok := c.InvalidExpr().(*ast.Call); !ok {
		t.Fatalf("expected the failing call to be recorded")
	}

	expectType(t, Object(Method("f", "x", Begin(
		Call(Var("x"), "f", Var("0")),
		Call(Var("x"), "g", Var("0")),
	))), "{f: A -> B}\nwhere\n  A = {f: int -> C, g: int -> B}")
}

func TestCheckIf(t *testing.T) {
	sum := func() ast.Expr { return Call(Var("0"), "add", Var("0")) }
	expectType(t, ifThenElse(Var("0"), sum()), "int")
	expectType(t, Call(ifThenElse(sum(), Var("0")), "add", Var("0")), "int")
	expectMissingMethod(t, Call(ifThenElse(sum(), Var("0")), "f", Var("0")), "f")
	expectMissingMethod(t, Call(ifThenElse(Var("void"), Var("0")), "add", Var("0")), "add")

	expectType(t, Begin(ifThenElse(sum(), Var("0")), ifThenElse(Var("void"), Var("void"))), "void")
	expectMissingMethod(t, Call(Begin(ifThenElse(sum(), Var("0")), ifThenElse(Var("void"), Var("void"))), "add", Var("0")), "add")
	expectType(t, Call(Begin(ifThenElse(Var("void"), Var("void")), ifThenElse(Var("0"), Var("0"))), "add", Var("0")), "int")
}

func TestCheckNestedObjects(t *testing.T) {
	eg := func(body ast.Expr) *ast.Object { return Object(Method("eg", "id", body)) }

	expectType(t, Call(eg(Call(Var("id"), "id", Var("0"))), "eg", identity()), "int")
	expectType(t, Call(Call(eg(Call(Var("id"), "a", Var("0"))), "eg", Object(Method("a", "x", Var("x")))), "add", Var("0")), "int")
	expectMissingMethod(t, Call(Call(eg(Call(Var("id"), "a", Var("0"))), "eg", Object(Method("a", "x", Var("x")))), "bdd", Var("0")), "bdd")

	// the parameter is fixed within the method, so both calls share the identity's input:
	expectMissingMethod(t, Call(Call(eg(Begin(
		Call(Var("id"), "id", Var("void")),
		Call(Var("id"), "id", Var("0")),
	)), "eg", identity()), "add", Var("0")), "add")
}

func TestLetPolymorphism(t *testing.T) {
	uses := func(id ast.Expr) ast.Expr {
		return Begin(
			Call(Call(id, "id", Var("true")), "match", Object(
				Method("true", "x", Var("void")),
				Method("false", "x", Var("void")),
			)),
			Call(Call(id, "id", Var("0")), "add", Var("0")),
		)
	}
	expectType(t, Let("id", identity(), uses(Var("id"))), "int")
	// a parameter is not generic, so int must also support match:
	expectMissingMethod(t, Call(Object(Method("f", "id", uses(Var("id")))), "f", identity()), "match")

	// the result of a call on a parameter is shared by every use of the binding:
	expectMissingMethod(t, Call(Object(Method("f", "p", Let("y", Call(Var("p"), "get", Var("0")), Begin(
		Call(Var("y"), "add", Var("0")),
		Call(Var("y"), "match", Var("0")),
	)))), "f", Object(Method("get", "z", Var("0")))), "match")

	eg := Object(Method("eg", "f", Call(Var("f"), "id", Var("0"))))
	expectType(t, Let("eg", eg, Begin(
		Call(Call(Var("eg"), "eg", identity()), "add", Var("0")),
		Call(Var("eg"), "eg", Object(Method("id", "x", Var("true")))),
	)), "bool")

	eg = Object(Method("eg", "f", Call(Var("f"), "id", Var("0"))))
	expectMissingMethod(t, Call(Object(Method("run", "eg", Begin(
		Call(Call(Var("eg"), "eg", identity()), "add", Var("0")),
		Call(Var("eg"), "eg", Object(Method("id", "x", Var("true")))),
	))), "run", eg), "add")
}

func TestGroupedLet(t *testing.T) {
	expr := LetGroup(
		[]ast.LetBinding{
			LetBinding("id", identity()),
			LetBinding("two", Call(Var("1"), "add", Var("1"))),
		},
		Call(Var("id"), "id", Var("two")))
	expectType(t, expr, "int")

	// bindings in a group cannot refer to each other:
	expr = LetGroup(
		[]ast.LetBinding{
			LetBinding("id", identity()),
			LetBinding("two", Call(Var("id"), "id", Var("1"))),
		},
		Var("two"))
	var unbound *UnboundNameError
	if _, err := NewChecker().Check(expr, NewPrelude()); !errors.As(err, &unbound) || unbound.Name != "id" {
		t.Fatalf("expected unbound name id, found %v", err)
	}
}

func TestRecursiveObjects(t *testing.T) {
	rec := Object(Method("rec", "x", Call(This(), "rec", Var("x"))))
	c := NewChecker()
	ty, err := c.Check(Call(rec, "rec", Var("0")), NewPrelude())
	if err != nil || ty == nil {
		t.Fatal(err)
	}
	if rec.ThisType().Binding() != rec.Type() {
		t.Fatalf("expected this to be bound to the object")
	}
	if err := types.Extends(rec.Type(), rec.Type(), nil); err != nil {
		t.Fatal(err)
	}
}

func TestLetRec(t *testing.T) {
	test := func(result, other string) ast.MethodDef {
		return Method("test", "n", ifThenElse(
			Var(result),
			Call(Var(other), "test", Call(Var("n"), "add", Var("1"))),
		))
	}
	expr := LetRec(
		[]ast.LetBinding{
			LetBinding("even", Object(test("true", "odd"))),
			LetBinding("odd", Object(test("false", "even"))),
		},
		Call(Call(Var("even"), "test", Var("0")), "match", Object(
			Method("true", "x", Var("0")),
			Method("false", "x", Var("1")),
		)))
	expectType(t, expr, "int")

	expectMissingMethod(t, LetRec(
		[]ast.LetBinding{LetBinding("f", Object(Method("run", "x", Call(Var("f"), "run", Call(Var("x"), "add", Var("0"))))))},
		Call(Var("f"), "run", Var("true"))), "add")

	c := expectMissingMethod(t, LetRec(
		[]ast.LetBinding{LetBinding("f", Object(Method("run", "x", Call(Var("f"), "other", Var("x")))))},
		Var("f")), "other")
	if _, ok := c.InvalidExpr().(*ast.Object); !ok {
		t.Fatalf("expected the bound value to be recorded")
	}
}

func TestDuplicateMethods(t *testing.T) {
	expectType(t, Call(Object(
		Method("m", "x", Var("0")),
		Method("m", "x", Var("void")),
	), "m", Var("void")), "int")
}

func TestCheckErrors(t *testing.T) {
	c := NewChecker()
	v := Var("nope")
	var unbound *UnboundNameError
	if _, err := c.Check(Call(Var("0"), "add", v), NewPrelude()); !errors.As(err, &unbound) || unbound.Name != "nope" {
		t.Fatalf("expected unbound name, found %v", err)
	}
	if c.InvalidExpr() != v {
		t.Fatalf("expected the unbound variable to be recorded")
	}
	if _, err := c.Check(Begin(), NewPrelude()); !errors.Is(err, ErrEmptyBegin) {
		t.Fatalf("expected an empty sequence to fail, found %v", err)
	}
	if _, err := c.Check(nil, NewPrelude()); !errors.Is(err, ErrInvalidExpr) {
		t.Fatalf("expected a nil expression to fail, found %v", err)
	}
	bad := &ast.Call{Object: Var("0"), Method: "add"}
	if _, err := c.Check(Begin(Var("0"), bad), NewPrelude()); !errors.Is(err, ErrInvalidExpr) || c.InvalidExpr() != bad {
		t.Fatalf("expected an incomplete call to fail, found %v", err)
	}
	// a nil environment is empty:
	if ty, err := c.Check(identity(), nil); err != nil || types.TypeString(ty) != "{id: A -> A}" {
		t.Fatalf("expected an object to check without an environment, found %v", err)
	}
	if _, err := c.Check(Var("0"), nil); !errors.As(err, &unbound) || unbound.Name != "0" {
		t.Fatalf("expected unbound name without an environment, found %v", err)
	}
	// the checker is reset between checks:
	if ty, err := c.Check(Var("0"), NewPrelude()); err != nil || ty == nil || c.Error() != nil || c.InvalidExpr() != nil {
		t.Fatalf("expected the checker to be reset: %v", err)
	}
}

func TestExpressionTypes(t *testing.T) {
	arg := Var("0")
	obj := identity()
	call := Call(obj, "id", arg)
	if _, err := NewChecker().Check(call, NewPrelude()); err != nil {
		t.Fatal(err)
	}
	if types.PrimitiveName(arg.Type()) != "int" {
		t.Fatalf("expected the argument to be typed")
	}
	if obj.Methods[0].Method() == nil || obj.Methods[0].Method().Out() == nil {
		t.Fatalf("expected the method to be typed")
	}
	if call.Type() == nil || types.TypeString(call.Type()) != "int" {
		t.Fatalf("expected the call to be typed")
	}
}
