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

package construct

import (
	"github.com/wdamron/objtype/ast"
	"github.com/wdamron/objtype/types"
)

// Types

// Create a new abstract type defined within scope. A nil scope is treated as the global scope.
func TAbstract(scope *types.Scope) *types.Abstract {
	return types.NewAbstract(scope)
}

// Concrete type: `{add: int -> int, sub: int -> int}`
func TConcrete(methods ...*types.Method) *types.Concrete {
	return types.NewConcrete(methods...)
}

// Concrete type which refers to itself: `A where A = {next: int -> A}`
func TRecursive(bind func(self *types.Concrete) []*types.Method) *types.Concrete {
	return types.NewRecursiveConcrete(bind)
}

// Base type tagged with a primitive name: `int`, `bool`, etc
func TBase(name string, bind func(self *types.Concrete) []*types.Method) *types.Concrete {
	return types.NewBase(name, bind)
}

// Method type defined within the global scope: `add: int -> int`
func TMethod(name string, in, out types.Type) *types.Method {
	return types.NewMethod(types.GlobalScope, name, in, out)
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// The enclosing object within a method body: `this`
func This() *ast.Var {
	return &ast.Var{Name: ast.ThisName}
}

// Object literal: `{get: x -> x}`
func Object(methods ...ast.MethodDef) *ast.Object {
	return &ast.Object{Methods: methods}
}

// Method definition: `get: x -> x`
func Method(name, param string, body ast.Expr) ast.MethodDef {
	return ast.MethodDef{Name: name, Param: param, Body: body}
}

// Method invocation: `obj.name(arg)`
func Call(obj ast.Expr, method string, arg ast.Expr) *ast.Call {
	return &ast.Call{Object: obj, Method: method, Arg: arg}
}

// Sequence: `(a; b; c)`
func Begin(exprs ...ast.Expr) *ast.Begin {
	return &ast.Begin{Exprs: exprs}
}

// Let-binding: `let a = x in e`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: []ast.LetBinding{{Name: name, Value: value}}, Body: body}
}

// Grouped let-bindings: `let a = x and b = y in e`
func LetGroup(bindings []ast.LetBinding, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: bindings, Body: body}
}

// Recursive let-bindings: `let rec a = x and b = y in e`
func LetRec(bindings []ast.LetBinding, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Bindings: bindings, Body: body}
}

// Paired identifier and value
func LetBinding(name string, value ast.Expr) ast.LetBinding {
	return ast.LetBinding{Name: name, Value: value}
}
