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

import (
	"github.com/wdamron/objtype/types"
)

// ThisName is the name bound to the enclosing object within each method body.
const ThisName = "this"

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are only available after checking.
	Type() types.Type
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*Object)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Begin)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
)

// Variable
type Var struct {
	Name     string
	inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Get the inferred (or assigned) type of e.
func (e *Var) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during checking.
func (e *Var) SetType(t types.Type) { e.inferred = t }

// Object literal: `{get: x -> x, self: _ -> this}`
//
// Within each method body, ThisName refers to the object itself.
type Object struct {
	Methods  []MethodDef
	inferred *types.Concrete
	this     *types.Abstract
}

// "Object"
func (e *Object) ExprName() string { return "Object" }

// Get the inferred (or assigned) type of e.
func (e *Object) Type() types.Type {
	if e.inferred == nil {
		return nil
	}
	return e.inferred
}

// Assign a type to e. Type assignments should occur indirectly, during checking.
func (e *Object) SetType(t *types.Concrete) { e.inferred = t }

// Get the type bound to ThisName within the methods of e.
func (e *Object) ThisType() *types.Abstract { return e.this }

// Assign the type bound to ThisName. Type assignments should occur indirectly, during checking.
func (e *Object) SetThisType(t *types.Abstract) { e.this = t }

// Method definition within an Object: `name: param -> body`
type MethodDef struct {
	Name   string
	Param  string
	Body   Expr
	method *types.Method
}

// Get the inferred (or assigned) method of e.
func (e *MethodDef) Method() *types.Method { return e.method }

// Assign the method of e. Type assignments should occur indirectly, during checking.
func (e *MethodDef) SetMethod(m *types.Method) { e.method = m }

// Method invocation: `obj.name(arg)`
type Call struct {
	Object   Expr
	Method   string
	Arg      Expr
	inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during checking.
func (e *Call) SetType(t types.Type) { e.inferred = t }

// Sequence: `(a; b; c)`
type Begin struct {
	Exprs []Expr
}

// "Begin"
func (e *Begin) ExprName() string { return "Begin" }

// Get the inferred (or assigned) type of e.
func (e *Begin) Type() types.Type {
	if len(e.Exprs) == 0 {
		return nil
	}
	return e.Exprs[len(e.Exprs)-1].Type()
}

// Generic let-binding: `let a = x and b = y in e`
type Let struct {
	Bindings []LetBinding
	Body     Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Get the inferred (or assigned) type of e.
func (e *Let) Type() types.Type { return e.Body.Type() }

// Recursive let-binding: `let rec a = x and b = y in e`
//
// Each bound value may refer to any of the names in the group.
type LetRec struct {
	Bindings []LetBinding
	Body     Expr
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }

// Get the inferred (or assigned) type of e.
func (e *LetRec) Type() types.Type { return e.Body.Type() }

// Paired identifier and value
type LetBinding struct {
	Name  string
	Value Expr
}

// Get the inferred (or assigned) type of e.
func (e *LetBinding) Type() types.Type { return e.Value.Type() }
