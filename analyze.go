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

package objtype

import (
	"fmt"

	"github.com/wdamron/objtype/ast"
	"github.com/wdamron/objtype/types"
)

// Record the expression at which checking failed. Errors returned from nested expressions are
// propagated without replacing the innermost failing expression.
func (c *Checker) fail(e ast.Expr, err error) error {
	if c.invalid == nil {
		c.invalid = e
	}
	c.err = err
	return err
}

// Abstract types of a let-bound value which are linked to the enclosing environment (such as the
// result of a call on a method parameter) are not generalized.
func (c *Checker) escape(env *TypeEnv, letScope, scope *types.Scope) {
	if n := types.Escape(env.Types(), letScope, scope); n > 0 {
		c.logger.Debug("escaped", "depth", c.depth, "scope", letScope.String(), "types", n)
	}
}

func (c *Checker) analyze(env *TypeEnv, scope *types.Scope, expr ast.Expr) (types.Type, error) {
	c.depth++
	defer func() { c.depth-- }()

	switch e := expr.(type) {
	case *ast.Var:
		b, ok := env.Lookup(e.Name)
		if !ok {
			return nil, c.fail(e, &UnboundNameError{Name: e.Name})
		}
		t := b.Type
		if b.Generic {
			t = types.Instantiate(t, b.Boundary)
		}
		e.SetType(t)
		return t, nil

	case *ast.Object:
		this := types.NewAbstract(scope)
		e.SetThisType(this)
		inner := env.Fixed(ast.ThisName, this)
		methods := make([]*types.Method, len(e.Methods))
		for i := range e.Methods {
			def := &e.Methods[i]
			methodScope := types.NewScope(scope, def.Name)
			param := types.NewAbstract(methodScope)
			m := types.NewMethod(methodScope, def.Name, param, nil)
			def.SetMethod(m)
			out, err := c.analyze(inner.Fixed(def.Param, param), methodScope, def.Body)
			if err != nil {
				return nil, err
			}
			m.SetOut(out)
			methods[i] = m
		}
		obj := types.NewConcrete(methods...)
		// self-references within the methods must accept the object itself:
		if err := types.Extends(obj, this, nil); err != nil {
			return nil, c.fail(e, err)
		}
		if err := this.Bind(obj); err != nil {
			return nil, c.fail(e, err)
		}
		e.SetType(obj)
		c.logger.Debug("object", "depth", c.depth, "scope", scope.String(), "methods", len(methods))
		return obj, nil

	case *ast.Call:
		obj, err := c.analyze(env, scope, e.Object)
		if err != nil {
			return nil, err
		}
		arg, err := c.analyze(env, scope, e.Arg)
		if err != nil {
			return nil, err
		}
		result := types.NewAbstract(scope)
		required := types.NewConcrete(types.NewMethod(scope, e.Method, arg, result))
		if err := types.Extends(obj, required, nil); err != nil {
			c.logger.Debug("call failed", "depth", c.depth, "method", e.Method, "err", err)
			return nil, c.fail(e, err)
		}
		e.SetType(result)
		return result, nil

	case *ast.Begin:
		if len(e.Exprs) == 0 {
			return nil, c.fail(e, ErrEmptyBegin)
		}
		var last types.Type
		for _, sub := range e.Exprs {
			t, err := c.analyze(env, scope, sub)
			if err != nil {
				return nil, err
			}
			last = t
		}
		return last, nil

	case *ast.Let:
		letScope := types.NewScope(scope, "let")
		bodyEnv := env
		for _, b := range e.Bindings {
			t, err := c.analyze(env, letScope, b.Value)
			if err != nil {
				return nil, err
			}
			bodyEnv = bodyEnv.Generic(b.Name, t, letScope)
		}
		c.escape(env, letScope, scope)
		return c.analyze(bodyEnv, scope, e.Body)

	case *ast.LetRec:
		letScope := types.NewScope(scope, "letrec")
		recEnv := env
		placeholders := make([]*types.Abstract, len(e.Bindings))
		for i, b := range e.Bindings {
			placeholders[i] = types.NewAbstract(letScope)
			recEnv = recEnv.Fixed(b.Name, placeholders[i])
		}
		bodyEnv := env
		for i, b := range e.Bindings {
			t, err := c.analyze(recEnv, letScope, b.Value)
			if err != nil {
				return nil, err
			}
			if err := types.Extends(t, placeholders[i], nil); err != nil {
				return nil, c.fail(b.Value, fmt.Errorf("let rec %s: %w", b.Name, err))
			}
			bodyEnv = bodyEnv.Generic(b.Name, t, letScope)
		}
		c.escape(env, letScope, scope)
		return c.analyze(bodyEnv, scope, e.Body)
	}

	return nil, c.fail(expr, fmt.Errorf("%w: unknown expression type %s", ErrInvalidExpr, expr.ExprName()))
}
