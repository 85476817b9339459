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
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/wdamron/objtype/ast"
	"github.com/wdamron/objtype/types"
)

// Checker is a reusable context for type checking.
//
// A checker cannot be used concurrently.
type Checker struct {
	logger *slog.Logger
	depth  int

	err     error
	invalid ast.Expr
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger enables debug logging of analyzed expressions and failed constraints.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Create a new type checker. A checker may be reused.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) reset() { c.err, c.invalid, c.depth = nil, nil, 0 }

// Get the error which caused checking to fail.
func (c *Checker) Error() error { return c.err }

// Get the expression which caused checking to fail.
func (c *Checker) InvalidExpr() ast.Expr { return c.invalid }

// Check infers the type of expr within env.
//
// Types are assigned to the sub-expressions of expr. When checking fails, the partially inferred
// types of expr must be discarded; the failing sub-expression is available from InvalidExpr.
// Types within env may be constrained by checking; a type-environment with generic bindings
// (such as NewPrelude) is never constrained, since each lookup constrains a fresh instance.
func (c *Checker) Check(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	c.reset()
	if err := c.validate(expr); err != nil {
		return nil, err
	}
	t, err := c.analyze(env, types.GlobalScope, expr)
	if !c.logger.Enabled(context.Background(), slog.LevelDebug) {
		return t, err
	}
	if err != nil {
		c.logger.Debug("check failed", "expr", ast.ExprString(c.invalid), "err", err)
		return nil, err
	}
	c.logger.Debug("checked", "expr", ast.ExprString(expr), "type", types.TypeString(t))
	return t, nil
}

// Reject malformed expression trees before any constraints are recorded.
func (c *Checker) validate(root ast.Expr) error {
	if root == nil {
		c.err = fmt.Errorf("%w: empty expression", ErrInvalidExpr)
		return c.err
	}
	ast.WalkExpr(root, func(e ast.Expr) {
		if c.err != nil {
			return
		}
		var reason string
		switch e := e.(type) {
		case *ast.Var:
			if e.Name == "" {
				reason = "unnamed variable"
			}
		case *ast.Object:
			for _, m := range e.Methods {
				if m.Name == "" || m.Param == "" || m.Body == nil {
					reason = "incomplete method definition"
					break
				}
			}
		case *ast.Call:
			if e.Object == nil || e.Arg == nil || e.Method == "" {
				reason = "incomplete method call"
			}
		case *ast.Begin:
			for _, sub := range e.Exprs {
				if sub == nil {
					reason = "empty expression in sequence"
					break
				}
			}
		case *ast.Let:
			reason = validateBindings(e.Bindings, e.Body)
		case *ast.LetRec:
			reason = validateBindings(e.Bindings, e.Body)
		}
		if reason != "" {
			c.err, c.invalid = fmt.Errorf("%w: %s", ErrInvalidExpr, reason), e
		}
	})
	return c.err
}

func validateBindings(bindings []ast.LetBinding, body ast.Expr) string {
	if body == nil {
		return "empty let body"
	}
	for _, b := range bindings {
		if b.Name == "" || b.Value == nil {
			return "incomplete let binding"
		}
	}
	return ""
}
