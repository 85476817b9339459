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

// Package scenario decodes expression trees and their expected outcomes from YAML, and checks them.
//
// A scenario file is a sequence of scenarios:
//
//	- name: identity
//	  expr:
//	    call:
//	      object: {object: [{name: id, param: x, body: x}]}
//	      method: id
//	      arg: "0"
//	  type: int
//
// A scalar expression is a variable. Other expressions are mappings with a single key: var, object,
// call, begin, let, or letrec.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wdamron/objtype"
	"github.com/wdamron/objtype/ast"
	"github.com/wdamron/objtype/types"
	"gopkg.in/yaml.v3"
)

// Expected outcomes of a scenario.
const (
	ExpectOK            = "ok"
	ExpectMissingMethod = "missing-method"
	ExpectNotASubtype   = "not-a-subtype"
	ExpectUnboundName   = "unbound-name"
	ExpectInvalid       = "invalid"
)

// ErrMalformed is returned when a scenario file cannot be decoded into scenarios.
var ErrMalformed = errors.New("scenario: malformed")

// Scenario is an expression and its expected outcome.
type Scenario struct {
	Name string `yaml:"name"`
	Expr Expr   `yaml:"expr"`
	// Expect is one of the Expect* outcomes; the default is ExpectOK.
	Expect string `yaml:"expect"`
	// Type is the expected TypeString of a successful check. An empty Type matches any type.
	Type string `yaml:"type"`
	// Missing is the name of the missing method or unbound identifier, for failing checks. An
	// empty Missing matches any name.
	Missing string `yaml:"missing"`
	Line    int    `yaml:"-"`
}

// Expr wraps an expression tree decoded from YAML.
type Expr struct {
	ast.Expr
}

// Load decodes a sequence of scenarios.
func Load(r io.Reader) ([]Scenario, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a sequence of scenarios", ErrMalformed, root.Line)
	}
	scenarios := make([]Scenario, 0, len(root.Content))
	for i, node := range root.Content {
		var s Scenario
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: scenario %d: %v", ErrMalformed, i+1, err)
		}
		s.Line = node.Line
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		switch s.Expect {
		case "":
			s.Expect = ExpectOK
		case ExpectOK, ExpectMissingMethod, ExpectNotASubtype, ExpectUnboundName, ExpectInvalid:
		default:
			return nil, fmt.Errorf("%w: line %d: unknown expectation %q", ErrMalformed, node.Line, s.Expect)
		}
		if s.Expr.Expr == nil && s.Expect != ExpectInvalid {
			return nil, fmt.Errorf("%w: line %d: missing expression", ErrMalformed, node.Line)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.AliasNode:
		return e.UnmarshalYAML(value.Alias)
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			e.Expr = nil
			return nil
		}
		e.Expr = &ast.Var{Name: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: expected an expression but found %s", value.Line, value.ShortTag())
	}
	if len(value.Content) != 2 {
		return fmt.Errorf("line %d: an expression must have a single key", value.Line)
	}
	var key string
	if err := value.Content[0].Decode(&key); err != nil {
		return err
	}
	body := value.Content[1]

	switch key {
	case "var":
		var name string
		if err := body.Decode(&name); err != nil {
			return err
		}
		e.Expr = &ast.Var{Name: name}

	case "object":
		var raw []struct {
			Name  string `yaml:"name"`
			Param string `yaml:"param"`
			Body  Expr   `yaml:"body"`
		}
		if err := body.Decode(&raw); err != nil {
			return err
		}
		obj := &ast.Object{Methods: make([]ast.MethodDef, len(raw))}
		for i, m := range raw {
			obj.Methods[i] = ast.MethodDef{Name: m.Name, Param: m.Param, Body: m.Body.Expr}
		}
		e.Expr = obj

	case "call":
		var raw struct {
			Object Expr   `yaml:"object"`
			Method string `yaml:"method"`
			Arg    Expr   `yaml:"arg"`
		}
		if err := body.Decode(&raw); err != nil {
			return err
		}
		e.Expr = &ast.Call{Object: raw.Object.Expr, Method: raw.Method, Arg: raw.Arg.Expr}

	case "begin":
		var raw []Expr
		if err := body.Decode(&raw); err != nil {
			return err
		}
		begin := &ast.Begin{Exprs: make([]ast.Expr, len(raw))}
		for i, sub := range raw {
			begin.Exprs[i] = sub.Expr
		}
		e.Expr = begin

	case "let", "letrec":
		var raw struct {
			Bindings []struct {
				Name  string `yaml:"name"`
				Value Expr   `yaml:"value"`
			} `yaml:"bindings"`
			Body Expr `yaml:"body"`
		}
		if err := body.Decode(&raw); err != nil {
			return err
		}
		bindings := make([]ast.LetBinding, len(raw.Bindings))
		for i, b := range raw.Bindings {
			bindings[i] = ast.LetBinding{Name: b.Name, Value: b.Value.Expr}
		}
		if key == "let" {
			e.Expr = &ast.Let{Bindings: bindings, Body: raw.Body.Expr}
		} else {
			e.Expr = &ast.LetRec{Bindings: bindings, Body: raw.Body.Expr}
		}

	default:
		return fmt.Errorf("line %d: unknown expression %q", value.Content[0].Line, key)
	}
	return nil
}

// Result is the outcome of checking a scenario.
type Result struct {
	Scenario *Scenario
	Type     types.Type
	Err      error
	// Invalid is the sub-expression at which checking failed.
	Invalid ast.Expr
	// Mismatch describes how the outcome differs from the expected outcome; it is empty when the
	// scenario passed.
	Mismatch string
}

// Passed returns true if the outcome matched the expected outcome.
func (r Result) Passed() bool { return r.Mismatch == "" }

// Run checks the expression of s within env, and compares the outcome with the expected outcome.
func Run(c *objtype.Checker, env *objtype.TypeEnv, s *Scenario) Result {
	ty, err := c.Check(s.Expr.Expr, env)
	res := Result{Scenario: s, Type: ty, Err: err, Invalid: c.InvalidExpr()}

	var (
		missing  *types.MissingMethodError
		notSub   *types.NotASubtypeError
		unbound  *objtype.UnboundNameError
		got      string
		gotName  string
		expected = s.Expect
	)
	switch {
	case err == nil:
		got = ExpectOK
	case errors.As(err, &missing):
		got, gotName = ExpectMissingMethod, missing.Name
	case errors.As(err, &notSub):
		got = ExpectNotASubtype
	case errors.As(err, &unbound):
		got, gotName = ExpectUnboundName, unbound.Name
	default:
		got = ExpectInvalid
	}

	switch {
	case got != expected:
		if err != nil {
			res.Mismatch = fmt.Sprintf("expected %s, found %s: %v", expected, got, err)
		} else {
			res.Mismatch = fmt.Sprintf("expected %s, found type %s", expected, types.TypeString(ty))
		}
	case got == ExpectOK && s.Type != "" && types.TypeString(ty) != s.Type:
		res.Mismatch = fmt.Sprintf("expected type %q, found %q", s.Type, types.TypeString(ty))
	case s.Missing != "" && gotName != s.Missing:
		res.Mismatch = fmt.Sprintf("expected %s %q, found %q", expected, s.Missing, gotName)
	}
	return res
}
