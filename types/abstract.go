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

package types

import (
	set "github.com/hashicorp/go-set/v2"
)

// Abstract is a type-variable: a type which is not yet known, but constrained.
//
// An abstract type records every type asserted to extend it (its subtypes) and every type it is
// asserted to extend (its supertypes). Both lists only grow. Once an abstract type is bound to
// a concrete type, the binding is permanent.
type Abstract struct {
	scope   *Scope
	subs    []Type
	supers  []Type
	methods []*Method
	binding *Concrete
}

// NewAbstract creates an unconstrained abstract type defined within scope. A nil scope is
// treated as the global scope.
func NewAbstract(scope *Scope) *Abstract {
	if scope == nil {
		scope = GlobalScope
	}
	return &Abstract{scope: scope}
}

// Scope returns the scope in which the abstract type is defined.
func (v *Abstract) Scope() *Scope { return v.scope }

// SubTypes returns the types which are asserted to extend v. The returned slice must not be modified.
func (v *Abstract) SubTypes() []Type { return v.subs }

// SuperTypes returns the types which v is asserted to extend. The returned slice must not be modified.
func (v *Abstract) SuperTypes() []Type { return v.supers }

// Requirements returns the placeholder methods materialized for v by GetMethod.
func (v *Abstract) Requirements() []*Method { return v.methods }

// Binding returns the concrete type which v is bound to, or nil.
func (v *Abstract) Binding() *Concrete { return v.binding }

// IsBound returns true if v is bound to a concrete type.
func (v *Abstract) IsBound() bool { return v.binding != nil }

// Bind permanently binds v to a concrete type which v is known to equal. Rebinding v to a
// structurally equal type has no effect; rebinding v to any other type fails.
func (v *Abstract) Bind(t *Concrete) error {
	if v.binding == nil {
		v.binding = t
		return nil
	}
	if StructurallyEqual(v.binding, t) {
		return nil
	}
	return &NotASubtypeError{Sub: t, Super: v.binding}
}

func (v *Abstract) addSub(t Type) {
	for _, existing := range v.subs {
		if existing == t {
			return
		}
	}
	v.subs = append(v.subs, t)
}

func (v *Abstract) addSuper(t Type) {
	for _, existing := range v.supers {
		if existing == t {
			return
		}
	}
	v.supers = append(v.supers, t)
}

// LowerBounds returns the distinct concrete types which are known to extend t, following chains of
// abstract subtypes. The lower bound of a concrete type is the type itself.
func LowerBounds(t Type) []*Concrete {
	switch t := t.(type) {
	case *Concrete:
		return []*Concrete{t}
	case *Abstract:
		return t.bounds(func(v *Abstract) []Type { return v.subs })
	}
	return nil
}

// UpperBounds returns the distinct concrete types which t is known to extend, following chains of
// abstract supertypes. The upper bound of a concrete type is the type itself.
func UpperBounds(t Type) []*Concrete {
	switch t := t.(type) {
	case *Concrete:
		return []*Concrete{t}
	case *Abstract:
		return t.bounds(func(v *Abstract) []Type { return v.supers })
	}
	return nil
}

func (v *Abstract) bounds(edges func(*Abstract) []Type) []*Concrete {
	var res []*Concrete
	found := set.New[*Concrete](4)
	visited := set.New[*Abstract](8)
	var visit func(*Abstract)
	visit = func(v *Abstract) {
		if !visited.Insert(v) {
			return
		}
		for _, t := range edges(v) {
			switch t := t.(type) {
			case *Concrete:
				if found.Insert(t) {
					res = append(res, t)
				}
			case *Abstract:
				visit(t)
			}
		}
	}
	visit(v)
	return res
}

// AggregateMethods returns an approximate method set for v, for diagnostic output only.
//
// When v has concrete lower bounds, the aggregate contains the methods common to all of them
// (taken from the first); otherwise it contains every method of its concrete upper bounds. The
// aggregate does not take part in subtyping decisions.
func (v *Abstract) AggregateMethods() []*Method {
	if v.binding != nil {
		return v.binding.methods
	}
	if lower := LowerBounds(v); len(lower) > 0 {
		var res []*Method
		for _, m := range lower[0].methods {
			common := true
			for _, other := range lower[1:] {
				if !other.HasMethod(m.name) {
					common = false
					break
				}
			}
			if common {
				res = append(res, m)
			}
		}
		return res
	}
	var res []*Method
	names := set.New[string](4)
	for _, upper := range UpperBounds(v) {
		for _, m := range upper.methods {
			if names.Insert(m.name) {
				res = append(res, m)
			}
		}
	}
	return res
}
