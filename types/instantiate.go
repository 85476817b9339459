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

	"github.com/wdamron/objtype/internal/util"
)

// Instantiate returns a copy of t which is specialized for a single use of a generic binding.
//
// Abstract types defined within boundary (excluding the global scope) are cloned, along with their
// subtype and supertype constraints. Abstract types defined outside of boundary are shared with t.
// Concrete types are cloned only if they refer (directly or indirectly) to an abstract type which
// is cloned; otherwise they are shared. All references to a type within t are replaced by
// references to the same clone.
func Instantiate(t Type, boundary *Scope) Type {
	if boundary == nil {
		boundary = GlobalScope
	}
	inst := instantiation{
		boundary: boundary,
		ids:      make(map[Type]int, 16),
		types:    make(map[Type]Type, 16),
		methods:  make(map[*Method]*Method, 16),
	}
	if roots := inst.analyze(t); len(roots) == 0 {
		return t
	} else {
		inst.live = inst.graph.Transpose().Reachable(roots)
	}
	return inst.clone(t)
}

// Escape moves every abstract type defined within boundary which is reachable from roots to the
// scope to, and returns the number of moved types.
//
// The types bound in an enclosing type-environment are shared by every instance of a generic
// binding, so abstract types linked to them must not be cloned when the binding is instantiated.
func Escape(roots []Type, boundary, to *Scope) int {
	if boundary == nil || boundary.IsGlobal() {
		return 0
	}
	moved := 0
	visited := set.New[Type](16)
	stack := append([]Type(nil), roots...)
	push := func(t Type) {
		if t != nil && !visited.Contains(t) {
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t == nil || !visited.Insert(t) {
			continue
		}
		switch t := t.(type) {
		case *Concrete:
			for _, m := range t.methods {
				push(m.in)
				push(m.out)
			}
		case *Abstract:
			if !t.scope.IsGlobal() && boundary.Contains(t.scope) {
				t.scope = to
				moved++
			}
			for _, sub := range t.subs {
				push(sub)
			}
			for _, super := range t.supers {
				push(super)
			}
			for _, m := range t.methods {
				push(m.in)
				push(m.out)
			}
			if t.binding != nil {
				push(t.binding)
			}
		}
	}
	return moved
}

type instantiation struct {
	boundary *Scope
	// vertex ids for concrete types and cloneable abstract types
	ids   map[Type]int
	graph util.Graph
	// concrete types which lead to a cloneable abstract type, by vertex id
	live    []bool
	types   map[Type]Type
	methods map[*Method]*Method
}

func (inst *instantiation) cloneable(v *Abstract) bool {
	return !v.scope.IsGlobal() && inst.boundary.Contains(v.scope)
}

// Build a graph of the types reachable from t which may be cloned. The ids of cloneable abstract
// types are returned.
func (inst *instantiation) analyze(t Type) (roots []int) {
	var visit func(t Type) int
	visit = func(t Type) int {
		if t == nil {
			return -1
		}
		if v, ok := t.(*Abstract); ok && !inst.cloneable(v) {
			return -1
		}
		if id, ok := inst.ids[t]; ok {
			return id
		}
		id := inst.graph.AddVertex()
		inst.ids[t] = id
		edge := func(to int) {
			if to >= 0 {
				inst.graph.AddEdge(id, to)
			}
		}
		switch t := t.(type) {
		case *Concrete:
			for _, m := range t.methods {
				edge(visit(m.in))
				edge(visit(m.out))
			}
		case *Abstract:
			roots = append(roots, id)
			for _, sub := range t.subs {
				edge(visit(sub))
			}
			for _, super := range t.supers {
				edge(visit(super))
			}
			for _, m := range t.methods {
				edge(visit(m.in))
				edge(visit(m.out))
			}
			if t.binding != nil {
				edge(visit(t.binding))
			}
		}
		return id
	}
	visit(t)
	return roots
}

func (inst *instantiation) clone(t Type) Type {
	if t == nil {
		return nil
	}
	if c, ok := inst.types[t]; ok {
		return c
	}
	switch t := t.(type) {
	case *Concrete:
		if id, ok := inst.ids[t]; !ok || !inst.live[id] {
			return t
		}
		c := &Concrete{methods: make([]*Method, len(t.methods))}
		inst.types[t] = c
		for i, m := range t.methods {
			c.methods[i] = inst.cloneMethod(m)
		}
		return c

	case *Abstract:
		if !inst.cloneable(t) {
			return t
		}
		c := &Abstract{scope: t.scope}
		inst.types[t] = c
		for _, sub := range t.subs {
			cloned := inst.clone(sub)
			c.addSub(cloned)
			// shared abstract subtypes also extend the clone
			if shared, ok := cloned.(*Abstract); ok && cloned == sub {
				shared.addSuper(c)
			}
		}
		for _, super := range t.supers {
			cloned := inst.clone(super)
			c.addSuper(cloned)
			if shared, ok := cloned.(*Abstract); ok && cloned == super {
				shared.addSub(c)
			}
		}
		if len(t.methods) > 0 {
			c.methods = make([]*Method, len(t.methods))
			for i, m := range t.methods {
				c.methods[i] = inst.cloneMethod(m)
			}
		}
		if t.binding != nil {
			c.binding = inst.clone(t.binding).(*Concrete)
		}
		return c
	}
	panic("unexpected type " + t.TypeName())
}

func (inst *instantiation) cloneMethod(m *Method) *Method {
	if c, ok := inst.methods[m]; ok {
		return c
	}
	c := &Method{name: m.name, scope: m.scope}
	inst.methods[m] = c
	c.in, c.out = inst.clone(m.in), inst.clone(m.out)
	return c
}
