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
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/wdamron/objtype/types"
)

// Binding is the type declared for an identifier.
type Binding struct {
	Type types.Type
	// Generic bindings are instantiated on each lookup; fixed bindings are shared by every lookup.
	Generic bool
	// Abstract types defined within Boundary are cloned when a generic binding is instantiated.
	Boundary *types.Scope
}

type nameComparer struct{}

func (nameComparer) Compare(a, b interface{}) int { return strings.Compare(a.(string), b.(string)) }

var emptyBindings = immutable.NewSortedMap(nameComparer{})

// TypeEnv is a persistent type-environment containing mappings from identifiers to declared types.
//
// Extending a type-environment never modifies it, so a type-environment may be shared by
// independent checks. The types within a type-environment are mutated by checking, however;
// types must not be shared by concurrent checks.
type TypeEnv struct {
	bindings *immutable.SortedMap
}

// Create a type-environment with generic bindings for each of the given types. Abstract types
// within the given types which are not defined at the global scope are cloned on each lookup.
func NewTypeEnv(ts map[string]types.Type) *TypeEnv {
	b := immutable.NewSortedMapBuilder(emptyBindings)
	for name, t := range ts {
		b.Set(name, Binding{Type: t, Generic: true, Boundary: types.GlobalScope})
	}
	return &TypeEnv{bindings: b.Map()}
}

func (e *TypeEnv) bind(name string, b Binding) *TypeEnv {
	m := emptyBindings
	if e != nil && e.bindings != nil {
		m = e.bindings
	}
	return &TypeEnv{bindings: m.Set(name, b)}
}

// Extend the type-environment with a fixed binding for an identifier. Every lookup of the
// identifier will return t.
func (e *TypeEnv) Fixed(name string, t types.Type) *TypeEnv {
	return e.bind(name, Binding{Type: t})
}

// Extend the type-environment with a generic binding for an identifier. Each lookup of the
// identifier will return an independent instance of t, cloning the abstract types defined
// within boundary.
func (e *TypeEnv) Generic(name string, t types.Type, boundary *types.Scope) *TypeEnv {
	if boundary == nil {
		boundary = types.GlobalScope
	}
	return e.bind(name, Binding{Type: t, Generic: true, Boundary: boundary})
}

// Lookup the binding for an identifier in the environment.
func (e *TypeEnv) Lookup(name string) (Binding, bool) {
	if e == nil || e.bindings == nil {
		return Binding{}, false
	}
	b, ok := e.bindings.Get(name)
	if !ok {
		return Binding{}, false
	}
	return b.(Binding), true
}

// Get the number of identifiers bound in the environment.
func (e *TypeEnv) Len() int {
	if e == nil || e.bindings == nil {
		return 0
	}
	return e.bindings.Len()
}

// Get the types bound in the environment, in the sorted order of their identifiers.
func (e *TypeEnv) Types() []types.Type {
	ts := make([]types.Type, 0, e.Len())
	if e.Len() == 0 {
		return ts
	}
	iter := e.bindings.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		ts = append(ts, b.(Binding).Type)
	}
	return ts
}

// Get the identifiers bound in the environment, in sorted order.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.Len())
	if e.Len() == 0 {
		return names
	}
	iter := e.bindings.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}
