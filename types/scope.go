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

// Scope is a node in the tree of lexical regions in which abstract types are introduced.
// Every method body introduces a child scope. Scopes are never mutated after creation,
// so a scope tree may be shared by concurrent checks.
type Scope struct {
	parent *Scope
	name   string
	depth  int
}

// GlobalScope is the root of every scope tree. It contains every other scope and is never
// used as a cloning boundary: abstract types introduced at the global scope are never cloned.
var GlobalScope = &Scope{name: "global"}

// NewScope creates a child scope within parent. A nil parent is treated as the global scope.
func NewScope(parent *Scope, name string) *Scope {
	if parent == nil {
		parent = GlobalScope
	}
	return &Scope{parent: parent, name: name, depth: parent.depth + 1}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Name returns the diagnostic name of the scope.
func (s *Scope) Name() string { return s.name }

// Depth returns the number of ancestors of the scope.
func (s *Scope) Depth() int { return s.depth }

// IsGlobal returns true for the root of a scope tree.
func (s *Scope) IsGlobal() bool { return s.parent == nil }

// Contains returns true if other is s or a descendant of s.
func (s *Scope) Contains(other *Scope) bool {
	if s == nil || other == nil {
		return false
	}
	for other != nil && other.depth >= s.depth {
		if other == s {
			return true
		}
		other = other.parent
	}
	return false
}

func (s *Scope) String() string {
	if s.parent == nil || s.parent.parent == nil {
		return s.name
	}
	return s.parent.String() + "." + s.name
}
