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

type typePair struct {
	sub, super Type
}

// Seen memoizes the (subtype, supertype) pairs which have been asserted during a constraint. A pair
// is asserted at most once, which guarantees termination on cyclic types.
type Seen struct {
	pairs *set.Set[typePair]
}

// NewSeen creates an empty set of asserted pairs. A fresh set should be used for each top-level
// constraint.
func NewSeen() *Seen { return &Seen{pairs: set.New[typePair](16)} }

// Len returns the number of asserted pairs.
func (s *Seen) Len() int { return s.pairs.Size() }

// Contains returns true if sub has been asserted to extend super.
func (s *Seen) Contains(sub, super Type) bool { return s.pairs.Contains(typePair{sub, super}) }

// Extends asserts that sub may be used wherever super is expected.
//
// Constraints against abstract types are recorded, then checked against every concrete type
// already linked to the abstract type. Constraints between concrete types require every
// method of super to be present on sub, with contravariant input types and covariant output
// types. If seen is nil, a fresh set is used.
func Extends(sub, super Type, seen *Seen) error {
	if seen == nil {
		seen = NewSeen()
	}
	return extends(sub, super, seen)
}

func extends(self, other Type, seen *Seen) error {
	if self == other {
		return nil
	}
	if !seen.pairs.Insert(typePair{self, other}) {
		return nil
	}
	switch o := other.(type) {
	case *Abstract:
		o.addSub(self)
		if s, ok := self.(*Abstract); ok {
			s.addSuper(o)
		}
		return propagate(o, seen)

	case *Concrete:
		if StructurallyEqual(self, o) {
			return nil
		}
		switch s := self.(type) {
		case *Abstract:
			s.addSuper(o)
			return propagate(s, seen)
		case *Concrete:
			return extendsConcrete(s, o, seen)
		}
	}
	panic("unexpected type " + other.TypeName())
}

func extendsConcrete(self, other *Concrete, seen *Seen) error {
	if tag := other.primitive(); tag != "" && self.primitive() != tag {
		return &NotASubtypeError{Sub: self, Super: other}
	}
	for _, om := range other.methods {
		if om.IsPrimitive() {
			continue
		}
		m, ok := self.Method(om.name)
		if !ok {
			return &MissingMethodError{Type: self, Name: om.name}
		}
		// contravariant input:
		if err := extends(om.in, m.in, seen); err != nil {
			return err
		}
		// covariant output:
		if err := extends(m.out, om.out, seen); err != nil {
			return err
		}
	}
	return nil
}

// Check every concrete type known to extend v against every concrete type v is known to extend.
func propagate(v *Abstract, seen *Seen) error {
	lower := LowerBounds(v)
	if len(lower) == 0 {
		return nil
	}
	for _, upper := range UpperBounds(v) {
		for _, sub := range lower {
			if err := extends(sub, upper, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetMethod returns the method of t with the given name.
//
// For a concrete type, the first method with the name is returned, or a *MissingMethodError. For
// an abstract type, the method is materialized on first use: a placeholder method with fresh
// abstract input and output types is checked against every concrete type already known to extend
// t, then recorded as a requirement of t.
func GetMethod(t Type, name string) (*Method, error) {
	switch t := t.(type) {
	case *Concrete:
		m, ok := t.Method(name)
		if !ok {
			return nil, &MissingMethodError{Type: t, Name: name}
		}
		return m, nil

	case *Abstract:
		if t.binding != nil {
			return GetMethod(t.binding, name)
		}
		for _, m := range t.methods {
			if m.name == name {
				return m, nil
			}
		}
		m := NewMethod(t.scope, name, NewAbstract(t.scope), NewAbstract(t.scope))
		if err := extends(t, NewConcrete(m), NewSeen()); err != nil {
			return nil, err
		}
		t.methods = append(t.methods, m)
		return m, nil
	}
	panic("unexpected type " + t.TypeName())
}
