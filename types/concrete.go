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

// Concrete is the type of an object literal or a built-in base type: a fixed, ordered list of methods.
//
// When an object declares more than one method with the same name, the first declaration
// is the one found by GetMethod.
type Concrete struct {
	methods []*Method
}

// NewConcrete creates a concrete type with the given methods.
func NewConcrete(methods ...*Method) *Concrete {
	ms := make([]*Method, len(methods))
	copy(ms, methods)
	return &Concrete{methods: ms}
}

// NewRecursiveConcrete creates a concrete type whose methods may refer to the type itself.
//
// The bind function receives the (empty) type and should return its methods; the method list
// is fixed once bind returns.
func NewRecursiveConcrete(bind func(self *Concrete) []*Method) *Concrete {
	t := &Concrete{}
	methods := bind(t)
	t.methods = make([]*Method, len(methods))
	copy(t.methods, methods)
	return t
}

// NewBase creates a base type tagged with a primitive marker method for name. The bind function
// may be nil; otherwise it should return the ordinary methods of the base type.
func NewBase(name string, bind func(self *Concrete) []*Method) *Concrete {
	return NewRecursiveConcrete(func(self *Concrete) []*Method {
		marker := NewMethod(GlobalScope, PrimitivePrefix+name, emptyType, emptyType)
		if bind == nil {
			return []*Method{marker}
		}
		return append([]*Method{marker}, bind(self)...)
	})
}

// the input and output of every primitive marker method
var emptyType = &Concrete{}

// Methods returns the methods of t. The returned slice must not be modified.
func (t *Concrete) Methods() []*Method { return t.methods }

// Len returns the number of methods of t.
func (t *Concrete) Len() int { return len(t.methods) }

// Method returns the first method of t with the given name.
func (t *Concrete) Method(name string) (*Method, bool) {
	for _, m := range t.methods {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// HasMethod returns true if t has a method with the given name.
func (t *Concrete) HasMethod(name string) bool {
	_, ok := t.Method(name)
	return ok
}

func (t *Concrete) primitive() string {
	for _, m := range t.methods {
		if m.IsPrimitive() {
			return m.name[len(PrimitivePrefix):]
		}
	}
	return ""
}

// sameMethodNames reports whether a and b declare the same set of method names.
func sameMethodNames(a, b *Concrete) bool {
	for _, m := range a.methods {
		if !b.HasMethod(m.name) {
			return false
		}
	}
	for _, m := range b.methods {
		if !a.HasMethod(m.name) {
			return false
		}
	}
	return true
}
