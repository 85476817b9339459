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

// Method is a named single-argument method with an input type and an output type.
//
// Methods are compared by identity; a method is never shared between a type and its clone.
// The output type may be assigned once after construction, which allows a method body to
// refer to the enclosing object before the object's type is complete.
type Method struct {
	name  string
	in    Type
	out   Type
	scope *Scope
}

// NewMethod creates a method defined within scope. The output type may be nil, in which case
// it must be assigned with SetOut before the method is used in a constraint.
func NewMethod(scope *Scope, name string, in, out Type) *Method {
	return &Method{name: name, in: in, out: out, scope: scope}
}

// Name returns the name of the method.
func (m *Method) Name() string { return m.name }

// In returns the input (parameter) type of the method.
func (m *Method) In() Type { return m.in }

// Out returns the output (result) type of the method.
func (m *Method) Out() Type { return m.out }

// Scope returns the scope in which the method is defined.
func (m *Method) Scope() *Scope { return m.scope }

// IsPrimitive returns true if m is a primitive marker method.
func (m *Method) IsPrimitive() bool { return IsPrimitiveName(m.name) }

// SetOut assigns the output type of a method which was created without one.
func (m *Method) SetOut(out Type) {
	if m.out != nil {
		panic("output type of method " + m.name + " is already assigned")
	}
	m.out = out
}
