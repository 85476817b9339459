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

// MissingMethodError is returned when a concrete type lacks a method required by a constraint.
type MissingMethodError struct {
	// Type is the concrete type which lacks the method.
	Type *Concrete
	// Name is the name of the missing method.
	Name string
}

func (e *MissingMethodError) Error() string { return "undefined method: " + e.Name }

// NotASubtypeError is returned when two concrete types are structurally incompatible, such as two
// base types with different primitive tags.
type NotASubtypeError struct {
	Sub   Type
	Super Type
}

func (e *NotASubtypeError) Error() string {
	return "not a subtype: " + TypeString(e.Sub) + " does not extend " + TypeString(e.Super)
}
