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
	"strings"
)

// PrimitivePrefix marks the name of a primitive marker method. A base type carries exactly one
// marker method, which tags the primitive name of the type (e.g. "@int").
const PrimitivePrefix = "@"

// Type is the base interface for all types.
//
// A type is either *Concrete (a fixed set of methods) or *Abstract (a type-variable which
// accumulates subtype and supertype constraints).
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Concrete)(nil)
	_ Type = (*Abstract)(nil)
)

// "Concrete"
func (t *Concrete) TypeName() string { return "Concrete" }

// "Abstract"
func (t *Abstract) TypeName() string { return "Abstract" }

// IsPrimitiveName returns true if name is the name of a primitive marker method.
func IsPrimitiveName(name string) bool { return strings.HasPrefix(name, PrimitivePrefix) }

// PrimitiveName returns the primitive tag of t without the marker prefix, or an empty string
// if t is not a base type. Bound abstract types report the tag of their binding.
func PrimitiveName(t Type) string {
	switch t := t.(type) {
	case *Concrete:
		return t.primitive()
	case *Abstract:
		if t.binding != nil {
			return t.binding.primitive()
		}
	}
	return ""
}

// Resolve returns the binding of a bound abstract type, or t itself.
func Resolve(t Type) Type {
	if v, ok := t.(*Abstract); ok && v.binding != nil {
		return v.binding
	}
	return t
}
