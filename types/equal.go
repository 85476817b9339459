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

// StructurallyEqual returns true if a and b have the same structure.
//
// Concrete types are equal if they declare the same method names and every pair of methods
// has structurally equal input and output types. Base types are equal if and only if their
// primitive tags are equal. Unbound abstract types are only equal to themselves; bound abstract
// types are compared by their binding. Cyclic types are supported.
func StructurallyEqual(a, b Type) bool {
	return structurallyEqual(a, b, make(map[*Concrete]*Concrete, 8))
}

// visiting maps each concrete type under comparison to the type it is paired with.
func structurallyEqual(a, b Type, visiting map[*Concrete]*Concrete) bool {
	a, b = Resolve(a), Resolve(b)
	if a == b {
		return true
	}
	ca, ok := a.(*Concrete)
	if !ok {
		return false
	}
	cb, ok := b.(*Concrete)
	if !ok {
		return false
	}
	pairedB, aVisited := visiting[ca]
	pairedA, bVisited := visiting[cb]
	if pairedB == cb || pairedA == ca {
		return true
	}
	if aVisited || bVisited {
		return false
	}
	visiting[ca] = cb
	if !sameMethodNames(ca, cb) {
		return false
	}
	if pa, pb := ca.primitive(), cb.primitive(); pa != "" || pb != "" {
		return pa == pb
	}
	for _, m := range ca.methods {
		n, _ := cb.Method(m.name)
		if !structurallyEqual(m.in, n.in, visiting) {
			return false
		}
		if !structurallyEqual(m.out, n.out, visiting) {
			return false
		}
	}
	return true
}
