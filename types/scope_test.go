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

package types_test

import (
	"testing"

	. "github.com/wdamron/objtype/types"
)

func TestScope(t *testing.T) {
	let := NewScope(nil, "let")
	method := NewScope(let, "id")
	other := NewScope(nil, "other")

	if !GlobalScope.IsGlobal() || let.IsGlobal() || let.Parent() != GlobalScope {
		t.Fatalf("unexpected scope tree")
	}
	if method.Depth() != 2 || let.Depth() != 1 || GlobalScope.Depth() != 0 {
		t.Fatalf("unexpected depths")
	}
	if !let.Contains(let) || !let.Contains(method) || method.Contains(let) || let.Contains(other) {
		t.Fatalf("unexpected containment")
	}
	if !GlobalScope.Contains(method) {
		t.Fatalf("expected the global scope to contain every scope")
	}
	if s := method.String(); s != "let.id" {
		t.Fatalf("scope: %s", s)
	}
}
