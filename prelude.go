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
	"github.com/wdamron/objtype/types"
)

// NewPrelude creates a type-environment with generic bindings for the built-in values:
//
//	0, 1        int   {@int, add: int -> int}
//	void        void  {@void}
//	true, false bool  {@bool, match: {true: void -> R, false: void -> R} -> R}
//	if                {if: {then: void -> R, else: void -> R} -> R}
//
// Each call creates a fresh set of types, so preludes are never shared between checkers.
func NewPrelude() *TypeEnv {
	Int := types.NewBase("int", func(self *types.Concrete) []*types.Method {
		return []*types.Method{types.NewMethod(types.GlobalScope, "add", self, self)}
	})
	Void := types.NewBase("void", nil)

	// the result of each branch is specialized for each use of a boolean:
	matchScope := types.NewScope(types.GlobalScope, "match")
	matchResult := types.NewAbstract(matchScope)
	Bool := types.NewBase("bool", func(self *types.Concrete) []*types.Method {
		cases := types.NewConcrete(
			types.NewMethod(matchScope, "true", Void, matchResult),
			types.NewMethod(matchScope, "false", Void, matchResult),
		)
		return []*types.Method{types.NewMethod(types.GlobalScope, "match", cases, matchResult)}
	})

	ifScope := types.NewScope(types.GlobalScope, "if")
	ifResult := types.NewAbstract(ifScope)
	branches := types.NewConcrete(
		types.NewMethod(ifScope, "then", Void, ifResult),
		types.NewMethod(ifScope, "else", Void, ifResult),
	)
	If := types.NewConcrete(types.NewMethod(types.GlobalScope, "if", branches, ifResult))

	return NewTypeEnv(map[string]types.Type{
		"0":     Int,
		"1":     Int,
		"void":  Void,
		"true":  Bool,
		"false": Bool,
		"if":    If,
	})
}
