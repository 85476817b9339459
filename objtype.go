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

// objtype provides type checking for a small object calculus with structural subtyping.
//
// Programs are built from object literals with named single-argument methods, method calls,
// sequencing, and (recursive) let-bindings. Types are never declared: the checker infers them by
// recording "A must be usable where B is expected" constraints while walking an expression, and
// solves those constraints through a structural subtype relation.
//
//
// Supported Features:
//
//   * Structural (width) subtyping with contravariant inputs and covariant outputs
//   * Self-referential object types through `this`
//   * Opaque base types (int, bool, ...) tagged with primitive marker methods
//   * Let-polymorphism through scope-bound instantiation of generic bindings
//   * Mutually-recursive let-bindings
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Structural type system: https://en.wikipedia.org/wiki/Structural_type_system
//
// Subtyping (variance): https://en.wikipedia.org/wiki/Covariance_and_contravariance_(computer_science)
package objtype
