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
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{labels: make(map[Type]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.reset()
	p.sb.Reset()
	printerPool.Put(p)
}

func (p *typePrinter) reset() {
	for k := range p.labels {
		delete(p.labels, k)
	}
	for i := range p.defs {
		p.defs[i] = typeDef{}
	}
	p.defs = p.defs[:0]
}

// TypeString returns a string representation of a Type.
//
// Base types are printed by their primitive tag. Other nodes reachable from t are labeled A, B, C...
// in the order they are first referenced; labels are local to each call. Nodes with known methods
// are defined in a trailing where-clause:
//
//	{get: A -> B}
//	where
//	  B = {add: int -> int}
//
// A type which refers back to itself is printed as its label, followed by its own definition:
//
//	A
//	where
//	  A = {next: int -> A}
func TypeString(t Type) string {
	if t == nil {
		return "?"
	}
	p := newTypePrinter()
	defer p.Release()
	root := display(t)
	if tag := displayTag(root); tag != "" {
		return tag
	}
	if v, ok := root.(*Abstract); ok && len(v.AggregateMethods()) == 0 {
		return p.ref(v)
	}
	rootDef := p.defineAll(root)
	if label, recursive := p.labels[root]; recursive && label != labelName(0) {
		// relabel, so the root is always A
		p.reset()
		p.labels[root] = labelName(0)
		p.defs = append(p.defs, typeDef{t: root, label: labelName(0)})
		rootDef = p.defineAll(root)
	}

	rootLabel, recursive := p.labels[root]
	if recursive {
		p.sb.WriteString(rootLabel)
		p.sb.WriteString("\nwhere\n  ")
		p.sb.WriteString(rootLabel)
		p.sb.WriteString(" = ")
		p.sb.WriteString(rootDef)
	} else {
		p.sb.WriteString(rootDef)
		if len(p.defs) > 0 {
			p.sb.WriteString("\nwhere")
		}
	}
	for _, def := range p.defs {
		if def.t == root {
			continue
		}
		p.sb.WriteString("\n  ")
		p.sb.WriteString(def.label)
		p.sb.WriteString(" = ")
		p.sb.WriteString(def.body)
	}
	return p.sb.String()
}

type typePrinter struct {
	labels map[Type]string
	defs   []typeDef
	sb     strings.Builder
}

type typeDef struct {
	t     Type
	label string
	body  string
}

// Bound abstract types display as their binding. Abstract types with exactly one concrete lower
// bound display as that bound.
func display(t Type) Type {
	v, ok := t.(*Abstract)
	if !ok {
		return t
	}
	if v.binding != nil {
		return v.binding
	}
	if lower := LowerBounds(v); len(lower) == 1 {
		return lower[0]
	}
	return v
}

func methodsOf(t Type) []*Method {
	switch t := t.(type) {
	case *Concrete:
		return t.methods
	case *Abstract:
		return t.AggregateMethods()
	}
	return nil
}

func displayTag(t Type) string {
	for _, m := range methodsOf(t) {
		if m.IsPrimitive() {
			return m.name[len(PrimitivePrefix):]
		}
	}
	return ""
}

func (p *typePrinter) ref(t Type) string {
	if t == nil {
		return "?"
	}
	t = display(t)
	if tag := displayTag(t); tag != "" {
		return tag
	}
	if label, ok := p.labels[t]; ok {
		return label
	}
	label := labelName(len(p.labels))
	p.labels[t] = label
	if len(methodsOf(t)) > 0 {
		p.defs = append(p.defs, typeDef{t: t, label: label})
	}
	return label
}

// Define root, then every type labeled while defining it.
func (p *typePrinter) defineAll(root Type) string {
	rootDef := p.define(root)
	for i := 0; i < len(p.defs); i++ {
		if p.defs[i].t != root {
			p.defs[i].body = p.define(p.defs[i].t)
		}
	}
	return rootDef
}

func (p *typePrinter) define(t Type) string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	for _, m := range methodsOf(t) {
		if m.IsPrimitive() {
			continue
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.name)
		sb.WriteString(": ")
		sb.WriteString(p.ref(m.in))
		sb.WriteString(" -> ")
		sb.WriteString(p.ref(m.out))
		i++
	}
	sb.WriteByte('}')
	return sb.String()
}

var _labels [64]string

func init() {
	for i := range _labels {
		_labels[i] = makeLabel(i)
	}
}

func labelName(i int) string {
	if i < len(_labels) {
		return _labels[i]
	}
	return makeLabel(i)
}

// A, B, ..., Z, AA, AB, ...
func makeLabel(i int) string {
	var buf [8]byte
	n := len(buf)
	for i++; i > 0; i = (i - 1) / 26 {
		n--
		buf[n] = byte('A' + (i-1)%26)
	}
	return string(buf[n:])
}
