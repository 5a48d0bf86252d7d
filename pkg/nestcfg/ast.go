package nestcfg

import (
	"strings"
)

// WalkFn is the callback invoked for every node visited by Walk. The return
// value indicates whether the traversal should descend into the node's
// children.
type WalkFn = func(v Value) bool

// Value is a single node in a parsed configuration tree: a decoded string,
// an ordered list of values, or an ordered sequence of key/value pairs.
//
// String renders the node in source syntax, so that parsing the result
// yields a structurally equal node.
type Value interface {
	String() string
	Walk(f WalkFn)

	appendTo(b *strings.Builder)
}

// StringValue is the decoded body of a single-quoted string. Escape
// sequences are already resolved.
type StringValue string

// ListValue is an ordered sequence of values. A parsed empty list is
// non-nil.
type ListValue []Value

// ObjectValue is an ordered sequence of key/value pairs. Duplicate keys are
// preserved, not merged. A parsed empty object is non-nil.
type ObjectValue Pairs

// Pair is a single key=value entry.
type Pair struct {
	Key   string
	Value Value
}

// Pairs is an ordered sequence of key/value pairs: the root of every parsed
// document. Duplicate keys are preserved in source order.
type Pairs []Pair

func (s StringValue) String() string { return render(s) }
func (l ListValue) String() string   { return render(l) }
func (o ObjectValue) String() string { return render(o) }

// String renders the pairs in source syntax, one key=value per entry,
// separated by semicolons.
func (p Pairs) String() string {
	var b strings.Builder
	p.appendTo(&b)
	return b.String()
}

func render(v Value) string {
	var b strings.Builder
	v.appendTo(&b)
	return b.String()
}

func (s StringValue) appendTo(b *strings.Builder) {
	b.WriteByte('\'')
	for _, r := range string(s) {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
}

func (l ListValue) appendTo(b *strings.Builder) {
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteByte(';')
		}
		v.appendTo(b)
	}
	b.WriteByte(']')
}

func (o ObjectValue) appendTo(b *strings.Builder) {
	b.WriteByte('(')
	Pairs(o).appendTo(b)
	b.WriteByte(')')
}

func (p Pairs) appendTo(b *strings.Builder) {
	for i, kv := range p {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(kv.Key)
		b.WriteByte('=')
		kv.Value.appendTo(b)
	}
}

// Walk visits the value itself.
func (s StringValue) Walk(f WalkFn) { f(s) }

// Walk visits the list and, unless f returns false, every element in order.
func (l ListValue) Walk(f WalkFn) {
	if !f(l) {
		return
	}
	for _, v := range l {
		v.Walk(f)
	}
}

// Walk visits the object and, unless f returns false, every pair value in
// order.
func (o ObjectValue) Walk(f WalkFn) {
	if !f(o) {
		return
	}
	Pairs(o).Walk(f)
}

// Walk visits every pair value in order, descending into lists and objects.
func (p Pairs) Walk(f WalkFn) {
	for _, kv := range p {
		kv.Value.Walk(f)
	}
}
