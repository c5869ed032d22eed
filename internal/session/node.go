// Package session models a Why3 proof session tree and the operations
// prooflint performs on it: parsing, pruning, statistics and serialization.
package session

import (
	"iter"
	"strings"
)

// Kind identifies the element kinds a session tree is made of.
type Kind int

const (
	KindGoal Kind = iota
	KindTransf
	KindProof
	KindPath
	KindResult
	// KindOther carries every element the tooling does not interpret
	// (file, theory, prover declarations, labels). They round-trip
	// untouched.
	KindOther
)

var kindTags = map[Kind]string{
	KindGoal:   "goal",
	KindTransf: "transf",
	KindProof:  "proof",
	KindPath:   "path",
	KindResult: "result",
}

var tagKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTags))
	for k, tag := range kindTags {
		m[tag] = k
	}
	return m
}()

// KindOf maps an element name to its Kind. Unknown names map to KindOther.
func KindOf(tag string) Kind {
	if k, ok := tagKinds[tag]; ok {
		return k
	}
	return KindOther
}

// Attr is a single element attribute. Attribute order is preserved
// through a parse/serialize round trip.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a proof session tree. Children appear in
// document order. A Node is exclusively owned by its parent; the root is
// owned by whichever operation is running over it.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Children []*Node
}

// New returns a Node of a known kind with the given attributes.
// Kind must not be KindOther; use NewOther for uninterpreted elements.
func New(kind Kind, attrs ...Attr) *Node {
	return &Node{Kind: kind, Tag: kindTags[kind], Attrs: attrs}
}

// NewOther returns an uninterpreted Node with the given element name.
func NewOther(tag string, attrs ...Attr) *Node {
	return &Node{Kind: KindOther, Tag: tag, Attrs: attrs}
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Descendants yields every descendant of n with the given kind, in
// document order and at any depth. n itself is never yielded.
func (n *Node) Descendants(kind Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(n, kind, yield)
	}
}

func walk(n *Node, kind Kind, yield func(*Node) bool) bool {
	for _, c := range n.Children {
		if c.Kind == kind && !yield(c) {
			return false
		}
		if !walk(c, kind, yield) {
			return false
		}
	}
	return true
}

// SourceFiles returns the name attribute of every path node whose name
// ends in the WhyML source extension, deduplicated, in first-seen order.
func SourceFiles(root *Node) []string {
	seen := make(map[string]bool)
	var files []string
	for p := range root.Descendants(KindPath) {
		name := p.Attr("name")
		if strings.HasSuffix(name, SourceExt) && !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}
	return files
}

// SourceExt is the file extension of WhyML source modules.
const SourceExt = ".mlw"
