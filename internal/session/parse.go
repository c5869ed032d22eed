package session

import (
	"fmt"

	"github.com/beevik/etree"
)

// Load reads and parses the proof session document at path.
func Load(path string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading session %s: %w", path, err)
	}
	return fromDocument(doc, path)
}

// Parse parses a proof session document held in memory.
func Parse(data []byte) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	return fromDocument(doc, "")
}

func fromDocument(doc *etree.Document, path string) (*Node, error) {
	root := doc.Root()
	if root == nil {
		if path != "" {
			return nil, fmt.Errorf("session %s has no root element", path)
		}
		return nil, fmt.Errorf("session has no root element")
	}
	return fromElement(root), nil
}

func fromElement(el *etree.Element) *Node {
	n := &Node{Kind: KindOf(el.Tag), Tag: el.Tag}
	for _, a := range el.Attr {
		n.Attrs = append(n.Attrs, Attr{Name: a.Key, Value: a.Value})
	}
	for _, child := range el.ChildElements() {
		n.Children = append(n.Children, fromElement(child))
	}
	return n
}
