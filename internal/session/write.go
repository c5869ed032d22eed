package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

// doctype is the declaration Why3 expects on the second line of a
// session file, split across two lines exactly as Why3 itself writes it.
const doctype = "<!DOCTYPE why3session PUBLIC \"-//Why3//proof session v5//EN\"\n\"https://www.why3.org/why3session.dtd\">"

// Marshal serializes the tree as a session document: XML declaration,
// DOCTYPE, then the root element with attribute and child order intact.
func Marshal(root *Node) ([]byte, error) {
	doc := etree.NewDocument()
	doc.SetRoot(toElement(root))
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing session: %w", err)
	}
	var buf bytes.Buffer
	buf.Grow(len(xmlDecl) + len(doctype) + len(body) + 2)
	buf.WriteString(xmlDecl)
	buf.WriteByte('\n')
	buf.WriteString(doctype)
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}

// Save writes the tree back to path. The write is atomic: the document
// is assembled in a sibling temp file which then replaces path.
func Save(path string, root *Node) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("writing session %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing session %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing session %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing session %s: %w", path, err)
	}
	return nil
}

func toElement(n *Node) *etree.Element {
	el := etree.NewElement(n.Tag)
	for _, a := range n.Attrs {
		el.CreateAttr(a.Name, a.Value)
	}
	for _, c := range n.Children {
		el.AddChild(toElement(c))
	}
	return el
}
