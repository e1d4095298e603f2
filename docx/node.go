package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Node is one element in an order-preserving XML tree. Struct unmarshaling
// collects repeated children into separate slices and loses their document
// order, which the paragraph flattener depends on, so OOXML stories are
// parsed into this lightweight tree instead.
type Node struct {
	Local    string
	Space    string
	Attrs    []xml.Attr
	Text     string
	Children []*Node
}

// ParseXML parses a complete XML part into a node tree rooted at the
// document element.
func ParseXML(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root := &Node{}
	stack := []*Node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Local: t.Name.Local,
				Space: t.Name.Space,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			stack[len(stack)-1].Text += string(t)
		}
	}

	if len(root.Children) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root.Children[0], nil
}

// Attr returns the value of the first attribute with the given local name,
// or "" when absent. OOXML attribute locals do not collide across the
// namespaces this package reads, so prefix-free lookup is sufficient.
func (n *Node) Attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether an attribute with the given local name is present.
func (n *Node) HasAttr(local string) bool {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return true
		}
	}
	return false
}

// FindAll returns every descendant element with the given local name, in
// depth-first document order. The receiver itself is not included.
func (n *Node) FindAll(local string) []*Node {
	var out []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, child := range node.Children {
			if child.Local == local {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(n)
	return out
}

// First returns the first direct child with the given local name, or nil.
func (n *Node) First(local string) *Node {
	for _, child := range n.Children {
		if child.Local == local {
			return child
		}
	}
	return nil
}

// InnerText concatenates the text content of every descendant w:t element,
// in document order.
func (n *Node) InnerText() string {
	var sb strings.Builder
	var walk func(node *Node)
	walk = func(node *Node) {
		if node.Local == "t" {
			sb.WriteString(node.Text)
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
