// Package svg builds SVG documents as a small tree of element nodes that is
// serialised in one pass. Attribute values and text content are always escaped.
package svg

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const (
	Namespace = "http://www.w3.org/2000/svg"
	header    = `<?xml version="1.0" encoding="UTF-8"?>`
)

type Attr struct {
	Name  string
	Value string
}

// A builds an attribute, formatting numbers with fmt's default verbs.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: fmt.Sprint(value)}
}

type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string
}

func Element(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

func Rect(attrs ...Attr) *Node {
	return Element("rect", attrs...)
}

func Text(content string, attrs ...Attr) *Node {
	n := Element("text", attrs...)
	n.Text = content
	return n
}

func Title(content string) *Node {
	n := Element("title")
	n.Text = content
	return n
}

func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the value of the named attribute, or "" when it is absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Find returns every descendant (and n itself) with the given element name,
// in document order.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	if n.Name == name {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.Find(name)...)
	}
	return out
}

// Escape replaces the five markup-reserved characters with entities.
func Escape(s string) string {
	return html.EscapeString(s)
}

func (n *Node) Render(w io.Writer) error {
	sw := &stickyWriter{w: w}
	n.render(sw)
	return sw.err
}

func (n *Node) String() string {
	var sb strings.Builder
	_ = n.Render(&sb)
	return sb.String()
}

func (n *Node) render(w *stickyWriter) {
	w.write("<", n.Name)
	for _, a := range n.Attrs {
		w.write(" ", a.Name, `="`, Escape(a.Value), `"`)
	}

	if len(n.Children) == 0 && n.Text == "" {
		w.write("/>")
		return
	}

	w.write(">")
	if n.Text != "" {
		w.write(Escape(n.Text))
	}
	for _, c := range n.Children {
		c.render(w)
	}
	w.write("</", n.Name, ">")
}

// Document returns a standalone SVG file: the XML declaration followed by an
// <svg> root with one top-level child per line.
func Document(width, height int, children ...*Node) string {
	root := Element("svg",
		A("xmlns", Namespace),
		A("width", width),
		A("height", height),
		A("viewBox", fmt.Sprintf("0 0 %d %d", width, height)),
	)

	var sb strings.Builder
	sw := &stickyWriter{w: &sb}
	sw.write(header, "\n")

	open := root.String()
	sw.write(strings.TrimSuffix(open, "/>"), ">\n")
	for _, c := range children {
		sw.write("  ")
		c.render(sw)
		sw.write("\n")
	}
	sw.write("</svg>")

	return sb.String()
}

type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) write(parts ...string) {
	for _, p := range parts {
		if s.err != nil {
			return
		}
		_, s.err = io.WriteString(s.w, p)
	}
}
