// Package surface is a minimal retained drawing surface: a tree of SVG-like
// elements that chart layers append to and that can be serialized as SVG or
// replayed onto a raster renderer.
package surface

import (
	"math"
	"strconv"
)

type Attribute struct {
	Name  string
	Value string
}

// Node is one element of the surface. Attribute and style order is preserved
// so serialized output is stable.
type Node struct {
	tag      string
	attrs    []Attribute
	styles   []Attribute
	text     string
	children []*Node
}

func New(tag string) *Node {
	return &Node{tag: tag}
}

func (n *Node) Tag() string {
	return n.tag
}

// Append creates a child element and returns it.
func (n *Node) Append(tag string) *Node {
	child := New(tag)
	n.children = append(n.children, child)
	return child
}

// Attr sets an attribute, replacing an earlier value. Numbers are formatted
// the way FormatNumber does.
func (n *Node) Attr(name string, value any) *Node {
	n.attrs = set(n.attrs, name, stringify(value))
	return n
}

func (n *Node) Get(name string) (string, bool) {
	return get(n.attrs, name)
}

func (n *Node) Attrs() []Attribute {
	return append([]Attribute(nil), n.attrs...)
}

func (n *Node) Style(name string, value any) *Node {
	n.styles = set(n.styles, name, stringify(value))
	return n
}

func (n *Node) StyleValue(name string) (string, bool) {
	return get(n.styles, name)
}

func (n *Node) SetText(text string) *Node {
	n.text = text
	return n
}

func (n *Node) Text() string {
	return n.text
}

func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) Empty() bool {
	return len(n.children) == 0
}

// Find returns every descendant with the given tag in document order.
func (n *Node) Find(tag string) []*Node {
	var found []*Node
	for _, c := range n.children {
		if c.tag == tag {
			found = append(found, c)
		}
		found = append(found, c.Find(tag)...)
	}
	return found
}

// FindClass returns every descendant whose class attribute equals class.
func (n *Node) FindClass(class string) []*Node {
	var found []*Node
	for _, c := range n.children {
		if v, ok := c.Get("class"); ok && v == class {
			found = append(found, c)
		}
		found = append(found, c.FindClass(class)...)
	}
	return found
}

// FormatNumber renders a coordinate the way a browser stringifies a number:
// shortest round-trip form, "NaN" for NaN.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}

func set(list []Attribute, name, value string) []Attribute {
	for i := range list {
		if list[i].Name == name {
			list[i].Value = value
			return list
		}
	}
	return append(list, Attribute{Name: name, Value: value})
}

func get(list []Attribute, name string) (string, bool) {
	for _, a := range list {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
