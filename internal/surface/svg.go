package surface

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// WriteSVG serializes the node and its subtree as XML.
func (n *Node) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := n.write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func (n *Node) String() string {
	var sb strings.Builder
	_ = n.WriteSVG(&sb)
	return sb.String()
}

func (n *Node) write(w *bufio.Writer) error {
	w.WriteByte('<')
	w.WriteString(n.tag)

	for _, a := range n.attrs {
		writeAttr(w, a.Name, a.Value)
	}
	if len(n.styles) > 0 {
		parts := make([]string, 0, len(n.styles))
		for _, s := range n.styles {
			parts = append(parts, s.Name+": "+s.Value)
		}
		writeAttr(w, "style", strings.Join(parts, "; "))
	}

	if n.text == "" && len(n.children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}

	w.WriteByte('>')
	if n.text != "" {
		if err := xml.EscapeText(w, []byte(n.text)); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := c.write(w); err != nil {
			return err
		}
	}
	w.WriteString("</")
	w.WriteString(n.tag)
	_, err := w.WriteString(">")
	return err
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	_ = xml.EscapeText(w, []byte(value))
	w.WriteByte('"')
}
