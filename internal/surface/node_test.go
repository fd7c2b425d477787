package surface

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_AttrReplacesInPlace(t *testing.T) {
	n := New("rect").
		Attr("x", 0).
		Attr("width", 12.5).
		Attr("x", 3)

	attrs := n.Attrs()
	require.Len(t, attrs, 2)
	assert.Equal(t, Attribute{Name: "x", Value: "3"}, attrs[0])
	assert.Equal(t, Attribute{Name: "width", Value: "12.5"}, attrs[1])

	_, ok := n.Get("y")
	assert.False(t, ok)
}

func TestNode_Find(t *testing.T) {
	root := New("svg")
	g := root.Append("g")
	g.Append("path").Attr("class", "domain")
	tick := g.Append("g").Attr("class", "tick")
	tick.Append("line")
	tick.Append("text")

	assert.Len(t, root.Find("g"), 2)
	assert.Len(t, root.Find("text"), 1)
	assert.Len(t, root.FindClass("tick"), 1)
	assert.Empty(t, root.FindClass("missing"))
	assert.False(t, root.Empty())
	assert.True(t, tick.Children()[0].Empty())
}

func TestNode_WriteSVG(t *testing.T) {
	root := New("svg").
		Attr("xmlns", "http://www.w3.org/2000/svg").
		Attr("width", 900).
		Style("border", "1px solid").
		Style("display", "block")
	root.Append("text").Attr("title", `a "b" <c>`).SetText("−5 & more")
	root.Append("g")

	var buf bytes.Buffer
	require.NoError(t, root.WriteSVG(&buf))

	want := `<svg xmlns="http://www.w3.org/2000/svg" width="900" style="border: 1px solid; display: block">` +
		`<text title="a &#34;b&#34; &lt;c&gt;">−5 &amp; more</text>` +
		`<g/>` +
		`</svg>`
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, root.String())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{345.5, "345.5"},
		{-6, "-6"},
		{1e21, "1000000000000000000000"},
		{0.1 + 0.2, "0.30000000000000004"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestNode_StyleValue(t *testing.T) {
	n := New("svg").Style("border", "1px solid").Style("border", "2px dashed")

	v, ok := n.StyleValue("border")
	require.True(t, ok)
	assert.Equal(t, "2px dashed", v)

	_, ok = n.StyleValue("color")
	assert.False(t, ok)
}
