package surface

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// rasterDPI makes one font point one pixel, which is how browsers size
// font-size="10".
const rasterDPI = 72

// paint is the inherited presentation state while walking the tree.
type paint struct {
	dx, dy      float64
	fill        string
	stroke      string
	strokeWidth float64
	fontSize    float64
	anchor      string
}

// Rasterize replays the svg root onto a go-chart renderer (chart.PNG or
// chart.SVG) and saves the result to w. Only the elements and attributes the
// chart layers produce are understood; anything with NaN geometry is skipped.
func Rasterize(root *Node, provider chart.RendererProvider, w io.Writer) error {
	width, err := dimension(root, "width")
	if err != nil {
		return err
	}
	height, err := dimension(root, "height")
	if err != nil {
		return err
	}

	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	r.SetDPI(rasterDPI)

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	c := &canvas{r: r, font: font}
	c.background(float64(width), float64(height))
	if border, ok := root.StyleValue("border"); ok && border != "" {
		c.border(float64(width), float64(height))
	}

	state := paint{fill: "black", stroke: "none", strokeWidth: 1, fontSize: 16, anchor: "start"}
	for _, child := range root.children {
		c.draw(child, inherit(state, child))
	}

	return r.Save(w)
}

func dimension(root *Node, name string) (int, error) {
	v, _ := root.Get(name)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || f <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return int(math.Ceil(f)), nil
}

type canvas struct {
	r    chart.Renderer
	font *truetype.Font
}

func (c *canvas) background(w, h float64) {
	c.r.ResetStyle()
	c.r.SetFillColor(drawing.ColorWhite)
	c.polygon([]pt{{0, 0}, {w, 0}, {w, h}, {0, h}})
	c.r.Fill()
}

func (c *canvas) border(w, h float64) {
	c.r.ResetStyle()
	c.r.SetStrokeColor(drawing.ColorBlack)
	c.r.SetStrokeWidth(1)
	c.polygon([]pt{{0.5, 0.5}, {w - 0.5, 0.5}, {w - 0.5, h - 0.5}, {0.5, h - 0.5}})
	c.r.Stroke()
}

func (c *canvas) draw(n *Node, p paint) {
	switch n.tag {
	case "rect":
		c.rect(n, p)
	case "path":
		c.path(n, p)
	case "line":
		c.line(n, p)
	case "text":
		c.text(n, p)
	}

	for _, child := range n.children {
		c.draw(child, inherit(p, child))
	}
}

func (c *canvas) rect(n *Node, p paint) {
	x, y := num(n, "x"), num(n, "y")
	w, h := num(n, "width"), num(n, "height")
	if anyNaN(x, y, w, h) || w <= 0 || h <= 0 {
		return
	}

	shape := []pt{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	c.fillAndStroke(p, [][]pt{shape}, true)
}

func (c *canvas) path(n *Node, p paint) {
	d, ok := n.Get("d")
	if !ok {
		return
	}
	c.fillAndStroke(p, parsePath(d), false)
}

func (c *canvas) line(n *Node, p paint) {
	x1, y1 := num(n, "x1"), num(n, "y1")
	x2, y2 := num(n, "x2"), num(n, "y2")
	if anyNaN(x1, y1, x2, y2) {
		return
	}
	c.fillAndStroke(paint{dx: p.dx, dy: p.dy, fill: "none", stroke: p.stroke, strokeWidth: p.strokeWidth},
		[][]pt{{{x1, y1}, {x2, y2}}}, false)
}

func (c *canvas) text(n *Node, p paint) {
	color, ok := parseColor(p.fill)
	if !ok || n.text == "" {
		return
	}
	x, y := num(n, "x"), num(n, "y")
	if anyNaN(x, y) {
		return
	}
	if dy, ok := n.Get("dy"); ok {
		y += parseLength(dy, p.fontSize)
	}

	c.r.ResetStyle()
	c.r.SetFont(c.font)
	c.r.SetFontSize(p.fontSize)
	c.r.SetFontColor(color)

	width := float64(c.r.MeasureText(n.text).Width())
	switch p.anchor {
	case "middle":
		x -= width / 2
	case "end":
		x -= width
	}

	c.r.Text(n.text, px(x+p.dx), px(y+p.dy))
}

func (c *canvas) fillAndStroke(p paint, subpaths [][]pt, closed bool) {
	if fill, ok := parseColor(p.fill); ok {
		for _, sp := range subpaths {
			if len(sp) < 3 {
				continue
			}
			c.r.ResetStyle()
			c.r.SetFillColor(fill)
			c.polygon(offset(sp, p))
			c.r.Fill()
		}
	}

	stroke, ok := parseColor(p.stroke)
	if !ok || p.strokeWidth <= 0 {
		return
	}
	for _, sp := range subpaths {
		if len(sp) < 2 {
			continue
		}
		c.r.ResetStyle()
		c.r.SetStrokeColor(stroke)
		c.r.SetStrokeWidth(p.strokeWidth)
		if closed {
			c.polygon(offset(sp, p))
		} else {
			c.polyline(offset(sp, p))
		}
		c.r.Stroke()
	}
}

func (c *canvas) polyline(points []pt) {
	for i, q := range points {
		if i == 0 {
			c.r.MoveTo(px(q.x), px(q.y))
			continue
		}
		c.r.LineTo(px(q.x), px(q.y))
	}
}

func (c *canvas) polygon(points []pt) {
	c.polyline(points)
	c.r.Close()
}

type pt struct {
	x, y float64
}

func offset(points []pt, p paint) []pt {
	out := make([]pt, len(points))
	for i, q := range points {
		out[i] = pt{q.x + p.dx, q.y + p.dy}
	}
	return out
}

// parsePath reads absolute M, L, H and V commands. A NaN coordinate ends the
// current subpath.
func parsePath(d string) [][]pt {
	var (
		subpaths [][]pt
		current  []pt
		cmd      byte
		x, y     float64
	)

	flush := func() {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}
	add := func() {
		if anyNaN(x, y) {
			flush()
			return
		}
		current = append(current, pt{x, y})
	}

	tokens := tokenizePath(d)
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if len(tok) == 1 && strings.ContainsAny(tok, "MLHVZmlhvz") {
			cmd = tok[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				if len(current) > 0 {
					current = append(current, current[0])
				}
			}
			continue
		}

		switch cmd {
		case 'M', 'L':
			if i+1 >= len(tokens) {
				flush()
				return subpaths
			}
			if cmd == 'M' {
				flush()
				cmd = 'L'
			}
			x, y = parseNumber(tokens[i]), parseNumber(tokens[i+1])
			i += 2
		case 'H':
			x = parseNumber(tok)
			i++
		case 'V':
			y = parseNumber(tok)
			i++
		default:
			i++
			continue
		}
		add()
	}
	flush()

	return subpaths
}

func tokenizePath(d string) []string {
	var tokens []string
	var sb strings.Builder
	emit := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}

	for i := 0; i < len(d); i++ {
		ch := d[i]
		switch {
		case strings.HasPrefix(d[i:], "NaN"):
			emit()
			tokens = append(tokens, "NaN")
			i += 2
		case strings.IndexByte("MLHVZmlhvz", ch) >= 0:
			emit()
			tokens = append(tokens, string(ch))
		case ch == ',' || ch == ' ':
			emit()
		case ch == '-' && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "e"):
			emit()
			sb.WriteByte(ch)
		default:
			sb.WriteByte(ch)
		}
	}
	emit()

	return tokens
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseLength(s string, fontSize float64) float64 {
	if v, ok := strings.CutSuffix(s, "em"); ok {
		return parseNumber(v) * fontSize
	}
	return parseNumber(strings.TrimSuffix(s, "px"))
}

func parseColor(s string) (drawing.Color, bool) {
	switch s {
	case "", "none", "transparent":
		return drawing.Color{}, false
	case "currentColor", "black":
		return drawing.ColorBlack, true
	case "white":
		return drawing.ColorWhite, true
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && (len(hex) == 3 || len(hex) == 6) {
		return drawing.ColorFromHex(hex), true
	}
	return drawing.ColorBlack, true
}

// inherit applies the presentation attributes of n on top of p.
func inherit(p paint, n *Node) paint {
	if v, ok := n.Get("fill"); ok {
		p.fill = v
	}
	if v, ok := n.Get("stroke"); ok {
		p.stroke = v
	}
	if v, ok := n.Get("stroke-width"); ok {
		if w := parseNumber(v); !math.IsNaN(w) {
			p.strokeWidth = w
		}
	}
	if v, ok := n.Get("font-size"); ok {
		if s := parseNumber(strings.TrimSuffix(v, "px")); !math.IsNaN(s) {
			p.fontSize = s
		}
	}
	if v, ok := n.Get("text-anchor"); ok {
		p.anchor = v
	}
	if v, ok := n.Get("transform"); ok {
		if tx, ty, ok := parseTranslate(v); ok {
			p.dx += tx
			p.dy += ty
		}
	}
	return p
}

func parseTranslate(s string) (float64, float64, bool) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "translate(")
	if !ok {
		return 0, 0, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return 0, 0, false
	}

	parts := strings.FieldsFunc(inner, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) == 0 || len(parts) > 2 {
		return 0, 0, false
	}
	tx := parseNumber(parts[0])
	ty := 0.0
	if len(parts) == 2 {
		ty = parseNumber(parts[1])
	}
	if anyNaN(tx, ty) {
		return 0, 0, false
	}
	return tx, ty, true
}

// num reads a numeric attribute; a missing one is 0 and a malformed one NaN.
func num(n *Node, name string) float64 {
	v, ok := n.Get(name)
	if !ok {
		return 0
	}
	return parseNumber(v)
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func px(v float64) int {
	return int(math.Round(v))
}
