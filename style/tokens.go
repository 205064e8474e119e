package style

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/tsawler/forma/layout"
)

// ColorToken is one distinct color used anywhere in the tree. Name is a
// stable human-readable handle derived from the nearest named color.
type ColorToken struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Uses  int    `json:"uses"`
}

// ValueToken is one distinct numeric design value (a spacing unit or a
// corner radius), in px.
type ValueToken struct {
	Value float64 `json:"value"`
	Uses  int     `json:"uses"`
}

// TypographyToken is one distinct typography signature.
type TypographyToken struct {
	Name       string `json:"name"`
	FontFamily string `json:"fontFamily"`
	FontSize   string `json:"fontSize"`
	FontWeight string `json:"fontWeight"`
	LineHeight string `json:"lineHeight,omitempty"`
	Uses       int    `json:"uses"`
}

// ShadowToken is one distinct shadow specification.
type ShadowToken struct {
	Value string `json:"value"`
	Uses  int    `json:"uses"`
}

// Tokens are the global deduplicated design values collected across all
// registered styles and the layout tree.
type Tokens struct {
	Colors     []ColorToken      `json:"colors"`
	Spacing    []ValueToken      `json:"spacing"`
	Radii      []ValueToken      `json:"radii"`
	Typography []TypographyToken `json:"typography"`
	Shadows    []ShadowToken     `json:"shadows"`
}

// Bundle pairs the style registry with the token tables. Every styleRef in
// the IR resolves in Styles.
type Bundle struct {
	Styles *Registry
	Tokens Tokens
}

// colorKeys are the property keys whose values enter the color bucket.
var colorKeys = []string{"background", "color", "borderColor"}

// CollectTokens scans the registered styles in registration order, plus the
// layout tree's gap and padding values, and buckets distinct design values.
// Distinctness is exact string or numeric equality.
func CollectTokens(reg *Registry, layoutRoot *layout.Node) Tokens {
	c := newCollector()

	for _, name := range reg.Names() {
		props, _ := reg.Get(name)
		for _, key := range colorKeys {
			if v, ok := props[key]; ok && isColorValue(v) {
				c.addColor(v)
			}
		}
		if v, ok := props["boxShadow"]; ok {
			c.addShadow(v)
		}
		if v, ok := props["borderRadius"]; ok {
			for _, amount := range parsePxList(v) {
				c.addRadius(amount)
			}
		}
		if _, ok := props["fontSize"]; ok {
			c.addTypography(props)
		}
	}

	walkLayout(layoutRoot, func(n *layout.Node) {
		if n.Meta.Gap > 0 {
			c.addSpacing(n.Meta.Gap)
		}
		for _, edge := range []float64{n.Meta.Padding.Top, n.Meta.Padding.Right, n.Meta.Padding.Bottom, n.Meta.Padding.Left} {
			if edge > 0 {
				c.addSpacing(edge)
			}
		}
	})

	return c.finish()
}

func walkLayout(n *layout.Node, fn func(*layout.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		walkLayout(child, fn)
	}
}

type collector struct {
	colors     []ColorToken
	colorIdx   map[string]int
	colorNames map[string]string // value -> assigned name
	nameTaken  map[string]string // name -> value

	spacing map[float64]int
	radii   map[float64]int

	typography []TypographyToken
	typoIdx    map[string]int

	shadows   []ShadowToken
	shadowIdx map[string]int
}

func newCollector() *collector {
	return &collector{
		colorIdx:   map[string]int{},
		colorNames: map[string]string{},
		nameTaken:  map[string]string{},
		spacing:    map[float64]int{},
		radii:      map[float64]int{},
		typoIdx:    map[string]int{},
		shadowIdx:  map[string]int{},
	}
}

func (c *collector) addColor(value string) {
	if i, ok := c.colorIdx[value]; ok {
		c.colors[i].Uses++
		return
	}
	name := c.assignColorName(value)
	c.colorIdx[value] = len(c.colors)
	c.colors = append(c.colors, ColorToken{Name: name, Value: value, Uses: 1})
}

// assignColorName names a color after the nearest entry in the SVG palette,
// suffixing when two distinct values land on the same nearest name.
func (c *collector) assignColorName(value string) string {
	base := nearestColorName(value)
	name := base
	for suffix := 2; ; suffix++ {
		taken, ok := c.nameTaken[name]
		if !ok {
			break
		}
		if taken == value {
			break
		}
		name = base + "-" + strconv.Itoa(suffix)
	}
	c.nameTaken[name] = value
	return name
}

func (c *collector) addSpacing(v float64) { c.spacing[v]++ }

func (c *collector) addRadius(v float64) { c.radii[v]++ }

func (c *collector) addTypography(props Properties) {
	t := TypographyToken{
		FontFamily: props["fontFamily"],
		FontSize:   props["fontSize"],
		FontWeight: props["fontWeight"],
		LineHeight: props["lineHeight"],
	}
	key := t.FontFamily + "|" + t.FontSize + "|" + t.FontWeight + "|" + t.LineHeight
	if i, ok := c.typoIdx[key]; ok {
		c.typography[i].Uses++
		return
	}
	t.Name = typographyName(t)
	t.Uses = 1
	c.typoIdx[key] = len(c.typography)
	c.typography = append(c.typography, t)
}

func (c *collector) addShadow(value string) {
	if i, ok := c.shadowIdx[value]; ok {
		c.shadows[i].Uses++
		return
	}
	c.shadowIdx[value] = len(c.shadows)
	c.shadows = append(c.shadows, ShadowToken{Value: value, Uses: 1})
}

func (c *collector) finish() Tokens {
	return Tokens{
		Colors:     c.colors,
		Spacing:    sortedValues(c.spacing),
		Radii:      sortedValues(c.radii),
		Typography: c.typography,
		Shadows:    c.shadows,
	}
}

func sortedValues(m map[float64]int) []ValueToken {
	out := make([]ValueToken, 0, len(m))
	for v, uses := range m {
		out = append(out, ValueToken{Value: v, Uses: uses})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

func typographyName(t TypographyToken) string {
	family := "font"
	if t.FontFamily != "" {
		family = strings.ToLower(strings.ReplaceAll(t.FontFamily, " ", ""))
	}
	size := strings.TrimSuffix(t.FontSize, "px")
	if size == "" {
		return family
	}
	return family + "-" + size
}

// isColorValue reports whether a property value is a literal color rather
// than a gradient or keyword.
func isColorValue(v string) bool {
	return strings.HasPrefix(v, "#") || strings.HasPrefix(v, "rgba(")
}

// nearestColorName finds the closest color in the SVG 1.1 palette by squared
// RGB distance. The palette's name list is alphabetical, so ties resolve
// deterministically.
func nearestColorName(value string) string {
	r, g, b, ok := parseCSSColor(value)
	if !ok {
		return "color"
	}

	best := "black"
	bestDist := int64(1) << 62
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		dr := int64(c.R) - int64(r)
		dg := int64(c.G) - int64(g)
		db := int64(c.B) - int64(b)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = name
		}
	}
	return best
}

// parseCSSColor reads the two forms this package emits: #rrggbb and
// rgba(r, g, b, a).
func parseCSSColor(value string) (r, g, b uint8, ok bool) {
	if strings.HasPrefix(value, "#") && len(value) == 7 {
		n, err := strconv.ParseUint(value[1:], 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		return uint8(n >> 16), uint8(n >> 8), uint8(n), true
	}
	if strings.HasPrefix(value, "rgba(") && strings.HasSuffix(value, ")") {
		inner := value[len("rgba(") : len(value)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 4 {
			return 0, 0, 0, false
		}
		channels := [3]uint8{}
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || n < 0 || n > 255 {
				return 0, 0, 0, false
			}
			channels[i] = uint8(n)
		}
		return channels[0], channels[1], channels[2], true
	}
	return 0, 0, 0, false
}

// parsePxList parses a space-separated list of px amounts.
func parsePxList(v string) []float64 {
	var out []float64
	for _, part := range strings.Fields(v) {
		n, err := strconv.ParseFloat(strings.TrimSuffix(part, "px"), 64)
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}
