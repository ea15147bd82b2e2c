// Package render projects the component tree onto its surfaces: the canvas
// (a live HTML fragment), the hierarchy outline and the properties form.
// Every projection rebuilds from scratch; after any mutation the projected
// output matches the data tree exactly.
package render

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pagestudio/local-app/internal/model"
)

// Class markers attached to projected canvas elements. The wrapper class
// carries the selection/hover affordances, the flex markers drive drag
// targeting.
const (
	ClassWrapper       = "component-wrapper"
	ClassFlexContainer = "flex-container"
	ClassFlexItem      = "flex-item"
	ClassSelected      = "selected"
	ClassResizer       = "resizer br"
)

// Canvas projects the whole tree into an HTML element. Top-level
// components appear in z-index order; nested children render in tree
// order so a flex reorder is visible without touching z-index. Every
// style key becomes an inline declaration, attributes are applied with
// class token sets expanded, and the selected component gets a resize
// affordance appended.
func Canvas(p *model.Project, selectedID string) *html.Node {
	root := newElement("div")
	setAttr(root, "id", "canvas")
	for _, c := range sortByZIndex(p.Components) {
		root.AppendChild(canvasNode(c, selectedID, false))
	}
	return root
}

// CanvasHTML renders the canvas projection to a string.
func CanvasHTML(p *model.Project, selectedID string) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, Canvas(p, selectedID)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func canvasNode(c *model.Component, selectedID string, isFlexItem bool) *html.Node {
	tag := c.Tag
	if tag == "" {
		tag = "div"
	}
	n := newElement(tag)

	classes := []string{ClassWrapper}
	if c.IsFlexContainer() {
		classes = append(classes, ClassFlexContainer)
	}
	if isFlexItem {
		classes = append(classes, ClassFlexItem)
	}
	if c.ID == selectedID {
		classes = append(classes, ClassSelected)
	}
	if extra, ok := c.Attributes["class"]; ok {
		classes = append(classes, extra...)
	}

	setAttr(n, "id", c.ID)
	setAttr(n, "class", strings.Join(classes, " "))
	setAttr(n, "data-id", c.ID)
	setAttr(n, "data-name", c.Name)
	if css := model.StyleCSS(c.Style); css != "" {
		setAttr(n, "style", css)
	}
	for _, key := range sortedAttrKeys(c.Attributes) {
		if key == "class" || key == "id" || key == "style" {
			continue
		}
		setAttr(n, key, c.Attributes[key].String())
	}

	if c.Text != "" && !isVectorTag(tag) {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
	}
	for _, child := range c.Children {
		n.AppendChild(canvasNode(child, selectedID, c.IsFlexContainer()))
	}
	if c.ID == selectedID {
		resizer := newElement("div")
		setAttr(resizer, "class", ClassResizer)
		setAttr(resizer, "data-resize", "br")
		n.AppendChild(resizer)
	}
	return n
}

func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func isVectorTag(tag string) bool {
	switch tag {
	case "svg", "path", "g":
		return true
	}
	return false
}

// sortByZIndex orders top-level components by their numeric z-index,
// stably, leaving components without one at z-index 0.
func sortByZIndex(comps []*model.Component) []*model.Component {
	sorted := append([]*model.Component(nil), comps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return zIndex(sorted[i]) < zIndex(sorted[j])
	})
	return sorted
}

func zIndex(c *model.Component) int {
	z, err := strconv.Atoi(c.Style["zIndex"])
	if err != nil {
		return 0
	}
	return z
}

func sortedAttrKeys(attrs map[string]model.AttrValue) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
