// Package generate turns a project into deliverable artifacts: a
// standalone HTML document and a Macho API Lua script. Output is
// deterministic; map-backed sections are emitted in sorted key order.
package generate

import (
	"fmt"
	"sort"
	"strings"

	"pagestudio/local-app/internal/model"
)

// selfClosing tags render without a closing tag or children.
var selfClosing = map[string]bool{
	"img":   true,
	"input": true,
	"br":    true,
	"hr":    true,
}

// Body renders the component tree to an HTML fragment. Siblings appear in
// z-index order, styles become inline declarations, attribute token lists
// are space-joined, and inline text precedes child elements.
func Body(p *model.Project) string {
	return buildElements(p.Components)
}

// HTML renders the complete exported document: the body fragment, global
// CSS plus one #id rule per element stylesheet entry, and global JS plus
// per-element scripts wrapped in try/catch inside a DOMContentLoaded
// handler.
func HTML(p *model.Project) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Exported Page</title>
    <style>
        body { margin: 0; padding: 0; font-family: sans-serif; }
        %s
    </style>
</head>
<body>
    %s
    <script>
        %s
    </script>
</body>
</html>`, Stylesheet(p), Body(p), Script(p))
}

// Stylesheet joins the global CSS with the per-element rules.
func Stylesheet(p *model.Project) string {
	parts := []string{p.GlobalCSS}
	for _, id := range sortedKeys(p.ElementCSS) {
		if css := p.ElementCSS[id]; css != "" {
			parts = append(parts, fmt.Sprintf("#%s { %s }", id, css))
		}
	}
	return strings.Join(parts, "\n")
}

// Script joins the global JS with the per-element scripts. Each element
// script runs against its resolved element and cannot take the page down:
// failures land in the console.
func Script(p *model.Project) string {
	var scripts strings.Builder
	for _, id := range sortedKeys(p.ElementJS) {
		script := p.ElementJS[id]
		if script == "" {
			continue
		}
		fmt.Fprintf(&scripts,
			"try{ const el=document.getElementById('%s'); if(el){ (function(el){ %s })(el); } }catch(e){console.error('Error in script for %s:',e)}",
			id, script, id)
	}
	return fmt.Sprintf("%s\ndocument.addEventListener('DOMContentLoaded',()=>{%s});", p.GlobalJS, scripts.String())
}

func buildElements(comps []*model.Component) string {
	var elements []string
	for _, c := range sortByZIndex(comps) {
		elements = append(elements, buildElement(c))
	}
	return strings.Join(elements, "\n")
}

func buildElement(c *model.Component) string {
	tag := c.Tag
	if tag == "" {
		tag = "div"
	}

	var attrs strings.Builder
	fmt.Fprintf(&attrs, `id=%q style=%q`, c.ID, model.StyleCSS(c.Style))
	for _, key := range sortedAttrKeys(c.Attributes) {
		if key == "id" || key == "style" {
			continue
		}
		fmt.Fprintf(&attrs, " %s=%q", key, c.Attributes[key].String())
	}

	if selfClosing[tag] {
		return fmt.Sprintf("<%s %s>", tag, attrs.String())
	}

	text := c.Text
	if isVectorTag(tag) {
		text = ""
	}
	return fmt.Sprintf("<%s %s>%s%s</%s>", tag, attrs.String(), text, buildElements(c.Children), tag)
}

func isVectorTag(tag string) bool {
	switch tag {
	case "svg", "path", "g":
		return true
	}
	return false
}

func sortByZIndex(comps []*model.Component) []*model.Component {
	sorted := append([]*model.Component(nil), comps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return zIndex(sorted[i]) < zIndex(sorted[j])
	})
	return sorted
}

func zIndex(c *model.Component) int {
	var z int
	fmt.Sscanf(c.Style["zIndex"], "%d", &z)
	return z
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAttrKeys(attrs map[string]model.AttrValue) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
