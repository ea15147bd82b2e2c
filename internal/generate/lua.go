package generate

import (
	"fmt"
	"strings"

	"pagestudio/local-app/internal/model"
)

const interactionJS = `const elementVisibility = {};
function toggleElementVisibility(elementId) {
    const el = document.getElementById(elementId);
    if (!el) return;
    if (elementVisibility[elementId] === undefined) {
        elementVisibility[elementId] = getComputedStyle(el).display !== 'none';
    }
    elementVisibility[elementId] = !elementVisibility[elementId];
    el.style.display = elementVisibility[elementId] ? '' : 'none';
}
window.addEventListener("message", (event) => {
    const data = event.data;
    if (data.action === 'toggle') {
        toggleElementVisibility(data.id);
    }
});`

// Lua renders the project as a Macho API script: a Functions state table
// and menu structure derived from the tree, the HTML/CSS/JS payload in
// long-bracket strings, and key-up handlers for the master key and every
// per-component open key.
func Lua(p *model.Project) string {
	var b strings.Builder
	b.WriteString("-- Generated by Visual Web Editor\n")
	b.WriteString("-- Macho API Ready Lua Structure\n\n")

	b.WriteString("-- #region State Management\n")
	writeFunctionsTable(&b, p)
	b.WriteString("-- #endregion\n\n")

	b.WriteString("-- #region Menu Structure\n")
	writeMenuStructure(&b, p)
	b.WriteString("-- #endregion\n\n")

	fmt.Fprintf(&b, `Citizen.CreateThread(function()
    local htmlPayload = [=[
        <!DOCTYPE html>
        <html>
        <head>
            <style>%s</style>
        </head>
        <body>%s</body>
        </html>
    ]=]

    local jsPayload = [=[%s]=]

    MachoInjectPayload(htmlPayload, jsPayload)
end)

MachoOnKeyUp(function(key)
    %s
end)

print("Macho DUI script with structured menu loaded successfully.")
`, sanitizeLongBrackets(Stylesheet(p)), sanitizeLongBrackets(Body(p)), sanitizeLongBrackets(payloadJS(p)), keyHandlers(p))
	return b.String()
}

// payloadJS bundles the visibility-toggle listener with the global and
// per-element scripts for injection alongside the HTML.
func payloadJS(p *model.Project) string {
	var b strings.Builder
	b.WriteString(interactionJS)
	b.WriteString("\n")
	if p.GlobalJS != "" {
		b.WriteString(p.GlobalJS)
		b.WriteString("\n")
	}
	for _, id := range sortedKeys(p.ElementJS) {
		script := p.ElementJS[id]
		if script == "" {
			continue
		}
		fmt.Fprintf(&b, "try { const el = document.getElementById('%s'); if(el) { %s } } catch(e) { console.error(e); }\n", id, script)
	}
	return b.String()
}

func writeFunctionsTable(b *strings.Builder, p *model.Project) {
	b.WriteString("local Functions = {\n")
	p.Walk(func(c *model.Component) bool {
		fmt.Fprintf(b, "    %s_state = false,\n", luaName(c.ID))
		fmt.Fprintf(b, "    %s_value = 0,\n", luaName(c.ID))
		return true
	})
	b.WriteString("}\n")
}

func writeMenuStructure(b *strings.Builder, p *model.Project) {
	b.WriteString("menuStructure = {\n")
	writeMenu(b, "main", "Main", p.Components)
	b.WriteString("}\n")
}

func writeMenu(b *strings.Builder, key, title string, comps []*model.Component) {
	fmt.Fprintf(b, "    %s = {\n", key)
	fmt.Fprintf(b, "        title = %q,\n", title)
	b.WriteString("        items = {\n")
	var submenus []*model.Component
	for _, c := range comps {
		fmt.Fprintf(b, "            %s,\n", menuItem(c))
		if len(c.Children) > 0 {
			submenus = append(submenus, c)
		}
	}
	b.WriteString("            { text = \"Back\", type = \"back\" },\n")
	b.WriteString("        }\n")
	b.WriteString("    },\n")
	for _, sub := range submenus {
		writeMenu(b, luaName(sub.ID), menuTitle(sub), sub.Children)
	}
}

// menuItem maps a component onto one menu entry. Class tokens select the
// widget kind, children promote the entry to a submenu, and stateful kinds
// bind into the Functions table.
func menuItem(c *model.Component) string {
	kind := "action"
	classes := c.Attributes["class"]
	if classes.Has("checkbox") {
		kind = "checkbox"
	}
	if classes.Has("slider") {
		if kind == "checkbox" {
			kind = "slidercb"
		} else {
			kind = "slider"
		}
	}
	if len(c.Children) > 0 {
		kind = "submenu"
	}

	parts := []string{
		fmt.Sprintf("text = %q", strings.TrimSpace(c.Text)),
		fmt.Sprintf("type = %q", kind),
	}
	name := luaName(c.ID)
	if kind == "submenu" {
		parts = append(parts, fmt.Sprintf("target = %q", name))
	}
	if kind != "action" && kind != "submenu" {
		parts = append(parts, fmt.Sprintf("state = Functions.%s_state", name))
		parts = append(parts, fmt.Sprintf("action = function(s, v) Functions.%s_state, Functions.%s_value = s, v end", name, name))
	}
	if strings.HasPrefix(kind, "slider") {
		parts = append(parts, fmt.Sprintf("value = Functions.%s_value", name))
		parts = append(parts, fmt.Sprintf("min = %s", attrOr(c, "data-min", "0")))
		parts = append(parts, fmt.Sprintf("max = %s", attrOr(c, "data-max", "100")))
		parts = append(parts, fmt.Sprintf("step = %s", attrOr(c, "data-step", "1")))
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
}

// keyHandlers emits the master-key toggle block followed by one block per
// open-key binding. Components bound to the master key are excluded from
// their own open-key handlers.
func keyHandlers(p *model.Project) string {
	var lines []string
	if master := p.GlobalSettings["masterKey"]; master != "" {
		lines = append(lines, fmt.Sprintf("if key == %s then", master))
		p.Walk(func(c *model.Component) bool {
			if interactionFlag(c, "useMasterKey") {
				lines = append(lines, fmt.Sprintf("    MachoInjectJavaScript(%s)", quoteLua(toggleMessage(c.ID))))
			}
			return true
		})
		lines = append(lines, "end")
	}
	p.Walk(func(c *model.Component) bool {
		openKey := c.Interaction["openKey"]
		if openKey == "" || interactionFlag(c, "useMasterKey") {
			return true
		}
		lines = append(lines, fmt.Sprintf("if key == %s then", openKey))
		lines = append(lines, fmt.Sprintf("    MachoInjectJavaScript(%s)", quoteLua(toggleMessage(c.ID))))
		lines = append(lines, "end")
		return true
	})
	return strings.Join(lines, "\n    ")
}

func toggleMessage(id string) string {
	return fmt.Sprintf("window.postMessage({ action: 'toggle', id: '%s' })", id)
}

func interactionFlag(c *model.Component, key string) bool {
	v := c.Interaction[key]
	return v != "" && v != "false"
}

func menuTitle(c *model.Component) string {
	if c.Name != "" {
		return c.Name
	}
	return strings.ReplaceAll(c.ID, "-", " ")
}

func attrOr(c *model.Component, key, fallback string) string {
	if v, ok := c.Attributes[key]; ok && v.String() != "" {
		return v.String()
	}
	return fallback
}

func luaName(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// quoteLua picks the lightest Lua string literal that can hold a JS
// snippet without escaping.
func quoteLua(js string) string {
	switch {
	case !strings.Contains(js, "'"):
		return "'" + js + "'"
	case !strings.Contains(js, `"`):
		return `"` + js + `"`
	default:
		return "[=[" + js + "]=]"
	}
}

// sanitizeLongBrackets keeps embedded payload text from terminating the
// enclosing level-one long bracket.
func sanitizeLongBrackets(s string) string {
	s = strings.ReplaceAll(s, "[=[", "[==[")
	return strings.ReplaceAll(s, "]=]", "]==]")
}
