package document

import (
	"pagestudio/local-app/internal/model"
)

// defaultIconShape is the path data seeded into new svg icons.
const defaultIconShape = "M12 2L15.09 8.26L22 9.27L17 14.14L18.18 21.02L12 17.77L5.82 21.02L7 14.14L2 9.27L8.91 8.26L12 2Z"

// defaultClickScript is the per-element script seeded for new buttons.
const defaultClickScript = "el.addEventListener('click', () => {\n  console.log(el.id + ' clicked');\n});"

// Blueprint is the construction recipe a type factory fills in: the tag and
// default style of the new component plus optional text, attributes, a
// per-element script seed and child types to create alongside it.
type Blueprint struct {
	Tag        string
	Text       string
	Script     string
	Style      map[string]string
	Attributes map[string]model.AttrValue
	ChildTypes []string
}

// Factory adjusts a base blueprint for one component type.
type Factory func(b *Blueprint)

// Registry maps component types to their default factories, keeping
// creation a flat dispatch instead of a growing conditional.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry seeded with the built-in component types.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("div", func(b *Blueprint) {
		b.Style["display"] = "flex"
		b.Style["flexDirection"] = "row"
	})
	r.Register("text", func(b *Blueprint) {
		b.Tag = "p"
		b.Text = "Editable Text"
		b.Style["height"] = "auto"
		b.Style["backgroundColor"] = "transparent"
		b.Style["border"] = "none"
		b.Style["color"] = "#ffffff"
	})
	r.Register("button", func(b *Blueprint) {
		b.Text = "Button"
		b.Script = defaultClickScript
		b.Style["width"] = "120px"
		b.Style["height"] = "40px"
		b.Style["textAlign"] = "center"
		b.Style["cursor"] = "pointer"
		b.Style["display"] = "grid"
		b.Style["placeItems"] = "center"
	})
	r.Register("img", func(b *Blueprint) {
		b.Attributes["src"] = model.Attr("https://placehold.co/200x100")
		b.Attributes["alt"] = model.Attr("image")
	})
	r.Register("header", func(b *Blueprint) {
		b.Style["width"] = "100%"
		b.Style["height"] = "150px"
		b.Style["left"] = "0px"
		b.Style["top"] = "0px"
		b.Style["borderRadius"] = "0px"
	})
	r.Register("content", func(b *Blueprint) {
		b.Tag = "main"
	})
	r.Register("footer", func(b *Blueprint) {})
	r.Register("checkbox", func(b *Blueprint) {
		b.Tag = "div"
		b.Text = "Checkbox"
		b.Style["width"] = "auto"
		b.Style["height"] = "auto"
		b.Style["backgroundColor"] = "transparent"
		b.Style["border"] = "none"
		b.Style["display"] = "flex"
		b.Style["alignItems"] = "center"
		b.Attributes["class"] = model.Tokens("checkbox")
	})
	r.Register("slider", func(b *Blueprint) {
		b.Tag = "div"
		b.Style["height"] = "20px"
		b.Attributes["class"] = model.Tokens("slider")
		b.Attributes["data-min"] = model.Attr("0")
		b.Attributes["data-max"] = model.Attr("100")
		b.Attributes["data-value"] = model.Attr("50")
	})
	r.Register("customWidget", func(b *Blueprint) {
		b.Tag = "div"
		b.Style["border"] = "2px dashed #00ffff"
	})
	r.Register("svg", func(b *Blueprint) {
		b.Style["width"] = "24px"
		b.Style["height"] = "24px"
		b.Style["backgroundColor"] = "transparent"
		b.Style["border"] = "none"
		b.Style["padding"] = "0px"
		b.Attributes["viewBox"] = model.Attr("0 0 24 24")
		b.Attributes["fill"] = model.Attr("#ffffff")
		b.ChildTypes = []string{"path"}
	})
	r.Register("path", func(b *Blueprint) {
		b.Style = make(map[string]string)
		b.Attributes["d"] = model.Attr(defaultIconShape)
	})
	return r
}

// Register installs or replaces the factory for a component type.
func (r *Registry) Register(compType string, f Factory) {
	r.factories[compType] = f
}

// Known reports whether a type has a registered factory.
func (r *Registry) Known(compType string) bool {
	_, ok := r.factories[compType]
	return ok
}

// Types returns the registered type names.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	return types
}

// TagFor returns the rendered tag a type defaults to.
func (r *Registry) TagFor(compType string) string {
	b := r.Blueprint(compType, false)
	return b.Tag
}

// Blueprint builds the default recipe for a type. Flex children start with
// relative positioning and no explicit offsets; free-positioned components
// get the absolute default box.
func (r *Registry) Blueprint(compType string, isFlexChild bool) *Blueprint {
	b := &Blueprint{
		Tag:        compType,
		Style:      baseStyle(isFlexChild),
		Attributes: make(map[string]model.AttrValue),
	}
	if f, ok := r.factories[compType]; ok {
		f(b)
	}
	return b
}

// baseStyle is the shared default box every new component starts from.
func baseStyle(isFlexChild bool) map[string]string {
	style := map[string]string{
		"width":           "200px",
		"height":          "100px",
		"backgroundColor": "#555",
		"border":          "1px solid #888",
		"borderRadius":    "5px",
		"padding":         "10px",
		"boxSizing":       "border-box",
	}
	if isFlexChild {
		style["position"] = "relative"
	} else {
		style["position"] = "absolute"
		style["left"] = "50px"
		style["top"] = "50px"
	}
	return style
}
