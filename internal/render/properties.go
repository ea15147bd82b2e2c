package render

import (
	"pagestudio/local-app/internal/model"
)

// FieldKind says where a property field's value lives and where a write to
// it must be routed.
type FieldKind string

const (
	KindProp        FieldKind = "prop"        // direct component property (name, tag, text)
	KindStyle       FieldKind = "style"       // style map key
	KindCorner      FieldKind = "corner"      // one border-radius corner (tl, tr, br, bl)
	KindAttr        FieldKind = "attr"        // attribute map key
	KindInteraction FieldKind = "interaction" // interaction map key
)

// Field is one editable entry of the properties form.
type Field struct {
	Group string
	Label string
	Key   string
	Kind  FieldKind
	Value string
}

// Properties reflects the selected component into the grouped form. The
// flex container group appears only for flex containers and the flex item
// group only for flex children; flex children expose no left/top offsets.
func Properties(c *model.Component, isFlexItem bool) []Field {
	if c == nil {
		return nil
	}
	var fields []Field
	add := func(group, label, key string, kind FieldKind, value string) {
		fields = append(fields, Field{Group: group, Label: label, Key: key, Kind: kind, Value: value})
	}
	style := func(group, label, key string) {
		add(group, label, key, KindStyle, c.Style[key])
	}

	add("General", "Name", "name", KindProp, c.Name)
	add("General", "Tag", "tag", KindProp, c.Tag)
	if !isVectorTag(c.Tag) {
		add("General", "Text", "text", KindProp, c.Text)
	}

	add("Interaction", "Open Key (VK Code)", "openKey", KindInteraction, c.Interaction["openKey"])
	add("Interaction", "Use Master Key", "useMasterKey", KindInteraction, c.Interaction["useMasterKey"])

	if !isFlexItem {
		style("Position & Size", "X", "left")
		style("Position & Size", "Y", "top")
	}
	style("Position & Size", "Width", "width")
	style("Position & Size", "Height", "height")
	style("Position & Size", "Z-Index", "zIndex")

	if c.IsFlexContainer() {
		style("Flex Container", "Direction", "flexDirection")
		style("Flex Container", "Justify Content", "justifyContent")
		style("Flex Container", "Align Items", "alignItems")
		style("Flex Container", "Gap", "gap")
		style("Flex Container", "Wrap", "flexWrap")
	}
	if isFlexItem {
		style("Flex Item", "Grow", "flexGrow")
		style("Flex Item", "Shrink", "flexShrink")
		style("Flex Item", "Align Self", "alignSelf")
		style("Flex Item", "Order", "order")
	}

	style("Typography", "Color", "color")
	style("Typography", "Font Size", "fontSize")
	style("Typography", "Font Family", "fontFamily")
	style("Typography", "Font Weight", "fontWeight")
	style("Typography", "Text Align", "textAlign")
	style("Typography", "Text Shadow", "textShadow")

	style("Appearance", "Background", "background")
	style("Appearance", "Background Color", "backgroundColor")
	style("Appearance", "Border", "border")
	corners := model.ParseBorderRadius(c.Style["borderRadius"])
	cornerLabels := [4]string{"Radius TL", "Radius TR", "Radius BR", "Radius BL"}
	cornerKeys := [4]string{"tl", "tr", "br", "bl"}
	for i := range corners {
		add("Appearance", cornerLabels[i], cornerKeys[i], KindCorner, corners[i])
	}
	style("Appearance", "Box Shadow", "boxShadow")
	style("Appearance", "Opacity", "opacity")
	style("Appearance", "Filter", "filter")

	style("Spacing", "Padding", "padding")
	style("Spacing", "Margin", "margin")

	return fields
}

// ApplyCorner rewrites one corner of a border-radius shorthand and returns
// the new shorthand value.
func ApplyCorner(radius, corner, value string) string {
	corners := model.ParseBorderRadius(radius)
	switch corner {
	case "tl":
		corners[0] = value
	case "tr":
		corners[1] = value
	case "br":
		corners[2] = value
	case "bl":
		corners[3] = value
	}
	return model.JoinBorderRadius(corners)
}
