package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagestudio/local-app/internal/model"
)

func TestCreateRootDivDefaults(t *testing.T) {
	e := newTestEngine()
	div, err := e.Create("div", "")
	require.NoError(t, err)

	assert.Equal(t, "element-1", div.ID)
	assert.Equal(t, "div", div.Tag)
	assert.Equal(t, "flex", div.Style["display"])
	assert.Equal(t, "row", div.Style["flexDirection"])
	assert.Equal(t, "absolute", div.Style["position"])
	assert.Equal(t, "1", div.Style["zIndex"])
}

func TestCreateButtonInsideFlexRow(t *testing.T) {
	e := newTestEngine()
	div, err := e.Create("div", "")
	require.NoError(t, err)
	button, err := e.Create("button", div.ID)
	require.NoError(t, err)

	assert.Equal(t, "element-2", button.ID)
	assert.Equal(t, "relative", button.Style["position"], "flex child gets relative positioning")
	assert.NotContains(t, button.Style, "left")
	assert.NotContains(t, button.Style, "top")
	require.Len(t, div.Children, 1)
	assert.Same(t, button, div.Children[0])
	assert.NotEmpty(t, e.Store().Project().ElementJS["element-2"], "button seeds a default click handler")
}

func TestCreateTextDefaults(t *testing.T) {
	e := newTestEngine()
	text, err := e.Create("text", "")
	require.NoError(t, err)

	assert.Equal(t, "p", text.Tag)
	assert.Equal(t, "Editable Text", text.Text)
	assert.Equal(t, "transparent", text.Style["backgroundColor"])
	assert.Equal(t, "none", text.Style["border"])
	assert.Equal(t, "auto", text.Style["height"])
}

func TestCreateSVGSeedsPathChild(t *testing.T) {
	e := newTestEngine()
	svg, err := e.Create("svg", "")
	require.NoError(t, err)

	require.Len(t, svg.Children, 1)
	path := svg.Children[0]
	assert.Equal(t, "path", path.Type)
	assert.Equal(t, defaultIconShape, path.Attributes["d"].String())
	assert.Same(t, svg, e.Store().FindParent(path.ID), "seeded child is indexed")
}

func TestCreateImgDefaults(t *testing.T) {
	e := newTestEngine()
	img, err := e.Create("img", "")
	require.NoError(t, err)
	assert.NotEmpty(t, img.Attributes["src"].String())
}

func TestCreateWidgetDefaults(t *testing.T) {
	e := newTestEngine()

	cb, err := e.Create("checkbox", "")
	require.NoError(t, err)
	assert.Equal(t, "div", cb.Tag)
	assert.Equal(t, "Checkbox", cb.Text)
	assert.Equal(t, "auto", cb.Style["width"])
	assert.Equal(t, "none", cb.Style["border"])
	assert.True(t, cb.Attributes["class"].Has("checkbox"))

	sl, err := e.Create("slider", "")
	require.NoError(t, err)
	assert.Equal(t, "20px", sl.Style["height"])
	assert.True(t, sl.Attributes["class"].Has("slider"))
	assert.Equal(t, "0", sl.Attributes["data-min"].String())
	assert.Equal(t, "100", sl.Attributes["data-max"].String())

	cw, err := e.Create("customWidget", "")
	require.NoError(t, err)
	assert.Equal(t, "2px dashed #00ffff", cw.Style["border"])
}

func TestCreateInsideFreeParentOffsets(t *testing.T) {
	e := newTestEngine()
	box, err := e.Create("header", "")
	require.NoError(t, err)
	child, err := e.Create("button", box.ID)
	require.NoError(t, err)

	assert.Equal(t, "absolute", child.Style["position"])
	assert.Equal(t, reparentOffset, child.Style["left"])
	assert.Equal(t, reparentOffset, child.Style["top"])

	free, err := e.Create("button", "")
	require.NoError(t, err)
	assert.Equal(t, "50px", free.Style["left"], "root creation keeps the base offset")
}

func TestCreateUnknownParent(t *testing.T) {
	e := newTestEngine()
	_, err := e.Create("div", "element-7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateZIndexFollowsSiblingPosition(t *testing.T) {
	e := newTestEngine()
	div, _ := e.Create("div", "")
	a, _ := e.Create("button", div.ID)
	b, _ := e.Create("button", div.ID)
	assert.Equal(t, "1", a.Style["zIndex"])
	assert.Equal(t, "2", b.Style["zIndex"])
}

func TestDeleteRemovesSubtreeAndSnippets(t *testing.T) {
	e := newTestEngine()
	div, _ := e.Create("div", "")
	button, _ := e.Create("button", div.ID)
	p := e.Store().Project()
	p.ElementCSS[div.ID] = "border: none;"
	p.ElementCSS[button.ID] = "color: red;"

	require.True(t, e.Delete(div.ID))

	assert.Empty(t, p.Components)
	assert.Nil(t, e.Store().FindComponent(div.ID))
	assert.Nil(t, e.Store().FindComponent(button.ID))
	assert.NotContains(t, p.ElementCSS, div.ID)
	assert.NotContains(t, p.ElementCSS, button.ID, "descendant snippets are purged too")
	assert.NotContains(t, p.ElementJS, button.ID)
	assert.False(t, e.Delete(div.ID), "second delete of the same id is a no-op")
}

func TestReparentSelfIsNoOp(t *testing.T) {
	e := newTestEngine()
	div, _ := e.Create("div", "")
	require.NoError(t, e.Reparent(div.ID, div.ID))
	assert.Nil(t, e.Store().FindParent(div.ID))
}

func TestReparentIntoDescendantRejected(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("div", "")
	b, _ := e.Create("div", a.ID)
	c, _ := e.Create("div", b.ID)

	before, err := json.Marshal(e.Store().Project())
	require.NoError(t, err)

	assert.ErrorIs(t, e.Reparent(a.ID, c.ID), ErrIntoOwnSubtree)

	after, err := json.Marshal(e.Store().Project())
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after), "rejected reparent leaves the tree unchanged")
}

func TestReparentIntoFlexContainerNormalizes(t *testing.T) {
	e := newTestEngine()
	flex, _ := e.Create("div", "")
	free, _ := e.Create("header", "")
	box, _ := e.Create("button", "")
	box.Style["zIndex"] = "7"

	require.NoError(t, e.Reparent(box.ID, flex.ID))
	assert.Equal(t, "relative", box.Style["position"])
	assert.NotContains(t, box.Style, "left")
	assert.NotContains(t, box.Style, "top")
	assert.Equal(t, "7", box.Style["zIndex"], "z-index is left untouched")
	assert.Same(t, flex, e.Store().FindParent(box.ID))

	require.NoError(t, e.Reparent(box.ID, free.ID))
	assert.Equal(t, "absolute", box.Style["position"])
	assert.Equal(t, reparentOffset, box.Style["left"])
	assert.Equal(t, reparentOffset, box.Style["top"])
	require.Len(t, free.Children, 1)
	assert.Empty(t, flex.Children)
}

func TestReparentAppendsAsLastChild(t *testing.T) {
	e := newTestEngine()
	target, _ := e.Create("div", "")
	first, _ := e.Create("text", target.ID)
	moved, _ := e.Create("button", "")

	require.NoError(t, e.Reparent(moved.ID, target.ID))
	require.Len(t, target.Children, 2)
	assert.Same(t, first, target.Children[0])
	assert.Same(t, moved, target.Children[1])
}

func TestSetStyleDisplayFlexCascades(t *testing.T) {
	e := newTestEngine()
	box, _ := e.Create("header", "")
	a, _ := e.Create("button", box.ID)
	b, _ := e.Create("text", box.ID)
	require.Equal(t, "absolute", a.Style["position"])

	cascaded, err := e.SetStyle(box.ID, "display", "flex")
	require.NoError(t, err)
	assert.True(t, cascaded)
	for _, child := range []*model.Component{a, b} {
		assert.Equal(t, "relative", child.Style["position"])
		assert.NotContains(t, child.Style, "left")
		assert.NotContains(t, child.Style, "top")
	}
}

func TestSetStylePlainWriteDoesNotCascade(t *testing.T) {
	e := newTestEngine()
	box, _ := e.Create("div", "")
	cascaded, err := e.SetStyle(box.ID, "backgroundColor", "#123456")
	require.NoError(t, err)
	assert.False(t, cascaded)
	assert.Equal(t, "#123456", box.Style["backgroundColor"])

	cascaded, err = e.SetStyle(box.ID, "backgroundColor", "")
	require.NoError(t, err)
	assert.False(t, cascaded)
	assert.NotContains(t, box.Style, "backgroundColor")
}

func TestSetAttributeClassTokens(t *testing.T) {
	e := newTestEngine()
	box, _ := e.Create("div", "")
	require.NoError(t, e.SetAttribute(box.ID, "class", "card wide"))
	assert.Equal(t, model.Tokens("card", "wide"), box.Attributes["class"])

	require.NoError(t, e.SetAttribute(box.ID, "class", ""))
	assert.NotContains(t, box.Attributes, "class")
}
