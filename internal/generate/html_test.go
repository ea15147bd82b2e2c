package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagestudio/local-app/internal/document"
	"pagestudio/local-app/internal/model"
)

func newTestProject(t *testing.T) (*document.Engine, *model.Project) {
	t.Helper()
	store := document.NewStore(model.NewProject())
	return document.NewEngine(store, document.NewRegistry()), store.Project()
}

func TestBodyRendersTreeInline(t *testing.T) {
	e, p := newTestProject(t)
	row, err := e.Create("div", "")
	require.NoError(t, err)
	_, err = e.Create("button", row.ID)
	require.NoError(t, err)

	body := Body(p)
	assert.Contains(t, body, `id="`+row.ID+`"`)
	assert.Contains(t, body, "display: flex;")
	assert.Contains(t, body, ">Button</button>")
}

func TestBodySelfClosingAndVectorTags(t *testing.T) {
	e, p := newTestProject(t)
	img, err := e.Create("img", "")
	require.NoError(t, err)
	icon, err := e.Create("svg", "")
	require.NoError(t, err)
	icon.Text = "never emitted"

	body := Body(p)
	assert.NotContains(t, body, "</img>")
	assert.Contains(t, body, `alt=`)
	assert.Contains(t, body, "<path ")
	assert.Contains(t, body, "</svg>")
	assert.NotContains(t, body, "never emitted")
	_ = img
}

func TestBodyOrdersByZIndex(t *testing.T) {
	e, p := newTestProject(t)
	a, _ := e.Create("header", "")
	b, _ := e.Create("header", "")
	a.Style["zIndex"] = "9"
	b.Style["zIndex"] = "2"

	body := Body(p)
	assert.Less(t, strings.Index(body, b.ID), strings.Index(body, a.ID))
}

func TestStylesheetAppendsElementRules(t *testing.T) {
	_, p := newTestProject(t)
	p.GlobalCSS = "body { background: black; }"
	p.ElementCSS["element-2"] = "color: red;"
	p.ElementCSS["element-1"] = "color: blue;"
	p.ElementCSS["element-3"] = ""

	css := Stylesheet(p)
	assert.Contains(t, css, "body { background: black; }")
	assert.Contains(t, css, "#element-1 { color: blue; }")
	assert.Contains(t, css, "#element-2 { color: red; }")
	assert.NotContains(t, css, "element-3", "empty entries are skipped")
	assert.Less(t, strings.Index(css, "#element-1"), strings.Index(css, "#element-2"))
}

func TestScriptWrapsElementScripts(t *testing.T) {
	_, p := newTestProject(t)
	p.GlobalJS = "console.log('boot');"
	p.ElementJS["element-1"] = "el.onclick = () => {};"

	js := Script(p)
	assert.Contains(t, js, "console.log('boot');")
	assert.Contains(t, js, "DOMContentLoaded")
	assert.Contains(t, js, "getElementById('element-1')")
	assert.Contains(t, js, "try{")
	assert.Contains(t, js, "catch(e)")
}

func TestHTMLDocumentShape(t *testing.T) {
	e, p := newTestProject(t)
	_, err := e.Create("div", "")
	require.NoError(t, err)

	doc := HTML(p)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Exported Page</title>")
	assert.Contains(t, doc, "body { margin: 0; padding: 0; font-family: sans-serif; }")
	assert.Less(t, strings.Index(doc, "<style>"), strings.Index(doc, "<body>"))
	assert.Less(t, strings.Index(doc, "<body>"), strings.Index(doc, "<script>"))
}
