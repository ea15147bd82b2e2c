package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagestudio/local-app/internal/document"
	"pagestudio/local-app/internal/model"
)

func buildSampleTree(t *testing.T) (*document.Engine, *model.Component, *model.Component) {
	t.Helper()
	e := document.NewEngine(document.NewStore(model.NewProject()), document.NewRegistry())
	row, err := e.Create("div", "")
	require.NoError(t, err)
	button, err := e.Create("button", row.ID)
	require.NoError(t, err)
	return e, row, button
}

func TestCanvasProjectsStylesAndMarkers(t *testing.T) {
	e, row, button := buildSampleTree(t)

	out, err := CanvasHTML(e.Store().Project(), "")
	require.NoError(t, err)

	assert.Contains(t, out, `id="canvas"`)
	assert.Contains(t, out, `id="`+row.ID+`"`)
	assert.Contains(t, out, ClassFlexContainer)
	assert.Contains(t, out, ClassFlexItem)
	assert.Contains(t, out, "display: flex;")
	assert.Contains(t, out, `data-name="`+button.Name+`"`)
	assert.Contains(t, out, ">Button<", "inline text is projected")
	assert.NotContains(t, out, "resizer", "no resize affordance without a selection")
}

func TestCanvasResizerOnlyOnSelected(t *testing.T) {
	e, _, button := buildSampleTree(t)

	out, err := CanvasHTML(e.Store().Project(), button.ID)
	require.NoError(t, err)
	assert.Contains(t, out, ClassSelected)
	assert.Contains(t, out, `class="resizer br"`)

	other, err := CanvasHTML(e.Store().Project(), "element-42")
	require.NoError(t, err)
	assert.NotContains(t, other, "resizer", "dangling selection projects nothing")
}

func TestCanvasExpandsClassTokens(t *testing.T) {
	e, row, _ := buildSampleTree(t)
	row.Attributes = map[string]model.AttrValue{"class": model.Tokens("card", "wide")}

	out, err := CanvasHTML(e.Store().Project(), "")
	require.NoError(t, err)
	assert.Contains(t, out, ClassWrapper+" "+ClassFlexContainer+" card wide")
}

func TestCanvasOrdersSiblingsByZIndex(t *testing.T) {
	e := document.NewEngine(document.NewStore(model.NewProject()), document.NewRegistry())
	a, _ := e.Create("header", "")
	b, _ := e.Create("header", "")
	a.Style["zIndex"] = "5"
	b.Style["zIndex"] = "1"

	out, err := CanvasHTML(e.Store().Project(), "")
	require.NoError(t, err)
	assert.Less(t, indexOf(out, b.ID), indexOf(out, a.ID), "lower z-index renders first")
}

func TestCanvasRendersFlexChildrenInTreeOrder(t *testing.T) {
	e := document.NewEngine(document.NewStore(model.NewProject()), document.NewRegistry())
	row, err := e.Create("div", "")
	require.NoError(t, err)
	a, _ := e.Create("button", row.ID)
	b, _ := e.Create("button", row.ID)

	session, err := document.StartDrag(e, b.ID)
	require.NoError(t, err)
	require.NoError(t, session.Drop(row.ID, 0, 0))
	require.Equal(t, b.ID, row.Children[0].ID)
	assert.Equal(t, "2", b.Style["zIndex"], "reordering leaves z-index alone")

	out, err := CanvasHTML(e.Store().Project(), "")
	require.NoError(t, err)
	assert.Less(t, indexOf(out, `id="`+b.ID+`"`), indexOf(out, `id="`+a.ID+`"`),
		"reordered flex items render in tree order")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
