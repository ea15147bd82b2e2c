package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGridTemplate(t *testing.T) {
	c := NewController()
	assert.Equal(t, "224px 5px 288px 5px 1fr 5px 384px", c.GridTemplateColumns())
	assert.Equal(t, "1fr 5px 33%", c.GridTemplateRows())
}

func TestToggleCollapsesPanelAndResizer(t *testing.T) {
	c := NewController()

	visible, err := c.Toggle(PanelHierarchy)
	require.NoError(t, err)
	assert.False(t, visible)
	assert.Equal(t, "224px 5px 0px 0px 1fr 5px 384px", c.GridTemplateColumns())

	visible, err = c.Toggle(PanelHierarchy)
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, "224px 5px 288px 5px 1fr 5px 384px", c.GridTemplateColumns())
}

func TestTogglePropertiesCollapsesRightColumns(t *testing.T) {
	c := NewController()
	_, err := c.Toggle(PanelProperties)
	require.NoError(t, err)
	assert.Equal(t, "224px 5px 288px 5px 1fr 0px 0px", c.GridTemplateColumns())
}

func TestResizeDirections(t *testing.T) {
	c := NewController()

	require.NoError(t, c.Resize(PanelElements, 40))
	w, err := c.Width(PanelElements)
	require.NoError(t, err)
	assert.Equal(t, 264.0, w)

	// The properties edge is dragged from the left, so moving left grows it.
	require.NoError(t, c.Resize(PanelProperties, -50))
	w, err = c.Width(PanelProperties)
	require.NoError(t, err)
	assert.Equal(t, 434.0, w)

	assert.Equal(t, "264px 5px 288px 5px 1fr 5px 434px", c.GridTemplateColumns())
}

func TestResizeClampsAtZero(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Resize(PanelHierarchy, -1000))
	w, err := c.Width(PanelHierarchy)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)
}

func TestHiddenPanelKeepsStoredWidth(t *testing.T) {
	c := NewController()
	_, err := c.Toggle(PanelElements)
	require.NoError(t, err)
	require.NoError(t, c.Resize(PanelElements, 16))

	assert.Equal(t, "0px 0px 288px 5px 1fr 5px 384px", c.GridTemplateColumns())

	_, err = c.Toggle(PanelElements)
	require.NoError(t, err)
	assert.Equal(t, "240px 5px 288px 5px 1fr 5px 384px", c.GridTemplateColumns())
}

func TestResizeEditorsSplit(t *testing.T) {
	c := NewController()
	c.ResizeEditors(480)
	assert.Equal(t, "480px 5px 1fr", c.GridTemplateRows())
	c.ResizeEditors(-10)
	assert.Equal(t, "0px 5px 1fr", c.GridTemplateRows())
}

func TestUnknownPanel(t *testing.T) {
	c := NewController()
	_, err := c.Toggle(Panel("toolbar"))
	assert.Error(t, err)
	assert.Error(t, c.Resize(Panel("toolbar"), 5))
	_, err = c.Width(Panel("toolbar"))
	assert.Error(t, err)
}
