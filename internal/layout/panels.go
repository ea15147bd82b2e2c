// Package layout tracks the sizing and visibility of the side panels and
// the canvas/editors split. It is independent of the component tree; its
// only output is the grid template the shell applies to the workspace.
package layout

import (
	"fmt"
	"strings"
)

// Panel identifies one of the three side panels around the canvas.
type Panel string

const (
	PanelElements   Panel = "elements"
	PanelHierarchy  Panel = "hierarchy"
	PanelProperties Panel = "properties"
)

const (
	defaultElementsWidth   = 224.0
	defaultHierarchyWidth  = 288.0
	defaultPropertiesWidth = 384.0

	resizerSpan = "5px"

	// Editors pane takes a third of the canvas column until resized.
	defaultEditorsSplit = "1fr 5px 33%"
)

// Controller holds the current panel widths, panel visibility and the
// vertical split between canvas and code editors.
type Controller struct {
	widths  map[Panel]float64
	visible map[Panel]bool

	canvasHeight float64
	splitMoved   bool
}

// NewController returns a controller with every panel visible at its
// default width.
func NewController() *Controller {
	return &Controller{
		widths: map[Panel]float64{
			PanelElements:   defaultElementsWidth,
			PanelHierarchy:  defaultHierarchyWidth,
			PanelProperties: defaultPropertiesWidth,
		},
		visible: map[Panel]bool{
			PanelElements:   true,
			PanelHierarchy:  true,
			PanelProperties: true,
		},
	}
}

// Width returns the stored width of a panel, whether or not it is visible.
func (c *Controller) Width(p Panel) (float64, error) {
	w, ok := c.widths[p]
	if !ok {
		return 0, fmt.Errorf("unknown panel %q", p)
	}
	return w, nil
}

// Visible reports whether a panel currently occupies its grid columns.
func (c *Controller) Visible(p Panel) bool {
	return c.visible[p]
}

// Resize moves a panel's edge by dx pixels. The elements and hierarchy
// panels grow to the right; the properties panel hangs off the right edge,
// so dragging its edge left (negative dx) grows it. Hidden panels keep
// their stored width and resize under the covers. Widths never go
// negative.
func (c *Controller) Resize(p Panel, dx float64) error {
	w, ok := c.widths[p]
	if !ok {
		return fmt.Errorf("unknown panel %q", p)
	}
	if p == PanelProperties {
		w -= dx
	} else {
		w += dx
	}
	if w < 0 {
		w = 0
	}
	c.widths[p] = w
	return nil
}

// Toggle flips a panel's visibility and reports the new state.
func (c *Controller) Toggle(p Panel) (bool, error) {
	if _, ok := c.visible[p]; !ok {
		return false, fmt.Errorf("unknown panel %q", p)
	}
	c.visible[p] = !c.visible[p]
	return c.visible[p], nil
}

// ResizeEditors moves the horizontal split so the canvas pane is height
// pixels tall; the editors pane absorbs the remainder.
func (c *Controller) ResizeEditors(height float64) {
	if height < 0 {
		height = 0
	}
	c.canvasHeight = height
	c.splitMoved = true
}

// GridTemplateColumns renders the seven-column workspace template:
// elements, resizer, hierarchy, resizer, canvas, resizer, properties.
// Hidden panels collapse to 0px together with their resizer; the canvas
// column always flexes.
func (c *Controller) GridTemplateColumns() string {
	cols := []string{
		c.col(PanelElements, c.px(PanelElements)),
		c.col(PanelElements, resizerSpan),
		c.col(PanelHierarchy, c.px(PanelHierarchy)),
		c.col(PanelHierarchy, resizerSpan),
		"1fr",
		c.col(PanelProperties, resizerSpan),
		c.col(PanelProperties, c.px(PanelProperties)),
	}
	return strings.Join(cols, " ")
}

// GridTemplateRows renders the canvas column's vertical split between the
// canvas pane and the code editors.
func (c *Controller) GridTemplateRows() string {
	if !c.splitMoved {
		return defaultEditorsSplit
	}
	return fmt.Sprintf("%s 5px 1fr", formatPx(c.canvasHeight))
}

func (c *Controller) col(p Panel, span string) string {
	if !c.visible[p] {
		return "0px"
	}
	return span
}

func (c *Controller) px(p Panel) string {
	return formatPx(c.widths[p])
}

func formatPx(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
