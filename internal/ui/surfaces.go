package ui

import (
	"fmt"

	"pagestudio/local-app/internal/layout"
	"pagestudio/local-app/internal/model"
	"pagestudio/local-app/internal/render"
)

// ShowCanvas prints the canvas projection of the tree.
func (u *UI) ShowCanvas(p *model.Project, selectedID string) {
	out, err := render.CanvasHTML(p, selectedID)
	if err != nil {
		u.Error(fmt.Sprintf("Failed to render canvas: %v", err))
		return
	}
	u.Println(out)
}

// ShowHierarchy prints the outline projection of the tree.
func (u *UI) ShowHierarchy(p *model.Project, selectedID string, collapsed map[string]bool) {
	u.Print(render.Hierarchy(p, selectedID, collapsed))
}

// ShowProperties prints the grouped properties form for the selected
// component.
func (u *UI) ShowProperties(c *model.Component, isFlexItem bool) {
	if c == nil {
		u.Info("Select an element to edit.")
		return
	}
	fields := render.Properties(c, isFlexItem)
	group := ""
	for _, f := range fields {
		if f.Group != group {
			group = f.Group
			u.PrintlnColored(group, ColorLightBlue)
		}
		u.Printf("  %-18s %s\n", f.Label, f.Value)
	}
}

// ShowPanels prints the workspace grid state.
func (u *UI) ShowPanels(c *layout.Controller) {
	for _, p := range []layout.Panel{layout.PanelElements, layout.PanelHierarchy, layout.PanelProperties} {
		state := "visible"
		if !c.Visible(p) {
			state = "hidden"
		}
		width, err := c.Width(p)
		if err != nil {
			continue
		}
		u.Printf("  %-12s %-8s %gpx\n", p, state, width)
	}
	u.Printf("  columns: %s\n", c.GridTemplateColumns())
	u.Printf("  rows:    %s\n", c.GridTemplateRows())
}
