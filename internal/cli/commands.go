package cli

import (
	"fmt"
	"strconv"

	"pagestudio/local-app/internal/api"
	"pagestudio/local-app/internal/layout"
	"pagestudio/local-app/internal/model"
	"pagestudio/local-app/internal/render"
)

// target resolves the component an edit applies to: an explicit id
// argument when present, the selection otherwise.
func (c *CLI) target(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	if selected := c.Editor.Selected(); selected != "" {
		return selected, nil
	}
	return "", fmt.Errorf("no component selected")
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (c *CLI) handleAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: add <type> [parent-id]")
	}
	created, err := c.Editor.Create(args[0], optional(args, 1))
	if err != nil {
		return err
	}
	c.UI.Success(fmt.Sprintf("Added %s '%s'", created.Type, created.ID))
	return nil
}

func (c *CLI) handleDelete(args []string) error {
	id, err := c.target(optional(args, 0))
	if err != nil {
		return err
	}
	if err := c.Editor.Delete(id); err != nil {
		return err
	}
	c.UI.Success(fmt.Sprintf("Deleted '%s'", id))
	return nil
}

func (c *CLI) handleMove(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: move <id> <target-id|root>")
	}
	targetID := args[1]
	if targetID == "root" {
		targetID = ""
	}
	if err := c.Editor.Reparent(args[0], targetID); err != nil {
		return err
	}
	c.UI.Success(fmt.Sprintf("Moved '%s'", args[0]))
	return nil
}

func (c *CLI) handleReorder(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: reorder <id> <container-id> <x> <y>")
	}
	x, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid x coordinate: %s", args[2])
	}
	y, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid y coordinate: %s", args[3])
	}
	if err := c.Editor.StartDrag(args[0]); err != nil {
		return err
	}
	if err := c.Editor.Drop(args[1], x, y); err != nil {
		c.Editor.CancelDrag()
		return err
	}
	c.UI.Success(fmt.Sprintf("Reordered '%s'", args[0]))
	return nil
}

func (c *CLI) handleSelect(args []string) error {
	id := optional(args, 0)
	if id == "none" {
		id = ""
	}
	c.Editor.Select(id)
	if selected := c.Editor.Selected(); selected != "" {
		c.UI.Info(fmt.Sprintf("Selected '%s'", selected))
	} else {
		c.UI.Info("Selection cleared")
	}
	return nil
}

func (c *CLI) handleSet(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <style-key> <value> [id]")
	}
	id, err := c.target(optional(args, 2))
	if err != nil {
		return err
	}
	cascaded, err := c.Editor.SetStyle(id, args[0], args[1])
	if err != nil {
		return err
	}
	if cascaded {
		c.UI.Success(fmt.Sprintf("Set %s on '%s' (children normalized)", args[0], id))
	} else {
		c.UI.Success(fmt.Sprintf("Set %s on '%s'", args[0], id))
	}
	return nil
}

func (c *CLI) handleCorner(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: corner <tl|tr|br|bl> <value> [id]")
	}
	id, err := c.target(optional(args, 2))
	if err != nil {
		return err
	}
	comp := c.Editor.Store().FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component '%s' not found", id)
	}
	radius := render.ApplyCorner(comp.Style["borderRadius"], args[0], args[1])
	if _, err := c.Editor.SetStyle(id, "borderRadius", radius); err != nil {
		return err
	}
	c.UI.Success(fmt.Sprintf("Set border radius of '%s' to %s", id, radius))
	return nil
}

func (c *CLI) handleName(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: name <value> [id]")
	}
	id, err := c.target(optional(args, 1))
	if err != nil {
		return err
	}
	return c.Editor.SetName(id, args[0])
}

func (c *CLI) handleText(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: text <value> [id]")
	}
	id, err := c.target(optional(args, 1))
	if err != nil {
		return err
	}
	return c.Editor.SetText(id, args[0])
}

func (c *CLI) handleTag(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tag <value> [id]")
	}
	id, err := c.target(optional(args, 1))
	if err != nil {
		return err
	}
	return c.Editor.SetTag(id, args[0])
}

func (c *CLI) handleAttr(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: attr <key> <value> [id]")
	}
	id, err := c.target(optional(args, 2))
	if err != nil {
		return err
	}
	return c.Editor.SetAttribute(id, args[0], args[1])
}

func (c *CLI) handleKey(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: key <openKey|useMasterKey> <value> [id]")
	}
	id, err := c.target(optional(args, 2))
	if err != nil {
		return err
	}
	return c.Editor.SetInteraction(id, args[0], args[1])
}

func (c *CLI) handleMaster(args []string) error {
	c.Editor.SetGlobalSetting("masterKey", optional(args, 0))
	if len(args) == 0 {
		c.UI.Info("Master key cleared")
	} else {
		c.UI.Success(fmt.Sprintf("Master key set to %s", args[0]))
	}
	return nil
}

func (c *CLI) handleCSS(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: css <global|id> <text>")
	}
	if args[0] == "global" {
		c.Editor.SetGlobalCSS(args[1])
		c.UI.Success("Global CSS updated")
		return nil
	}
	if err := c.Editor.SetElementCSS(args[0], args[1]); err != nil {
		return err
	}
	c.UI.Success(fmt.Sprintf("CSS for '%s' updated", args[0]))
	return nil
}

func (c *CLI) handleJS(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: js <global|id> <text>")
	}
	if args[0] == "global" {
		c.Editor.SetGlobalJS(args[1])
		c.UI.Success("Global JS updated")
		return nil
	}
	if err := c.Editor.SetElementJS(args[0], args[1]); err != nil {
		return err
	}
	c.UI.Success(fmt.Sprintf("JS for '%s' updated", args[0]))
	return nil
}

func (c *CLI) handleCollapse(args []string) error {
	id, err := c.target(optional(args, 0))
	if err != nil {
		return err
	}
	c.Editor.ToggleCollapse(id)
	return nil
}

func (c *CLI) handleShow(args []string) error {
	c.UI.ShowCanvas(c.Editor.Project(), c.Editor.Selected())
	return nil
}

func (c *CLI) handleTree(args []string) error {
	c.UI.ShowHierarchy(c.Editor.Project(), c.Editor.Selected(), c.Editor.Collapsed())
	return nil
}

func (c *CLI) handleProps(args []string) error {
	id := optional(args, 0)
	if id == "" {
		id = c.Editor.Selected()
	}
	comp := c.Editor.Store().FindComponent(id)
	c.UI.ShowProperties(comp, c.Editor.Store().IsFlexItem(id))
	return nil
}

func (c *CLI) handlePanels(args []string) error {
	if len(args) == 0 {
		c.UI.ShowPanels(c.Layout)
		return nil
	}
	switch args[0] {
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("usage: panels toggle <elements|hierarchy|properties>")
		}
		visible, err := c.Layout.Toggle(layout.Panel(args[1]))
		if err != nil {
			return err
		}
		if visible {
			c.UI.Info(fmt.Sprintf("Panel %s shown", args[1]))
		} else {
			c.UI.Info(fmt.Sprintf("Panel %s hidden", args[1]))
		}
	case "resize":
		if len(args) < 3 {
			return fmt.Errorf("usage: panels resize <panel> <dx>")
		}
		dx, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid delta: %s", args[2])
		}
		if err := c.Layout.Resize(layout.Panel(args[1]), dx); err != nil {
			return err
		}
	case "split":
		if len(args) < 2 {
			return fmt.Errorf("usage: panels split <canvas-height>")
		}
		height, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid height: %s", args[1])
		}
		c.Layout.ResizeEditors(height)
	default:
		return fmt.Errorf("unknown panels subcommand: %s", args[0])
	}
	c.UI.ShowPanels(c.Layout)
	return nil
}

func (c *CLI) handleUndo(args []string) error {
	if err := c.Editor.Undo(); err != nil {
		return err
	}
	c.UI.Info("Undone")
	return nil
}

func (c *CLI) handleRedo(args []string) error {
	if err := c.Editor.Redo(); err != nil {
		return err
	}
	c.UI.Info("Redone")
	return nil
}

// report surfaces a host API result with the right severity.
func (c *CLI) report(res model.Result) error {
	switch res.Status {
	case model.StatusSuccess:
		c.UI.Success(res.Message)
	case model.StatusInfo:
		c.UI.Info(res.Message)
	default:
		return fmt.Errorf("%s", res.Message)
	}
	return nil
}

func (c *CLI) handleExport(args []string) error {
	return c.report(api.ExportHTML(c.Editor.Project(), optional(args, 0)))
}

func (c *CLI) handleLua(args []string) error {
	return c.report(api.SaveLua(c.Editor.Project(), optional(args, 0)))
}

func (c *CLI) handleImport(args []string) error {
	res := api.ImportHTML(optional(args, 0))
	if res.OK() && res.Data != nil {
		c.Editor.ReplaceProject(res.Data)
	}
	return c.report(res)
}

func (c *CLI) handleSave(args []string) error {
	return c.report(api.SaveProject(c.Editor.Project(), optional(args, 0)))
}

func (c *CLI) handleLoad(args []string) error {
	res := api.LoadProject(optional(args, 0))
	if res.OK() && res.Data != nil {
		c.Editor.ReplaceProject(res.Data)
	}
	return c.report(res)
}

func (c *CLI) handleProject(args []string) error {
	if c.Store == nil {
		return fmt.Errorf("project store is not available")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: project <save|load|list|del|protect> ...")
	}
	switch args[0] {
	case "save":
		if len(args) < 2 {
			return fmt.Errorf("usage: project save <name>")
		}
		if err := c.Store.ProjectSave(args[1], c.Editor.Project()); err != nil {
			return err
		}
		c.project = args[1]
		c.UI.Success(fmt.Sprintf("Project '%s' saved", args[1]))
	case "load":
		if len(args) < 2 {
			return fmt.Errorf("usage: project load <name> [password]")
		}
		p, err := c.Store.ProjectLoad(args[1], optional(args, 2))
		if err != nil {
			return err
		}
		c.Editor.ReplaceProject(p)
		c.project = args[1]
		c.UI.Success(fmt.Sprintf("Project '%s' loaded", args[1]))
	case "list":
		infos, err := c.Store.ProjectList()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			c.UI.Info("No projects stored")
			return nil
		}
		for _, info := range infos {
			mark := " "
			if info.Protected {
				mark = "*"
			}
			c.UI.Printf("  %s %-24s %s\n", mark, info.Name, info.UpdatedAt.Format("2006-01-02 15:04"))
		}
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: project del <name>")
		}
		if err := c.Store.ProjectDelete(args[1]); err != nil {
			return err
		}
		c.UI.Success(fmt.Sprintf("Project '%s' deleted", args[1]))
	case "protect":
		if len(args) < 2 {
			return fmt.Errorf("usage: project protect <name> [password]")
		}
		if err := c.Store.ProjectProtect(args[1], optional(args, 2)); err != nil {
			return err
		}
		if optional(args, 2) == "" {
			c.UI.Info(fmt.Sprintf("Protection removed from '%s'", args[1]))
		} else {
			c.UI.Success(fmt.Sprintf("Project '%s' protected", args[1]))
		}
	default:
		return fmt.Errorf("unknown project subcommand: %s", args[0])
	}
	return nil
}

func (c *CLI) handleHelp(args []string) error {
	c.printHelp(optional(args, 0))
	return nil
}
