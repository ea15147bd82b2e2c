package render

import (
	"fmt"

	"github.com/xlab/treeprint"

	"pagestudio/local-app/internal/model"
)

// typeIcons are the glyphs shown next to hierarchy entries, one per
// component type; unknown types fall back to the generic box.
var typeIcons = map[string]string{
	"div":     "[ ]",
	"text":    "[a]",
	"button":  "[b]",
	"img":     "[i]",
	"header":  "[^]",
	"footer":  "[_]",
	"content": "[=]",
	"svg":     "[*]",
	"path":    "[~]",
}

// Hierarchy projects the tree into a collapsible outline: one entry per
// component with a type icon and its name, the selected entry marked, and
// collapsed subtrees folded into a child count.
func Hierarchy(p *model.Project, selectedID string, collapsed map[string]bool) string {
	tree := treeprint.New()
	tree.SetValue("page")
	for _, c := range p.Components {
		addHierarchyEntry(tree, c, selectedID, collapsed)
	}
	return tree.String()
}

func addHierarchyEntry(branch treeprint.Tree, c *model.Component, selectedID string, collapsed map[string]bool) {
	label := fmt.Sprintf("%s %s", iconFor(c.Type), c.Name)
	if c.ID == selectedID {
		label += "  <selected>"
	}
	if len(c.Children) == 0 {
		branch.AddNode(label)
		return
	}
	if collapsed[c.ID] {
		branch.AddNode(fmt.Sprintf("%s (+%d)", label, countSubtree(c)-1))
		return
	}
	sub := branch.AddBranch(label)
	for _, child := range c.Children {
		addHierarchyEntry(sub, child, selectedID, collapsed)
	}
}

func iconFor(compType string) string {
	if icon, ok := typeIcons[compType]; ok {
		return icon
	}
	return "[ ]"
}

func countSubtree(c *model.Component) int {
	n := 0
	c.Walk(func(*model.Component) bool {
		n++
		return true
	})
	return n
}
