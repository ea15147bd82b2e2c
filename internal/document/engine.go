package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pagestudio/local-app/internal/model"
)

var (
	// ErrNotFound signals an id that resolves to no live component.
	ErrNotFound = errors.New("component not found")
	// ErrIntoOwnSubtree signals a reparent whose target is the moved
	// component or one of its descendants.
	ErrIntoOwnSubtree = errors.New("cannot move a component into its own subtree")
	// ErrNotFlexItem signals a reorder drag started on a component whose
	// parent is not a flex container.
	ErrNotFlexItem = errors.New("component is not a flex item")
	// ErrNoContainer signals a drop on a target that is not a flex container.
	ErrNoContainer = errors.New("drop target is not a flex container")
)

// reparentOffset is the default offset applied when a component moves into
// a free-positioned parent.
const reparentOffset = "10px"

// Engine performs all tree mutations. Every multi-step mutation completes
// within one call; callers never observe a half-moved tree.
type Engine struct {
	store    *Store
	registry *Registry
}

// NewEngine creates a mutation engine over a store using the given type
// registry for creation defaults.
func NewEngine(store *Store, registry *Registry) *Engine {
	return &Engine{store: store, registry: registry}
}

// Store returns the underlying component store.
func (e *Engine) Store() *Store {
	return e.store
}

// Registry returns the type defaults registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Create builds a component of the given type with type- and layout-aware
// defaults and appends it to the parent's children, or to the root sequence
// when parentID is empty. The z-index defaults to the 1-based position
// among the new siblings. Seed scripts land in the project's per-element JS.
func (e *Engine) Create(compType, parentID string) (*model.Component, error) {
	var parent *model.Component
	if parentID != "" {
		parent = e.store.FindComponent(parentID)
		if parent == nil {
			return nil, fmt.Errorf("parent %q: %w", parentID, ErrNotFound)
		}
	}
	isFlexChild := parent != nil && parent.IsFlexContainer()
	comp := e.build(compType, isFlexChild)

	if parent != nil {
		if !isFlexChild {
			comp.Style["left"] = reparentOffset
			comp.Style["top"] = reparentOffset
		}
		comp.Style["zIndex"] = strconv.Itoa(len(parent.Children) + 1)
		parent.Children = append(parent.Children, comp)
		e.store.attach(parent.ID, comp)
	} else {
		comp.Style["zIndex"] = strconv.Itoa(len(e.store.project.Components) + 1)
		e.store.project.Components = append(e.store.project.Components, comp)
		e.store.attach(rootID, comp)
	}
	return comp, nil
}

// build assembles a component and its seeded children from the registry
// blueprint, assigning fresh ids throughout.
func (e *Engine) build(compType string, isFlexChild bool) *model.Component {
	id := e.store.NextID()
	b := e.registry.Blueprint(compType, isFlexChild)

	comp := model.NewComponent(id, compType, b.Tag)
	comp.Name = fmt.Sprintf("%s-%s", compType, idNumber(id))
	comp.Style = b.Style
	comp.Text = b.Text
	if len(b.Attributes) > 0 {
		comp.Attributes = b.Attributes
	}
	if b.Script != "" {
		e.store.project.ElementJS[id] = b.Script
	}
	for i, childType := range b.ChildTypes {
		child := e.build(childType, comp.IsFlexContainer())
		child.Style["zIndex"] = strconv.Itoa(i + 1)
		comp.Children = append(comp.Children, child)
	}
	return comp
}

// idNumber extracts the numeric suffix of an "element-N" id.
func idNumber(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '-' {
			return id[i+1:]
		}
	}
	return id
}

// Delete removes the subtree rooted at id from its owning sequence and
// purges the per-element CSS/JS entries of every component in the subtree.
// It reports whether a removal occurred; deleting an unknown id is a no-op.
// Clearing a selection that referenced the deleted component is the
// caller's responsibility.
func (e *Engine) Delete(id string) bool {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return false
	}
	owner, parent := e.store.siblings(id)
	i := indexIn(owner, id)
	if i < 0 {
		return false
	}
	if parent != nil {
		parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
	} else {
		p := e.store.project
		p.Components = append(p.Components[:i], p.Components[i+1:]...)
	}
	e.store.detach(comp)
	comp.Walk(func(c *model.Component) bool {
		delete(e.store.project.ElementCSS, c.ID)
		delete(e.store.project.ElementJS, c.ID)
		return true
	})
	return true
}

// Reparent moves a component to become the last child of the target,
// implementing the hierarchy drop policy: dropping onto itself is a no-op
// and dropping onto a descendant is rejected with the tree unchanged. The
// moved component's positioning is normalized to the target's layout mode;
// no other style values are touched and ids are never renumbered.
func (e *Engine) Reparent(id, targetID string) error {
	if id == targetID {
		return nil
	}
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	target := e.store.FindComponent(targetID)
	if target == nil {
		return fmt.Errorf("target %q: %w", targetID, ErrNotFound)
	}
	if e.store.IsAncestor(id, targetID) {
		return ErrIntoOwnSubtree
	}

	e.spliceOut(id)
	target.Children = append(target.Children, comp)
	e.store.parent[id] = targetID

	if target.IsFlexContainer() {
		comp.Style["position"] = "relative"
		delete(comp.Style, "left")
		delete(comp.Style, "top")
	} else {
		comp.Style["position"] = "absolute"
		comp.Style["left"] = reparentOffset
		comp.Style["top"] = reparentOffset
	}
	return nil
}

// MoveToRoot moves a component out of its parent into the root sequence,
// restoring absolute positioning with the default offset.
func (e *Engine) MoveToRoot(id string) error {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	if e.store.FindParent(id) == nil {
		return nil
	}
	e.spliceOut(id)
	e.store.project.Components = append(e.store.project.Components, comp)
	e.store.parent[id] = rootID
	comp.Style["position"] = "absolute"
	comp.Style["left"] = reparentOffset
	comp.Style["top"] = reparentOffset
	return nil
}

// spliceOut removes a component from its owning sequence without touching
// its index entries beyond the parent link. Callers reinsert it in the same
// mutation.
func (e *Engine) spliceOut(id string) {
	owner, parent := e.store.siblings(id)
	i := indexIn(owner, id)
	if i < 0 {
		return
	}
	if parent != nil {
		parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
	} else {
		p := e.store.project
		p.Components = append(p.Components[:i], p.Components[i+1:]...)
	}
}

// SetStyle writes one style value. Turning a component into a flex
// container cascades to its direct children, which switch to relative
// positioning with explicit offsets cleared so they immediately become
// valid flex items. The return value reports whether the cascade ran,
// which callers use to decide between a patch and a full re-render.
func (e *Engine) SetStyle(id, key, value string) (cascaded bool, err error) {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return false, fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	if value == "" {
		delete(comp.Style, key)
	} else {
		comp.Style[key] = value
	}
	if key == "display" && value == "flex" {
		e.normalizeFlexChildren(comp)
		return true, nil
	}
	return false, nil
}

// normalizeFlexChildren makes every direct child a valid flex item.
func (e *Engine) normalizeFlexChildren(c *model.Component) {
	for _, child := range c.Children {
		child.Style["position"] = "relative"
		delete(child.Style, "left")
		delete(child.Style, "top")
	}
}

// SetText writes the inline text content of a component.
func (e *Engine) SetText(id, text string) error {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	comp.Text = text
	return nil
}

// SetName writes the human-readable label shown in the hierarchy.
func (e *Engine) SetName(id, name string) error {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	comp.Name = name
	return nil
}

// SetTag overrides the rendered element tag of a generic container.
func (e *Engine) SetTag(id, tag string) error {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	comp.Tag = tag
	return nil
}

// SetAttribute writes an attribute value; an empty value removes the
// attribute. The class attribute is stored as a token set.
func (e *Engine) SetAttribute(id, key, value string) error {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	if value == "" {
		delete(comp.Attributes, key)
		return nil
	}
	if comp.Attributes == nil {
		comp.Attributes = make(map[string]model.AttrValue)
	}
	if key == "class" {
		comp.Attributes[key] = model.Tokens(strings.Fields(value)...)
	} else {
		comp.Attributes[key] = model.Attr(value)
	}
	return nil
}

// SetInteraction writes one key of the reserved behavior mapping.
func (e *Engine) SetInteraction(id, key, value string) error {
	comp := e.store.FindComponent(id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	if value == "" {
		delete(comp.Interaction, key)
		return nil
	}
	if comp.Interaction == nil {
		comp.Interaction = make(map[string]string)
	}
	comp.Interaction[key] = value
	return nil
}
