package document

import (
	"fmt"
	"strconv"
	"strings"

	"pagestudio/local-app/internal/model"
)

// fallbackSpan is the assumed extent of a flex item whose style carries no
// usable pixel value along the container axis.
const fallbackSpan = 100.0

// DragSession is the transient state of one flex-item reorder gesture. It
// is constructed at gesture start, performs at most one mutation on drop
// and is dead afterwards; a cancelled or invalid drop changes nothing.
type DragSession struct {
	engine *Engine
	id     string
	done   bool
}

// StartDrag begins a reorder gesture. Only flex items are draggable for
// in-place reordering; anything else is rejected.
func StartDrag(engine *Engine, id string) (*DragSession, error) {
	comp := engine.store.FindComponent(id)
	if comp == nil {
		return nil, fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	if !engine.store.IsFlexItem(id) {
		return nil, ErrNotFlexItem
	}
	return &DragSession{engine: engine, id: id}, nil
}

// ComponentID returns the id of the dragged component.
func (s *DragSession) ComponentID() string {
	return s.id
}

// Done reports whether the session has ended.
func (s *DragSession) Done() bool {
	return s.done
}

// Cancel ends the session without mutating the tree.
func (s *DragSession) Cancel() {
	s.done = true
}

// Drop commits the gesture: the dragged component is spliced out of its old
// parent and into the container at the position resolved from the cursor
// coordinates, in one atomic step. Positioning styles are left untouched.
// An invalid target ends the session with the tree unchanged.
func (s *DragSession) Drop(containerID string, x, y float64) error {
	if s.done {
		return fmt.Errorf("drag session already ended")
	}
	s.done = true

	store := s.engine.store
	comp := store.FindComponent(s.id)
	if comp == nil {
		return fmt.Errorf("component %q: %w", s.id, ErrNotFound)
	}
	container := store.FindComponent(containerID)
	if container == nil {
		return fmt.Errorf("container %q: %w", containerID, ErrNotFound)
	}
	if !container.IsFlexContainer() {
		return ErrNoContainer
	}
	if containerID == s.id || store.IsAncestor(s.id, containerID) {
		return ErrIntoOwnSubtree
	}

	siblings := make([]*model.Component, 0, len(container.Children))
	for _, c := range container.Children {
		if c.ID != s.id {
			siblings = append(siblings, c)
		}
	}
	index := ResolveDropIndex(container.FlexDirection(), siblings, x, y)

	s.engine.spliceOut(s.id)
	container.Children = append(container.Children, nil)
	copy(container.Children[index+1:], container.Children[index:])
	container.Children[index] = comp
	store.parent[s.id] = containerID
	return nil
}

// ResolveDropIndex decides where the cursor lands among the container's
// children: for column-direction containers the cursor Y is compared
// against each child's vertical midpoint, for row-direction the cursor X
// against horizontal midpoints. No hovered sibling means append.
func ResolveDropIndex(direction string, children []*model.Component, x, y float64) int {
	column := strings.HasPrefix(direction, "column")
	cursor := x
	if column {
		cursor = y
	}
	offset := 0.0
	for i, child := range children {
		span := styleSpan(child, column)
		if cursor < offset+span/2 {
			return i
		}
		offset += span
	}
	return len(children)
}

// styleSpan reads a child's extent along the container axis from its style,
// falling back to a fixed span when the value is missing or non-numeric.
func styleSpan(c *model.Component, column bool) float64 {
	key := "width"
	if column {
		key = "height"
	}
	v := strings.TrimSuffix(strings.TrimSpace(c.Style[key]), "px")
	span, err := strconv.ParseFloat(v, 64)
	if err != nil || span <= 0 {
		return fallbackSpan
	}
	return span
}
