// Package document implements the page tree core: the component store with
// its id indexes, the per-type default registry, the mutation engine and
// the drag session used for flex-item reordering.
package document

import (
	"fmt"

	"pagestudio/local-app/internal/model"
)

// rootID is the sentinel parent id for top-level components.
const rootID = ""

// Store owns a project and keeps two indexes over its tree: id to component
// and id to parent id. The indexes make parent lookup and ancestor checks
// cheap instead of repeated full-tree scans; they are rebuilt on wholesale
// replacement and maintained incrementally by the mutation engine.
type Store struct {
	project *model.Project
	byID    map[string]*model.Component
	parent  map[string]string
}

// NewStore wraps a project and builds its indexes.
func NewStore(project *model.Project) *Store {
	s := &Store{project: project}
	s.Reindex()
	return s
}

// Project returns the underlying project aggregate.
func (s *Store) Project() *model.Project {
	return s.project
}

// Replace swaps in a new project wholesale, e.g. after an import or load.
func (s *Store) Replace(project *model.Project) {
	project.Normalize()
	s.project = project
	s.Reindex()
}

// Reindex rebuilds both indexes with a pre-order traversal. With duplicate
// ids (a contract violation) the first component in pre-order wins, the
// same answer a naive tree scan would give.
func (s *Store) Reindex() {
	s.byID = make(map[string]*model.Component)
	s.parent = make(map[string]string)
	var index func(parent string, comps []*model.Component)
	index = func(parent string, comps []*model.Component) {
		for _, c := range comps {
			if _, seen := s.byID[c.ID]; !seen {
				s.byID[c.ID] = c
				s.parent[c.ID] = parent
			}
			index(c.ID, c.Children)
		}
	}
	index(rootID, s.project.Components)
}

// FindComponent returns the component with the given id, or nil.
func (s *Store) FindComponent(id string) *model.Component {
	return s.byID[id]
}

// FindParent returns the parent of the component with the given id. Nil
// means the component is top-level or does not exist.
func (s *Store) FindParent(id string) *model.Component {
	parentID, ok := s.parent[id]
	if !ok || parentID == rootID {
		return nil
	}
	return s.byID[parentID]
}

// IsAncestor reports whether ancestorID is on the parent chain of id.
// The walk is bounded by tree depth.
func (s *Store) IsAncestor(ancestorID, id string) bool {
	for cur, ok := s.parent[id]; ok && cur != rootID; cur, ok = s.parent[cur] {
		if cur == ancestorID {
			return true
		}
	}
	return false
}

// NextID issues a fresh component id. The counter is strictly increasing
// and never reused, including across save/load cycles.
func (s *Store) NextID() string {
	id := fmt.Sprintf("element-%d", s.project.NextID)
	s.project.NextID++
	return id
}

// IsFlexItem reports whether the component's parent is a flex container.
// Top-level components are never flex items.
func (s *Store) IsFlexItem(id string) bool {
	parent := s.FindParent(id)
	return parent != nil && parent.IsFlexContainer()
}

// siblings returns the slice owning the component with the given id: the
// parent's children, or the root sequence for top-level components. The
// second return is the owning parent (nil for root).
func (s *Store) siblings(id string) ([]*model.Component, *model.Component) {
	parent := s.FindParent(id)
	if parent != nil {
		return parent.Children, parent
	}
	if _, ok := s.parent[id]; !ok {
		return nil, nil
	}
	return s.project.Components, nil
}

// indexIn returns the position of id within comps, or -1.
func indexIn(comps []*model.Component, id string) int {
	for i, c := range comps {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// attach records index entries for a component subtree under parentID.
func (s *Store) attach(parentID string, c *model.Component) {
	s.byID[c.ID] = c
	s.parent[c.ID] = parentID
	for _, child := range c.Children {
		s.attach(c.ID, child)
	}
}

// detach removes index entries for a component subtree.
func (s *Store) detach(c *model.Component) {
	delete(s.byID, c.ID)
	delete(s.parent, c.ID)
	for _, child := range c.Children {
		s.detach(child)
	}
}
