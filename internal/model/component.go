// Package model defines the data structures shared across the Page Studio
// application: the component tree, the project aggregate and the host API
// result envelope. The JSON field names mirror the project file format.
package model

// Component is a single node of the page tree. Children are owned
// exclusively by their parent; parent lookup is derived, never stored here.
type Component struct {
	ID          string               `json:"id"`
	Type        string               `json:"type"`
	Tag         string               `json:"tag"`
	Name        string               `json:"name"`
	Children    []*Component         `json:"children"`
	Style       map[string]string    `json:"style"`
	Text        string               `json:"text,omitempty"`
	Attributes  map[string]AttrValue `json:"attributes,omitempty"`
	Interaction map[string]string    `json:"interaction,omitempty"`
	Attachments []string             `json:"attachments,omitempty"`
}

// NewComponent creates a component with initialized collections.
func NewComponent(id, compType, tag string) *Component {
	return &Component{
		ID:       id,
		Type:     compType,
		Tag:      tag,
		Name:     id,
		Children: make([]*Component, 0),
		Style:    make(map[string]string),
	}
}

// IsFlexContainer reports whether the component lays out its direct
// children along a flex axis.
func (c *Component) IsFlexContainer() bool {
	return c.Style["display"] == "flex"
}

// FlexDirection returns the flex axis of a container, defaulting to "row"
// when unset, matching the CSS default.
func (c *Component) FlexDirection() string {
	if d := c.Style["flexDirection"]; d != "" {
		return d
	}
	return "row"
}

// Walk visits the component and its subtree in pre-order. Returning false
// from fn stops the traversal.
func (c *Component) Walk(fn func(*Component) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the component and its subtree.
func (c *Component) Clone() *Component {
	dup := &Component{
		ID:   c.ID,
		Type: c.Type,
		Tag:  c.Tag,
		Name: c.Name,
		Text: c.Text,
	}
	dup.Children = make([]*Component, len(c.Children))
	for i, child := range c.Children {
		dup.Children[i] = child.Clone()
	}
	if c.Style != nil {
		dup.Style = make(map[string]string, len(c.Style))
		for k, v := range c.Style {
			dup.Style[k] = v
		}
	}
	if c.Attributes != nil {
		dup.Attributes = make(map[string]AttrValue, len(c.Attributes))
		for k, v := range c.Attributes {
			dup.Attributes[k] = append(AttrValue(nil), v...)
		}
	}
	if c.Interaction != nil {
		dup.Interaction = make(map[string]string, len(c.Interaction))
		for k, v := range c.Interaction {
			dup.Interaction[k] = v
		}
	}
	if c.Attachments != nil {
		dup.Attachments = append([]string(nil), c.Attachments...)
	}
	return dup
}
