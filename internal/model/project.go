package model

import (
	"strconv"
	"strings"
)

// Project is the root aggregate: the whole component tree plus the
// document-wide and per-element CSS/JS text. NextID is persisted so ids
// stay unique across save/load cycles.
type Project struct {
	Components     []*Component      `json:"components"`
	GlobalCSS      string            `json:"globalCss"`
	GlobalJS       string            `json:"globalJs"`
	ElementCSS     map[string]string `json:"elementCss"`
	ElementJS      map[string]string `json:"elementJs"`
	GlobalSettings map[string]string `json:"globalSettings"`
	NextID         int               `json:"nextId"`
}

// NewProject creates an empty project with initialized collections and the
// id counter at its starting value.
func NewProject() *Project {
	return &Project{
		Components:     make([]*Component, 0),
		ElementCSS:     make(map[string]string),
		ElementJS:      make(map[string]string),
		GlobalSettings: make(map[string]string),
		NextID:         1,
	}
}

// Normalize ensures all optional collections are non-nil and the id counter
// is past every numeric id suffix present in the tree. Called after
// unmarshaling project data from an external source.
func (p *Project) Normalize() {
	if p.Components == nil {
		p.Components = make([]*Component, 0)
	}
	if p.ElementCSS == nil {
		p.ElementCSS = make(map[string]string)
	}
	if p.ElementJS == nil {
		p.ElementJS = make(map[string]string)
	}
	if p.GlobalSettings == nil {
		p.GlobalSettings = make(map[string]string)
	}
	if p.NextID < 1 {
		p.NextID = 1
	}
	p.Walk(func(c *Component) bool {
		if n, ok := idSuffix(c.ID); ok && n >= p.NextID {
			p.NextID = n + 1
		}
		return true
	})
}

// idSuffix extracts the numeric suffix of an "element-N" style id.
func idSuffix(id string) (int, bool) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Walk visits every component in the project in pre-order.
func (p *Project) Walk(fn func(*Component) bool) {
	for _, c := range p.Components {
		if !c.Walk(fn) {
			return
		}
	}
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	dup := NewProject()
	dup.GlobalCSS = p.GlobalCSS
	dup.GlobalJS = p.GlobalJS
	dup.NextID = p.NextID
	for _, c := range p.Components {
		dup.Components = append(dup.Components, c.Clone())
	}
	for k, v := range p.ElementCSS {
		dup.ElementCSS[k] = v
	}
	for k, v := range p.ElementJS {
		dup.ElementJS[k] = v
	}
	for k, v := range p.GlobalSettings {
		dup.GlobalSettings[k] = v
	}
	return dup
}
