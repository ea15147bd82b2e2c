package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagestudio/local-app/internal/model"
)

func newTestEngine() *Engine {
	return NewEngine(NewStore(model.NewProject()), NewRegistry())
}

func TestNextIDMonotonic(t *testing.T) {
	s := NewStore(model.NewProject())
	assert.Equal(t, "element-1", s.NextID())
	assert.Equal(t, "element-2", s.NextID())
	assert.Equal(t, 3, s.Project().NextID)
}

func TestNextIDSurvivesReplace(t *testing.T) {
	s := NewStore(model.NewProject())
	s.NextID()
	s.NextID()

	loaded := model.NewProject()
	loaded.NextID = 41
	s.Replace(loaded)
	assert.Equal(t, "element-41", s.NextID())
}

func TestFindComponentAndParent(t *testing.T) {
	e := newTestEngine()
	parent, err := e.Create("div", "")
	require.NoError(t, err)
	child, err := e.Create("button", parent.ID)
	require.NoError(t, err)

	assert.Same(t, child, e.Store().FindComponent(child.ID))
	assert.Same(t, parent, e.Store().FindParent(child.ID))
	assert.Nil(t, e.Store().FindParent(parent.ID), "top-level component has no parent")
	assert.Nil(t, e.Store().FindComponent("element-99"))
	assert.Nil(t, e.Store().FindParent("element-99"))
}

func TestIsAncestor(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Create("div", "")
	b, _ := e.Create("div", a.ID)
	c, _ := e.Create("text", b.ID)

	assert.True(t, e.Store().IsAncestor(a.ID, c.ID))
	assert.True(t, e.Store().IsAncestor(b.ID, c.ID))
	assert.False(t, e.Store().IsAncestor(c.ID, a.ID))
	assert.False(t, e.Store().IsAncestor(c.ID, c.ID))
}

func TestReindexPreOrderFirstMatchWins(t *testing.T) {
	p := model.NewProject()
	first := model.NewComponent("element-1", "div", "div")
	dup := model.NewComponent("element-1", "text", "p")
	p.Components = []*model.Component{first, dup}

	s := NewStore(p)
	assert.Same(t, first, s.FindComponent("element-1"))
}
