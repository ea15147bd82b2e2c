package editor

import (
	"fmt"

	"pagestudio/local-app/internal/document"
	"pagestudio/local-app/internal/event"
	"pagestudio/local-app/internal/model"
)

// Editor owns all mutable session state around one project. Every
// mutation flows through here so history, selection and event publication
// stay consistent with the tree.
type Editor struct {
	store   *document.Store
	engine  *document.Engine
	events  *event.EventManager
	history *History

	selection string
	collapsed map[string]bool
	drag      *document.DragSession
}

// New creates an editor around an empty project.
func New(events *event.EventManager) *Editor {
	store := document.NewStore(model.NewProject())
	return &Editor{
		store:     store,
		engine:    document.NewEngine(store, document.NewRegistry()),
		events:    events,
		history:   NewHistory(),
		collapsed: make(map[string]bool),
	}
}

func (ed *Editor) Store() *document.Store      { return ed.store }
func (ed *Editor) Engine() *document.Engine    { return ed.engine }
func (ed *Editor) Project() *model.Project     { return ed.store.Project() }
func (ed *Editor) Events() *event.EventManager { return ed.events }
func (ed *Editor) History() *History           { return ed.history }

// mutate wraps a tree mutation with a history snapshot and an event.
func (ed *Editor) mutate(eventType event.EventType, data interface{}, fn func() error) error {
	before := ed.store.Project().Clone()
	if err := fn(); err != nil {
		return err
	}
	ed.history.Record(before, ed.store.Project().Clone())
	ed.events.Publish(event.Event{Type: eventType, Data: data})
	return nil
}

// Create adds a component of the given type under parentID (empty for the
// root level) and selects it.
func (ed *Editor) Create(compType, parentID string) (*model.Component, error) {
	var created *model.Component
	err := ed.mutate(event.ComponentAdded, compType, func() error {
		c, err := ed.engine.Create(compType, parentID)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	ed.Select(created.ID)
	return created, nil
}

// Delete removes a component and its subtree. A dead selection is
// cleared, not left dangling.
func (ed *Editor) Delete(id string) error {
	selected := ed.selection != "" && (ed.selection == id || ed.store.IsAncestor(id, ed.selection))
	err := ed.mutate(event.ComponentDeleted, id, func() error {
		if !ed.engine.Delete(id) {
			return fmt.Errorf("component '%s' not found", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	delete(ed.collapsed, id)
	if selected {
		ed.Select("")
	}
	return nil
}

// Reparent moves a component under a new parent, or to the root level
// when targetID is empty.
func (ed *Editor) Reparent(id, targetID string) error {
	return ed.mutate(event.ComponentMoved, id, func() error {
		if targetID == "" {
			return ed.engine.MoveToRoot(id)
		}
		return ed.engine.Reparent(id, targetID)
	})
}

// SetStyle writes one style key. It reports whether the write cascaded
// into child layout normalization.
func (ed *Editor) SetStyle(id, key, value string) (bool, error) {
	var cascaded bool
	err := ed.mutate(event.ComponentUpdated, id, func() error {
		var err error
		cascaded, err = ed.engine.SetStyle(id, key, value)
		return err
	})
	return cascaded, err
}

func (ed *Editor) SetText(id, text string) error {
	return ed.mutate(event.ComponentUpdated, id, func() error {
		return ed.engine.SetText(id, text)
	})
}

func (ed *Editor) SetName(id, name string) error {
	return ed.mutate(event.ComponentUpdated, id, func() error {
		return ed.engine.SetName(id, name)
	})
}

func (ed *Editor) SetTag(id, tag string) error {
	return ed.mutate(event.ComponentUpdated, id, func() error {
		return ed.engine.SetTag(id, tag)
	})
}

func (ed *Editor) SetAttribute(id, key, value string) error {
	return ed.mutate(event.ComponentUpdated, id, func() error {
		return ed.engine.SetAttribute(id, key, value)
	})
}

func (ed *Editor) SetInteraction(id, key, value string) error {
	return ed.mutate(event.ComponentUpdated, id, func() error {
		return ed.engine.SetInteraction(id, key, value)
	})
}

// SetGlobalCSS replaces the document stylesheet text.
func (ed *Editor) SetGlobalCSS(css string) {
	before := ed.store.Project().Clone()
	ed.store.Project().GlobalCSS = css
	ed.history.Record(before, ed.store.Project().Clone())
	ed.events.Publish(event.Event{Type: event.ComponentUpdated})
}

// SetGlobalJS replaces the document script text.
func (ed *Editor) SetGlobalJS(js string) {
	before := ed.store.Project().Clone()
	ed.store.Project().GlobalJS = js
	ed.history.Record(before, ed.store.Project().Clone())
	ed.events.Publish(event.Event{Type: event.ComponentUpdated})
}

// SetElementCSS attaches stylesheet text to one component.
func (ed *Editor) SetElementCSS(id, css string) error {
	if ed.store.FindComponent(id) == nil {
		return fmt.Errorf("component '%s' not found", id)
	}
	return ed.mutate(event.ComponentUpdated, id, func() error {
		if css == "" {
			delete(ed.store.Project().ElementCSS, id)
		} else {
			ed.store.Project().ElementCSS[id] = css
		}
		return nil
	})
}

// SetElementJS attaches script text to one component.
func (ed *Editor) SetElementJS(id, js string) error {
	if ed.store.FindComponent(id) == nil {
		return fmt.Errorf("component '%s' not found", id)
	}
	return ed.mutate(event.ComponentUpdated, id, func() error {
		if js == "" {
			delete(ed.store.Project().ElementJS, id)
		} else {
			ed.store.Project().ElementJS[id] = js
		}
		return nil
	})
}

// SetGlobalSetting writes one project-wide setting, e.g. the master key.
func (ed *Editor) SetGlobalSetting(key, value string) {
	before := ed.store.Project().Clone()
	if value == "" {
		delete(ed.store.Project().GlobalSettings, key)
	} else {
		ed.store.Project().GlobalSettings[key] = value
	}
	ed.history.Record(before, ed.store.Project().Clone())
	ed.events.Publish(event.Event{Type: event.ComponentUpdated})
}

// StartDrag begins a reorder gesture for a flex item. Only one drag can
// be active at a time.
func (ed *Editor) StartDrag(id string) error {
	if ed.drag != nil && !ed.drag.Done() {
		return fmt.Errorf("drag already in progress")
	}
	session, err := document.StartDrag(ed.engine, id)
	if err != nil {
		return err
	}
	ed.drag = session
	return nil
}

// Drop completes the active drag at cursor coordinates inside the target
// container.
func (ed *Editor) Drop(containerID string, x, y float64) error {
	if ed.drag == nil || ed.drag.Done() {
		return fmt.Errorf("no drag in progress")
	}
	session := ed.drag
	return ed.mutate(event.ComponentMoved, session.ComponentID(), func() error {
		return session.Drop(containerID, x, y)
	})
}

// CancelDrag abandons the active drag without touching the tree.
func (ed *Editor) CancelDrag() {
	if ed.drag != nil {
		ed.drag.Cancel()
	}
	ed.drag = nil
}

// Select sets the current selection. Unknown ids clear it.
func (ed *Editor) Select(id string) {
	if id != "" && ed.store.FindComponent(id) == nil {
		id = ""
	}
	if id == ed.selection {
		return
	}
	ed.selection = id
	ed.events.Publish(event.Event{Type: event.SelectionChanged, Data: id})
}

// Selected returns the current selection, or "" when the selected
// component no longer exists.
func (ed *Editor) Selected() string {
	if ed.selection != "" && ed.store.FindComponent(ed.selection) == nil {
		ed.selection = ""
	}
	return ed.selection
}

// SelectedComponent returns the selected component, or nil.
func (ed *Editor) SelectedComponent() *model.Component {
	return ed.store.FindComponent(ed.Selected())
}

// ToggleCollapse folds or unfolds a hierarchy entry.
func (ed *Editor) ToggleCollapse(id string) {
	if ed.collapsed[id] {
		delete(ed.collapsed, id)
	} else {
		ed.collapsed[id] = true
	}
}

// Collapsed returns the set of folded hierarchy entries.
func (ed *Editor) Collapsed() map[string]bool {
	return ed.collapsed
}

// ReplaceProject swaps in a new project (import, load), clearing the
// selection, collapsed set and history.
func (ed *Editor) ReplaceProject(p *model.Project) {
	ed.CancelDrag()
	ed.store.Replace(p)
	ed.selection = ""
	ed.collapsed = make(map[string]bool)
	ed.history.Reset()
	ed.events.Publish(event.Event{Type: event.ProjectReplaced})
}

// Undo reverts the last mutation.
func (ed *Editor) Undo() error {
	p, err := ed.history.Undo()
	if err != nil {
		return err
	}
	ed.restore(p)
	return nil
}

// Redo reapplies the last undone mutation.
func (ed *Editor) Redo() error {
	p, err := ed.history.Redo()
	if err != nil {
		return err
	}
	ed.restore(p)
	return nil
}

// restore swaps in a history snapshot without resetting the history
// itself. The selection survives when the component still exists.
func (ed *Editor) restore(p *model.Project) {
	ed.CancelDrag()
	ed.store.Replace(p)
	ed.Selected()
	ed.events.Publish(event.Event{Type: event.ProjectReplaced})
}
