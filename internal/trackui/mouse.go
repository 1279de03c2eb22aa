package trackui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

// handleMouse selects and drags targets. Dragging pins a target: it stays
// where it was dropped until released with u or re-scripted.
func handleMouse(m Model, msg tea.MouseMsg, canvas image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y
	if m.EditOpen {
		return m, nil
	}

	pt := image.Pt(mouse.X, mouse.Y)
	world := m.toWorld(pt, canvas)

	switch msg.(type) {
	case tea.MouseMotionMsg:
		if m.Dragging {
			m.World.Move(m.DragID, world.Sub(m.DragOff), setCell)
		}

	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || !pt.In(canvas) {
			return m, nil
		}
		hit := m.World.HitTest(world)
		if hit == nil {
			return m, nil
		}
		m.SelectedID = hit.ID
		m.Dragging = true
		m.DragID = hit.ID
		m.DragOff = world.Sub(hit.Data.Pos())
		if !hit.Data.Pinned {
			hit.Data.Pinned = true
			m.infof("%s pinned", hit.Data.Name)
		}

	case tea.MouseReleaseMsg:
		if m.Dragging {
			if it := m.World.Get(m.DragID); it != nil {
				c := it.Data.Cell()
				m.infof("%s dropped at (%d,%d)", it.Data.Name, c.X, c.Y)
			}
			m.Dragging = false
			m.DragID = -1
		}
	}
	return m, nil
}
