package trackui

import (
	"image"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/edgetrack/pkg/tealayout"
)

const (
	panStep      = 3
	tickInterval = 100 * time.Millisecond
	maxLineWidth = 5
	panelWidth   = 36
)

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if !m.centered {
			m = m.recenter()
			m.centered = true
		}
		return m, nil

	case tickMsg:
		if !m.Paused {
			m.T += tickInterval.Seconds()
			m = m.advance()
		}
		return m, tick()

	case tea.KeyMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.layout().Get("canvas").Rect)
	}

	if m.EditOpen {
		return m.updateEditInputs(msg)
	}
	return m, nil
}

// advance moves every unpinned target to its script position at m.T.
// A failing script leaves its target where it was.
func (m Model) advance() Model {
	for _, it := range m.World.Items() {
		t := &it.Data
		if t.Pinned {
			continue
		}
		p, err := t.Motion.At(m.T)
		for _, line := range t.Motion.Output {
			m.infof("%s: %s", t.Name, line)
		}
		t.Motion.Output = t.Motion.Output[:0]
		if err != nil {
			if msg := err.Error(); msg != t.Err {
				t.Err = msg
				m.errorf("%s: %v", t.Name, err)
			}
			continue
		}
		t.Err = ""
		t.At = p
	}
	return m
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up":
		m.CamY -= panStep
	case "down":
		m.CamY += panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep
	case "c":
		m = m.recenter()

	case "+", "=":
		m.LineWidth = min(m.LineWidth+1, maxLineWidth)
	case "-":
		m.LineWidth = max(m.LineWidth-1, 0)

	case "space", " ":
		m.Paused = !m.Paused
	case "r":
		m.ShowRays = !m.ShowRays

	case "tab":
		m.SelectedID = m.nextTarget()
	case "u":
		if it := m.selected(); it != nil && it.Data.Pinned {
			it.Data.Pinned = false
			m.infof("%s released", it.Data.Name)
		}
	case "e":
		return m.openEditModal()
	}
	return m, nil
}

// nextTarget cycles the selection in world order.
func (m Model) nextTarget() int {
	items := m.World.Items()
	if len(items) == 0 {
		return -1
	}
	for i, it := range items {
		if it.ID == m.SelectedID {
			return items[(i+1)%len(items)].ID
		}
	}
	return items[0].ID
}

// recenter puts the world origin in the middle of the canvas.
func (m Model) recenter() Model {
	r := m.layout().Get("canvas").Rect
	m.CamX = -r.Dx() / 2
	m.CamY = -r.Dy() / 2
	return m
}

// layout splits the terminal: toolbar, footer, side panel, canvas.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewBuilder(m.Width, m.Height).
		Top("toolbar", 1).
		Bottom("footer", 1).
		Right("panel", panelWidth).
		Rest("canvas").
		Build()
}

// toWorld converts a terminal cell inside canvas to world cells.
func (m Model) toWorld(p image.Point, canvas image.Rectangle) image.Point {
	return p.Sub(canvas.Min).Add(image.Pt(m.CamX, m.CamY))
}
