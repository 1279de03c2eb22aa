package trackui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/edgetrack/pkg/cellbuf"
	"github.com/wesen/edgetrack/pkg/tealayout"
)

const toolbarText = " EDGETRACK  │  ←↑↓→ pan  [c]enter  │  [+/-] width  [space] pause  │  [tab] select  [e]dit  [u]npin  [r]ays  │  [q]uit"

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvas := layout.Get("canvas")
	panel := layout.Get("panel")

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(layout.Get("toolbar"), toolbarStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvas, canvasStyle, "canvas-bg", 0),
		tealayout.BarLayer(layout.Get("toolbar"), toolbarText, toolbarStyle, "toolbar"),
	}

	var f *frame
	status := ""
	if w, h := canvas.Rect.Dx(), canvas.Rect.Dy(); w > 0 && h > 0 {
		buf := cellbuf.New(w, h, styleBG)
		var err error
		f, err = m.newFrame(w, h, cellSurface{buf: buf, ch: '█', style: styleIndicator})
		if err == nil {
			err = f.draw(buf, m.CamX, m.CamY, m.ShowRays)
			layers = append(layers, buildTargetLayers(m, f, canvas.Rect)...)
		}
		if err != nil {
			status = err.Error()
		}
		layers = append(layers, lipgloss.NewLayer(buf.Render(bufStyles)).
			X(canvas.Rect.Min.X).Y(canvas.Rect.Min.Y).Z(0).ID("canvas"))
	}

	view := canvas.Rect.Sub(canvas.Rect.Min).Add(image.Pt(m.CamX, m.CamY))
	visible := len(m.World.InRect(view))
	layers = append(layers, tealayout.BarLayer(layout.Get("footer"), m.footerText(visible, status), footerStyle, "footer"))

	if pr := panel.Rect; !pr.Empty() {
		layers = append(layers,
			tealayout.FillLayer(panel, panelStyle, "panel-bg", 0),
			tealayout.SeparatorLayer(pr.Min.X, pr.Min.Y, pr.Dy(), separatorStyle, "separator"),
		)
		inner := tealayout.Region{Name: panel.Name, Rect: image.Rect(pr.Min.X+2, pr.Min.Y, pr.Max.X, pr.Max.Y)}
		layers = append(layers, buildPanelLayers(m, f, inner)...)
	}

	if m.EditOpen {
		if l := buildEditModalLayer(m); l != nil {
			layers = append(layers, l)
		}
	}

	comp := lipgloss.NewCompositor(layers...)
	out := lipgloss.NewCanvas(m.Width, m.Height)
	out.Compose(comp)

	v := tea.NewView(out.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// footerText summarizes the camera and clock; visible counts targets at
// least partly inside the canvas.
func (m Model) footerText(visible int, status string) string {
	s := fmt.Sprintf(" Mouse (%d,%d)  Cam (%d,%d)  t=%.1fs  width %g  visible %d/%d",
		m.MouseX, m.MouseY, m.CamX, m.CamY, m.T, m.LineWidth, visible, m.World.Len())
	if m.Paused {
		s += "  [PAUSED]"
	}
	if status != "" {
		s += "  " + status
	}
	return s
}

// buildTargetLayers draws the label box of every target that fits on the
// canvas. Boxes partly off the canvas are left to the exit markers.
func buildTargetLayers(m Model, f *frame, canvas image.Rectangle) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	for _, tv := range f.targets {
		if !tv.onScreen {
			continue
		}
		st := lipgloss.NewStyle().Foreground(targetColor(tv.index)).Background(colorBG).Bold(true)
		if tv.item.ID == m.SelectedID {
			st = st.Reverse(true)
		}
		label := "[" + tv.item.Data.Name + "]"
		if tv.item.Data.Pinned {
			label = "{" + tv.item.Data.Name + "}"
		}
		layers = append(layers, lipgloss.NewLayer(st.Render(label)).
			X(canvas.Min.X+tv.box.Min.X).Y(canvas.Min.Y+tv.box.Min.Y).Z(2).
			ID(fmt.Sprintf("target-%d", tv.item.ID)))
	}
	return layers
}
