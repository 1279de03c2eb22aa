package trackui

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wesen/edgetrack/pkg/edgetrack"
	"github.com/wesen/edgetrack/pkg/tealayout"
)

var helpLines = []string{
	"  drag a target to pin it",
	"  [u] release  [e] edit script",
	"  [tab] next target",
	"  [+/-] line width",
	"  [r] rays  [c] recenter",
	"  [space] pause",
	"  arrows: pan camera",
}

// buildPanelLayers renders the targets, log and help sections into r.
// f is nil when the canvas has no area.
func buildPanelLayers(m Model, f *frame, r tealayout.Region) []*lipgloss.Layer {
	l := tealayout.NewBuilderIn(r.Rect).
		Top("targets", 10).
		Bottom("help", len(helpLines)+2).
		Rest("log").
		Build()
	w := r.Rect.Dx()

	return []*lipgloss.Layer{
		tealayout.BlockLayer(l.Get("targets"), targetLines(m, f, w), panelStyle, "panel-targets", 1),
		tealayout.BlockLayer(l.Get("log"), logLines(m.Log, w, l.Get("log").Rect.Dy()), panelStyle, "panel-log", 1),
		tealayout.BlockLayer(l.Get("help"), helpSection(w), panelStyle, "panel-help", 1),
	}
}

func sectionHeader(title string, w int) []string {
	return []string{
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(w-2, 0))),
	}
}

func targetLines(m Model, f *frame, w int) []string {
	lines := sectionHeader("TARGETS", w)
	if f == nil {
		return append(lines, panelDimStyle.Render("  (no canvas)"))
	}
	for _, tv := range f.targets {
		t := tv.item.Data
		mark := "  "
		if tv.item.ID == m.SelectedID {
			mark = "▸ "
		}
		state := ""
		if t.Pinned {
			state = "  pinned"
		}
		name := lipgloss.NewStyle().Foreground(targetColor(tv.index)).Background(colorPanelBG).Bold(true).Render(t.Name)
		lines = append(lines,
			panelTextStyle.Render(mark)+name+panelTextStyle.Render(fmt.Sprintf(" (%6.1f,%6.1f)%s", t.At.X, t.At.Y, state)),
			panelDimStyle.Render("    "+describeVector(tv)),
		)
		if t.Err != "" {
			lines = append(lines, panelErrStyle.Render("    "+t.Err))
		}
	}
	return lines
}

// describeVector is the vector, its angle and the edge it leaves through.
func describeVector(tv targetView) string {
	if tv.exitErr != nil {
		return "at center"
	}
	deg := edgetrack.NormalizePositiveAngle(tv.vec) * 180 / math.Pi
	where := tv.edge.String()
	if tv.onScreen {
		where = "on screen"
	}
	return fmt.Sprintf("v=(%.0f,%.0f) %5.1f° %s", tv.vec.X, tv.vec.Y, deg, where)
}

func logLines(log []string, w, h int) []string {
	lines := sectionHeader("LOG", w)
	if len(log) == 0 {
		return append(lines, panelDimStyle.Render("  (empty)"))
	}
	room := max(h-len(lines), 0)
	start := max(len(log)-room, 0)
	for _, l := range log[start:] {
		st := panelTextStyle
		if strings.HasPrefix(l, "! ") {
			st = panelErrStyle
		}
		lines = append(lines, st.Render("  "+l))
	}
	return lines
}

func helpSection(w int) []string {
	lines := sectionHeader("HELP", w)
	for _, h := range helpLines {
		lines = append(lines, panelTextStyle.Render(h))
	}
	return lines
}
