package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// FillLayer paints r with spaces in style.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	var content string
	if !r.Rect.Empty() {
		row := strings.Repeat(" ", r.Rect.Dx())
		content = style.Render(strings.TrimSuffix(strings.Repeat(row+"\n", r.Rect.Dy()), "\n"))
	}
	return lipgloss.NewLayer(content).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// BarLayer renders a one-line bar (toolbar, footer) across r.
func BarLayer(r Region, content string, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).MaxHeight(1).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(id)
}

// SeparatorLayer draws a vertical rule of the given height.
func SeparatorLayer(x, y, height int, style lipgloss.Style, id string) *lipgloss.Layer {
	if height < 0 {
		height = 0
	}
	rule := strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
	return lipgloss.NewLayer(style.Render(rule)).X(x).Y(y).Z(1).ID(id)
}

// BlockLayer places already-styled lines in r. Lines past the bottom are
// dropped, long lines are cut, and short ones are padded with fill.
func BlockLayer(r Region, lines []string, fill lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	cut := lipgloss.NewStyle().MaxWidth(w)
	out := make([]string, h)
	for i := range out {
		var s string
		if i < len(lines) {
			s = cut.Render(lines[i])
		}
		if pad := w - lipgloss.Width(s); pad > 0 {
			s += fill.Render(strings.Repeat(" ", pad))
		}
		out[i] = s
	}
	return lipgloss.NewLayer(strings.Join(out, "\n")).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// ModalLayer centers box-styled content over a termW x termH screen.
func ModalLayer(content string, termW, termH int, box lipgloss.Style, id string) *lipgloss.Layer {
	rendered := box.Render(content)
	x := max((termW-lipgloss.Width(rendered))/2, 0)
	y := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(100).ID(id)
}
