package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render turns the buffer into a styled string, one line per row joined with
// "\n". Adjacent cells sharing a StyleKey are rendered as one run. Keys
// missing from styles are emitted unstyled. An empty buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		flush := func(style StyleKey) {
			if s, ok := styles[style]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		style := row[0].Style
		for _, c := range row {
			if c.Style != style {
				flush(style)
				style = c.Style
			}
			run = append(run, c.Ch)
		}
		flush(style)
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
