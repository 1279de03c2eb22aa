package trackui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/edgetrack/pkg/cellbuf"
)

func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBG      = c("#080e0b")
	colorPanelBG = c("#1a2a20")
	colorIndic   = c("#00ffc8")
	colorRay     = c("#1a6a4a")
	colorMarker  = c("#ffcc00")
)

// targetColors is indexed by the target's position in the world.
var targetColors = []color.Color{c("#00d4a0"), c("#ddaa44")}

func targetColor(i int) color.Color { return targetColors[i%len(targetColors)] }

// Canvas style keys.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleRay
	styleIndicator
	styleMarker
	styleCross
	styleLink
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:        lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	styleGrid:      lipgloss.NewStyle().Foreground(c("#0e2e20")).Background(colorBG),
	styleRay:       lipgloss.NewStyle().Foreground(colorRay).Background(colorBG),
	styleIndicator: lipgloss.NewStyle().Foreground(colorIndic).Background(colorBG),
	styleMarker:    lipgloss.NewStyle().Foreground(colorMarker).Background(colorBG).Bold(true),
	styleCross:     lipgloss.NewStyle().Foreground(c("#336655")).Background(colorBG),
	styleLink:      lipgloss.NewStyle().Foreground(c("#00d4a0")).Background(colorBG),
}

var (
	toolbarStyle = lipgloss.NewStyle().
			Background(c("#0a1510")).
			Foreground(colorIndic).
			Bold(true)

	footerStyle = lipgloss.NewStyle().Foreground(c("#666666"))

	canvasStyle = lipgloss.NewStyle().Background(colorBG)

	panelStyle      = lipgloss.NewStyle().Background(colorPanelBG)
	panelTitleStyle = panelStyle.Foreground(colorIndic).Bold(true)
	panelDimStyle   = panelStyle.Foreground(c("#336655"))
	panelTextStyle  = panelStyle.Foreground(c("#00d4a0"))
	panelErrStyle   = panelStyle.Foreground(c("#ff6666"))
	separatorStyle  = lipgloss.NewStyle().Foreground(c("#1a4a3a")).Background(colorPanelBG)
)
