package trackui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/edgetrack/internal/motion"
	"github.com/wesen/edgetrack/pkg/tealayout"
)

const scriptLimit = 80

func newScriptInput(value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = scriptLimit
	in.SetValue(value)
	return in
}

// openEditModal edits the selected target's motion script.
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	it := m.selected()
	if it == nil {
		return m, nil
	}
	s := it.Data.Motion.Script()
	m.EditOpen = true
	m.EditID = it.ID
	m.EditFocus = 0
	m.EditErr = ""
	m.EditX = newScriptInput(s.X)
	m.EditY = newScriptInput(s.Y)
	return m, m.EditX.Focus()
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.EditOpen = false
		return m, nil

	case "enter":
		return m.saveEdit(), nil

	case "tab", "shift+tab":
		if m.EditFocus == 0 {
			m.EditFocus = 1
			m.EditX.Blur()
			return m, m.EditY.Focus()
		}
		m.EditFocus = 0
		m.EditY.Blur()
		return m, m.EditX.Focus()
	}
	return m.updateEditInputs(msg)
}

func (m Model) updateEditInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.EditFocus == 0 {
		m.EditX, cmd = m.EditX.Update(msg)
	} else {
		m.EditY, cmd = m.EditY.Update(msg)
	}
	return m, cmd
}

// saveEdit installs the edited script. A script that does not compile keeps
// the modal open with the error shown.
func (m Model) saveEdit() Model {
	it := m.World.Get(m.EditID)
	if it == nil {
		m.EditOpen = false
		return m
	}
	s := motion.Script{X: m.EditX.Value(), Y: m.EditY.Value()}
	if err := it.Data.Motion.SetScript(s); err != nil {
		m.EditErr = err.Error()
		m.errorf("%s: %v", it.Data.Name, err)
		return m
	}
	it.Data.Pinned = false
	it.Data.Err = ""
	s = it.Data.Motion.Script()
	m.infof("%s: x = %s, y = %s", it.Data.Name, s.X, s.Y)
	m.EditOpen = false
	m.EditErr = ""
	return m
}

var (
	modalBG         = c("#0a1510")
	modalTitleStyle = lipgloss.NewStyle().Foreground(colorIndic).Background(modalBG).Bold(true)
	modalLabelStyle = lipgloss.NewStyle().Foreground(c("#ddaa44")).Background(modalBG)
	modalHintStyle  = lipgloss.NewStyle().Foreground(c("#336655")).Background(modalBG).Italic(true)
	modalErrStyle   = lipgloss.NewStyle().Foreground(c("#ff6666")).Background(modalBG)
	modalBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(modalBG).
			Width(60).
			Padding(1, 2)
)

func buildEditModalLayer(m Model) *lipgloss.Layer {
	it := m.World.Get(m.EditID)
	if it == nil {
		return nil
	}
	focusX, focusY := "  ", "  "
	if m.EditFocus == 0 {
		focusX = "▸ "
	} else {
		focusY = "▸ "
	}

	lines := []string{
		modalTitleStyle.Render("  MOTION: " + it.Data.Name),
		"",
		modalLabelStyle.Render(focusX + "x(t):"),
		"  " + m.EditX.View(),
		"",
		modalLabelStyle.Render(focusY + "y(t):"),
		"  " + m.EditY.View(),
		"",
		modalHintStyle.Render("  sin cos PI print(..) available, t in seconds"),
	}
	if m.EditErr != "" {
		lines = append(lines, "", modalErrStyle.Render("  "+m.EditErr))
	}
	lines = append(lines, "", modalHintStyle.Render("  [tab] switch  [enter] save  [esc] cancel"))

	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, modalBoxStyle, "edit-modal")
}
