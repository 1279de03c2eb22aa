// Package trackui is the terminal demo: two scripted targets roam a world
// larger than the terminal and the border indicator points at them.
package trackui

import (
	"fmt"
	"image"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/edgetrack/internal/applog"
)

const (
	logComponent = "trackui"
	maxLog       = 50
)

// Model is the application state. Camera and mouse are in cells; the
// camera is the world position of the canvas's top-left cell.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     int
	centered       bool

	World      *World
	SelectedID int
	T          float64 // script time, seconds
	Paused     bool
	LineWidth  float64
	ShowRays   bool

	Log    []string
	Logger applog.Logger

	// Drag state
	Dragging bool
	DragID   int
	DragOff  image.Point

	// Edit modal state
	EditOpen  bool
	EditID    int
	EditX     textinput.Model
	EditY     textinput.Model
	EditFocus int // 0=x, 1=y
	EditErr   string
}

// Options configures NewModel.
type Options struct {
	LineWidth float64
	Logger    applog.Logger
}

// NewModel creates the demo world with both targets at their t = 0
// positions.
func NewModel(opts Options) (Model, error) {
	w, err := NewWorld()
	if err != nil {
		return Model{}, fmt.Errorf("build world: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = applog.NoopLogger{}
	}
	if opts.LineWidth < 0 {
		opts.LineWidth = 0
	}
	return Model{
		World:      w,
		SelectedID: w.Items()[0].ID,
		LineWidth:  min(opts.LineWidth, maxLineWidth),
		ShowRays:   true,
		Logger:     opts.Logger,
		DragID:     -1,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) infof(format string, args ...interface{}) {
	m.Logger.Infof(logComponent, format, args...)
	m.appendLog(fmt.Sprintf(format, args...))
}

func (m *Model) errorf(format string, args ...interface{}) {
	m.Logger.Errorf(logComponent, format, args...)
	m.appendLog("! " + fmt.Sprintf(format, args...))
}

func (m *Model) appendLog(line string) {
	m.Log = append(m.Log, line)
	if n := len(m.Log) - maxLog; n > 0 {
		m.Log = append([]string(nil), m.Log[n:]...)
	}
}

// selected returns the selected target, or nil.
func (m Model) selected() *Item {
	return m.World.Get(m.SelectedID)
}
