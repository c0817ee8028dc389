package term

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/host"
)

// frameInterval paces redraws and tick dispatch.
const frameInterval = 50 * time.Millisecond

type frameMsg time.Time

// FrameFunc draws one frame of the session.
type FrameFunc func(p gui.Painter, dt float32)

// Model is the bubbletea model of a terminal session.
type Model struct {
	bridge *host.Bridge
	frame  FrameFunc
	canvas *Canvas
	ticker *host.Ticker
	last   time.Time
	dt     time.Duration
}

var _ tea.Model = (*Model)(nil)

// NewModel returns a model driving bridge at tickRate Hz.
func NewModel(bridge *host.Bridge, frame FrameFunc, tickRate int) *Model {
	return &Model{
		bridge: bridge,
		frame:  frame,
		canvas: NewCanvas(0, 0),
		ticker: host.NewTicker(tickRate),
	}
}

// Canvas returns the grid the model draws on.
func (m *Model) Canvas() *Canvas { return m.canvas }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return nextFrame()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		size := m.canvas.Size()
		m.bridge.Resize(size.X, size.Y)

	case frameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.dt = now.Sub(m.last)
			m.ticker.Run(m.bridge, m.dt)
		}
		m.last = now
		return m, nextFrame()

	case tea.MouseMsg:
		m.mouse(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.key(msg)
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	p := CellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.bridge.OnMouseMoved(p.X, p.Y)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.bridge.OnMouseScrolled(p.X, p.Y, 1)
		case tea.MouseButtonWheelDown:
			m.bridge.OnMouseScrolled(p.X, p.Y, -1)
		case tea.MouseButtonLeft:
			m.bridge.OnMouseClicked(p.X, p.Y, gui.MouseButtonLeft)
		case tea.MouseButtonRight:
			m.bridge.OnMouseClicked(p.X, p.Y, gui.MouseButtonRight)
		case tea.MouseButtonMiddle:
			m.bridge.OnMouseClicked(p.X, p.Y, gui.MouseButtonMiddle)
		}
	}
}

// key delivers a key press, then its text, matching the order a window
// system reports them.
func (m *Model) key(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			m.bridge.OnCharTyped(r)
		}
	case tea.KeySpace:
		m.bridge.OnKeyPressed(gui.KeySpace)
		m.bridge.OnCharTyped(' ')
	default:
		if k, ok := teaKeys[msg.Type]; ok {
			m.bridge.OnKeyPressed(k)
		}
	}
}

var teaKeys = map[tea.KeyType]gui.Key{
	tea.KeyTab:       gui.KeyTab,
	tea.KeyLeft:      gui.KeyLeft,
	tea.KeyRight:     gui.KeyRight,
	tea.KeyUp:        gui.KeyUp,
	tea.KeyDown:      gui.KeyDown,
	tea.KeyPgUp:      gui.KeyPageUp,
	tea.KeyPgDown:    gui.KeyPageDown,
	tea.KeyHome:      gui.KeyHome,
	tea.KeyEnd:       gui.KeyEnd,
	tea.KeyInsert:    gui.KeyInsert,
	tea.KeyDelete:    gui.KeyDelete,
	tea.KeyBackspace: gui.KeyBackspace,
	tea.KeyEnter:     gui.KeyEnter,
	tea.KeyEsc:       gui.KeyEscape,
	tea.KeyF1:        gui.KeyF1,
	tea.KeyF2:        gui.KeyF2,
	tea.KeyF3:        gui.KeyF3,
	tea.KeyF4:        gui.KeyF4,
	tea.KeyF5:        gui.KeyF5,
	tea.KeyF6:        gui.KeyF6,
	tea.KeyF7:        gui.KeyF7,
	tea.KeyF8:        gui.KeyF8,
	tea.KeyF9:        gui.KeyF9,
	tea.KeyF10:       gui.KeyF10,
	tea.KeyF11:       gui.KeyF11,
	tea.KeyF12:       gui.KeyF12,
}

func (m *Model) View() string {
	m.canvas.Clear()
	m.frame(m.canvas, float32(m.dt.Seconds()))
	return m.canvas.Render()
}

// Run starts a full screen terminal session and blocks until the user quits
// with ctrl+c or ctx is done.
func Run(ctx context.Context, bridge *host.Bridge, frame FrameFunc, tickRate int) error {
	p := tea.NewProgram(NewModel(bridge, frame, tickRate),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal session: %w", err)
	}
	return nil
}
