package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	floating "github.com/grindlemire/go-floating"
	"github.com/grindlemire/go-floating/teahost"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")

	teaListStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	teaFocusedStyle = lipgloss.NewStyle().Reverse(true)
	teaTooltipStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Foreground(colorCyan)
	teaCursorStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Foreground(colorYellow)
	teaStatusStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// teaModel is the bubbletea model for the demo.
type teaModel struct {
	host *teahost.Host
	sc   *scene
}

func newTeaModel(cfg Config, logger *log.Logger, width, height int) *teaModel {
	host := teahost.NewHost(width, height)
	position := func(anchor, panel *floating.Ref, opts ...floating.Option) *floating.Floating {
		return floating.Position(host, anchor, panel, opts...)
	}
	return &teaModel{
		host: host,
		sc:   newScene(host.Root(), position, cfg, logger),
	}
}

func runTeaDemo(ctx context.Context, cfg Config, logger *log.Logger) error {
	size := terminalSize()
	m := newTeaModel(cfg, logger, int(size.Width), int(size.Height))
	defer m.sc.close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	m.host.Attach(p)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run bubbletea program: %w", err)
	}
	return nil
}

func (m *teaModel) Init() tea.Cmd {
	return nil
}

func (m *teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.host.Update(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.sc.move(-1)
		case "down", "j":
			m.sc.move(1)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.sc.pointerAt(msg.X, msg.Y)
		}
	}
	return m, nil
}

func (m *teaModel) View() string {
	size := m.host.Viewport()
	canvas := teahost.NewCanvas(int(size.Width), int(size.Height))
	sc := m.sc

	in := sc.inner()
	rows := make([]string, 0, int(in.Height))
	for i := range sc.items {
		if !sc.visible(i) {
			continue
		}
		row := fmt.Sprintf("%-*s", int(in.Width), sc.label(i))
		if i == sc.focus {
			row = teaFocusedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	list := sc.list.BoundingRect()
	canvas.Place(int(list.Left), int(list.Top), teaListStyle.
		Width(int(in.Width)).
		Height(int(in.Height)).
		Render(strings.Join(rows, "\n")))

	tip, _ := teahost.Panel(teaTooltipStyle, sc.tipLines()...)
	canvas.PlaceResult(sc.tip.Result(), tip)
	cursor, _ := teahost.Panel(teaCursorStyle, sc.cursorLines()...)
	canvas.PlaceResult(sc.cursor.Result(), cursor)

	status := fmt.Sprintf("tooltip: %s  cursor: %s", sc.tip.Placement(), sc.cursor.State())
	canvas.Place(0, int(size.Height)-1, teaStatusStyle.Render(status))
	return canvas.String()
}
