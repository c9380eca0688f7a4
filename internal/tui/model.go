// Package tui is a terminal front end for the seat shuffler. Seats are
// dragged with the mouse; press, motion and release are fed to the same
// drag adapter the web client uses.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"SeatShuffler/internal/board"
	"SeatShuffler/internal/clock"
	"SeatShuffler/internal/rearrange"
	"SeatShuffler/internal/seating"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cueExpiredMsg asks for a redraw once the swapped cue has faded.
type cueExpiredMsg struct{}

// Model is the bubbletea model of the seating board.
type Model struct {
	seating *seating.SeatingService
	request seating.SeatLayoutRequest
	clock   clock.Clock
	cue     time.Duration
	styles  Styles

	board  *board.Board
	engine *rearrange.Engine
	drag   *rearrange.DragAdapter

	status string
	width  int
	height int
}

// Geometry maps seat tiles to terminal cells below the header.
func Geometry() board.Geometry {
	return board.Geometry{
		OriginY:    headerRows,
		CellWidth:  CellWidth,
		CellHeight: CellHeight,
		GapX:       1,
		GapY:       1,
	}
}

// New generates the first layout for req and returns the model.
func New(svc *seating.SeatingService, req seating.SeatLayoutRequest, clk clock.Clock, cue time.Duration) (Model, error) {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if cue <= 0 {
		cue = rearrange.DefaultSwapCue
	}
	m := Model{
		seating: svc,
		request: req,
		clock:   clk,
		cue:     cue,
		styles:  DefaultStyles(),
		engine:  rearrange.NewEngine(nil, clk, rearrange.WithSwapCue(cue)),
	}
	m.drag = rearrange.NewDragAdapter(m.engine)
	if err := m.regenerate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Board returns the board currently shown.
func (m Model) Board() *board.Board { return m.board }

func (m *Model) regenerate() error {
	plan, err := m.seating.Generate(m.request)
	if err != nil {
		return err
	}
	m.request = plan.Request
	m.board = board.New(plan.Grid, Geometry())
	m.engine.Rebind(m.board)
	m.status = fmt.Sprintf("%d students in %d columns", plan.Request.StudentCount, plan.Request.ColumnCount)
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if err := m.regenerate(); err != nil {
				m.status = err.Error()
			}
		case "esc":
			m.engine.Cancel()
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case cueExpiredMsg:
		// Redraw only.
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	under := m.board.CellAt(board.Point{X: float64(msg.X), Y: float64(msg.Y)})

	switch msg.Action {
	case tea.MouseActionPress:
		m.drag.Handle(rearrange.DragEvent{Type: rearrange.DragStart, Cell: under})

	case tea.MouseActionMotion:
		if m.engine.Phase() != rearrange.Dragging {
			return m, nil
		}
		if under == nil {
			m.drag.Handle(rearrange.DragEvent{Type: rearrange.DragLeave, Cell: m.engine.Target()})
			return m, nil
		}
		m.drag.Handle(rearrange.DragEvent{Type: rearrange.DragOver, Cell: under})

	case tea.MouseActionRelease:
		if m.engine.Phase() != rearrange.Dragging {
			return m, nil
		}
		source := m.engine.Source()
		swapped := false
		if under != nil {
			swapped = m.drag.Handle(rearrange.DragEvent{Type: rearrange.Drop, Cell: under})
		}
		m.drag.Handle(rearrange.DragEvent{Type: rearrange.DragEnd, Cell: source})
		if swapped {
			m.status = fmt.Sprintf("swapped %d and %d", under.Number(), source.Number())
			return m, tea.Tick(m.cue, func(time.Time) tea.Msg { return cueExpiredMsg{} })
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	title := strings.TrimSpace(m.request.ClassName)
	if title == "" {
		title = "Seat shuffle result"
	} else {
		title += " seat shuffle result"
	}

	width := m.board.Columns()*(CellWidth+1) - 1
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.styles.Podium.Render("[ podium ]")))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", width))
	sb.WriteString("\n")

	now := m.clock.Now()
	for row := 0; row < m.board.Rows(); row++ {
		tiles := make([]string, 0, 2*m.board.Columns())
		for col := 0; col < m.board.Columns(); col++ {
			if col > 0 {
				tiles = append(tiles, " ")
			}
			tiles = append(tiles, m.renderCell(m.board.At(row, col), now))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.styles.Help.Render(m.status + "  •  drag seats to swap  •  r reshuffle  •  q quit"))
	return sb.String()
}

func (m Model) renderCell(c *board.Cell, now time.Time) string {
	if !c.Occupied {
		return m.styles.Placeholder.Render("")
	}
	style := m.styles.Seat
	switch {
	case c.Dragging():
		style = m.styles.Dragging
	case c.DragOver():
		style = m.styles.DragOver
	case c.Swapped(now):
		style = m.styles.Swapped
	}
	return style.Render(strconv.Itoa(c.Number()))
}

// Run starts the interactive program with mouse tracking.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
