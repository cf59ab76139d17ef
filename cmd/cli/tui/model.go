package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adventsim/advent-calendar-go/internal/calendar"
)

var cmdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff66ff"))

type logMsg string

type Model struct {
	cal       *calendar.Calendar
	logger    *slog.Logger
	logChan   <-chan string
	viewport  viewport.Model
	textInput textinput.Model
	history   []string
	ready     bool
}

func NewModel(cal *calendar.Calendar, logger *slog.Logger, logChan <-chan string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command... (/help)"
	ti.Focus()
	ti.Width = 80

	return Model{
		cal:       cal,
		logger:    logger,
		logChan:   logChan,
		textInput: ti,
		history:   []string{},
	}
}

func (m Model) Init() bubbletea.Cmd {
	return bubbletea.Batch(textinput.Blink, waitForLog(m.logChan))
}

func waitForLog(ch <-chan string) bubbletea.Cmd {
	return func() bubbletea.Msg {
		return logMsg(<-ch)
	}
}

func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	var (
		cmd  bubbletea.Cmd
		cmds []bubbletea.Cmd
	)

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case logMsg:
		m.history = append(m.history, strings.TrimRight(string(msg), "\n"))
		m.refreshViewport()
		cmds = append(cmds, waitForLog(m.logChan))
	case bubbletea.KeyMsg:
		switch msg.Type {
		case bubbletea.KeyEnter:
			input := m.textInput.Value()
			m.textInput.Reset()

			parts := strings.Fields(input)
			if len(parts) == 0 {
				return m, nil
			}

			m.history = append(m.history, cmdStyle.Render(input))
			m.runCommand(parts[0], parts[1:])
			m.refreshViewport()
		case bubbletea.KeyCtrlC, bubbletea.KeyEsc:
			return m, bubbletea.Quit
		}
	case bubbletea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		viewportHeight := 14

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
		}
		m.textInput.Width = msg.Width - 4
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, bubbletea.Batch(cmds...)
}

func (m *Model) runCommand(command string, args []string) {
	switch command {
	case "/state":
		m.history = append(m.history, prettyState(m.cal))
	case "/next":
		days := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				m.history = append(m.history, fmt.Sprintf("Not a number: %s", args[0]))
				return
			}
			days = n
		}
		if m.cal.NextDays(days) {
			m.history = append(m.history, fmt.Sprintf("It is now day %d.", m.cal.Day()))
		} else {
			m.history = append(m.history, fmt.Sprintf("Cannot advance by %d days (day %d of %d).", days, m.cal.Day(), m.cal.MaxDays()))
		}
	case "/open":
		if len(args) == 0 {
			m.history = append(m.history, "Usage: /open <door> [door...]")
			return
		}
		numbers := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				m.history = append(m.history, fmt.Sprintf("Not a number: %s", arg))
				return
			}
			numbers = append(numbers, n)
		}
		candies := m.cal.OpenDoors(numbers)
		if len(candies) == 0 {
			m.history = append(m.history, "No doors could be opened.")
			return
		}
		for _, candy := range candies {
			m.history = append(m.history, fmt.Sprintf("You got: %dx%s", candy.Quantity, candy.Name))
		}
	case "/unopened":
		m.history = append(m.history, fmt.Sprintf("Openable doors still closed: %d", m.cal.NumberOfUnopenedDoors()))
	case "/reset":
		m.cal.Reset()
		m.logger.Info("calendar reset")
	case "/help":
		m.history = append(m.history,
			"/state          show the calendar",
			"/next [n]       advance the day",
			"/open n [n...]  open doors",
			"/unopened       count openable, still-closed doors",
			"/reset          restore the calendar",
		)
	default:
		m.history = append(m.history, fmt.Sprintf("Unknown command: %s", command))
	}
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	return style.Render("Advent Calendar TUI")
}

func (m Model) footerView() string {
	return m.textInput.View()
}

func prettyState(cal *calendar.Calendar) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Day %d of %d\n", cal.Day(), cal.MaxDays()))
	builder.WriteString(cal.String())
	return builder.String()
}
