package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/storage"
	"github.com/san-kum/finquant/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var calculatorInfo = map[string]string{
	"bond":            "fixed-coupon pricing",
	"real_estate":     "levered property IRR",
	"private_credit":  "tranche yield",
	"black_litterman": "posterior allocation",
	"execution":       "liquidation trajectory",
	"credit_risk":     "Vasicek tail loss",
	"lease":           "amortization",
	"defi_yield":      "pool APY",
}

type state int

const (
	stateList state = iota
	stateDetail
)

type model struct {
	state  state
	cursor int

	store *storage.Store
	runs  []storage.RunMetadata

	selected    storage.RunMetadata
	resultNames []string
	series      map[string][]decimal.Decimal
	seriesNames []string
	err         error

	width  int
	height int
}

// NewBrowser builds a bubbletea app over the stored runs in store.
func NewBrowser(store *storage.Store) (*model, error) {
	runs, err := store.List()
	if err != nil {
		return nil, err
	}
	return &model{
		state:  stateList,
		store:  store,
		runs:   runs,
		width:  80,
		height: 24,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.listKey(msg)
	case stateDetail:
		return m.detailKey(msg)
	}
	return m, nil
}

func (m model) listKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.runs)-1 {
			m.cursor++
		}
	case "r":
		runs, err := m.store.List()
		if err != nil {
			m.err = err
		} else {
			m.runs = runs
			m.err = nil
			if m.cursor >= len(m.runs) && m.cursor > 0 {
				m.cursor = len(m.runs) - 1
			}
		}
	case "enter", " ":
		if len(m.runs) == 0 {
			return m, nil
		}
		m.openRun(m.runs[m.cursor])
		m.state = stateDetail
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) detailKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape", "enter":
		m.state = stateList
		m.err = nil
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *model) openRun(run storage.RunMetadata) {
	m.selected = run
	m.err = nil

	m.resultNames = make([]string, 0, len(run.Results))
	for name := range run.Results {
		m.resultNames = append(m.resultNames, name)
	}
	sort.Strings(m.resultNames)

	series, err := m.store.LoadSeries(run.ID)
	if err != nil {
		m.err = err
		m.series = nil
		m.seriesNames = nil
		return
	}
	m.series = series
	m.seriesNames = make([]string, 0, len(series))
	for name := range series {
		m.seriesNames = append(m.seriesNames, name)
	}
	sort.Strings(m.seriesNames)
}

func (m model) View() string {
	switch m.state {
	case stateDetail:
		return m.detailView()
	default:
		return m.listView()
	}
}

func (m model) listView() string {
	var s strings.Builder
	s.WriteString(cyan.Render("finquant runs") + "\n")
	s.WriteString(dimmer.Render(strings.Repeat("─", 60)) + "\n\n")

	if len(m.runs) == 0 {
		s.WriteString(dim.Render("no stored runs; use `finquant run` first") + "\n")
	}

	for i, run := range m.runs {
		marker := "  "
		line := fmt.Sprintf("%-28s %-16s %s",
			run.ID, run.Calculator, run.Timestamp.Format("2006-01-02 15:04"))
		if i == m.cursor {
			marker = cyan.Render("▸ ")
			line = white.Render(line)
		} else {
			line = dim.Render(line)
		}
		s.WriteString(marker + line + "\n")
		if i == m.cursor {
			if info, ok := calculatorInfo[run.Calculator]; ok {
				s.WriteString("    " + dimmer.Render(info) + "\n")
			}
		}
	}

	if m.err != nil {
		s.WriteString("\n" + yellow.Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + dimmer.Render("↑/↓ move · enter open · r refresh · q quit") + "\n")
	return s.String()
}

func (m model) detailView() string {
	var s strings.Builder
	run := m.selected

	s.WriteString(cyan.Render(run.ID) + "  " + dim.Render(run.Calculator))
	if run.Preset != "" {
		s.WriteString(dim.Render(" · preset "+run.Preset))
	}
	s.WriteString("\n")
	s.WriteString(dimmer.Render(strings.Repeat("─", 60)) + "\n\n")

	for _, name := range m.resultNames {
		s.WriteString(fmt.Sprintf("  %s %s\n",
			dim.Render(fmt.Sprintf("%-20s", name)),
			green.Render(run.Results[name])))
	}

	for _, name := range m.seriesNames {
		vals := m.series[name]
		s.WriteString("\n  " + dim.Render(fmt.Sprintf("%s (%d points)", name, len(vals))) + "\n")
		s.WriteString("  " + viz.Sparkline(vals, 50) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + yellow.Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + dimmer.Render("q back · ctrl+c quit") + "\n")
	return s.String()
}

// Run starts the browser in the alternate screen.
func Run(store *storage.Store) error {
	m, err := NewBrowser(store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
