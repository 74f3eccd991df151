package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "vscore.dev/pkg/vscore/internal/model"
)

const (
	defaultTableHeight = 20
	minTableHeight     = 3

	// Lines used by the title, borders and help line around the table.
	chromeLines = 6

	scoreColumnWidth = 6
)

var (
	tuiBaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	tuiTitleStyle = lipgloss.NewStyle().Bold(true)

	tuiHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ShowScores opens a scrollable table of scored variants. It blocks
// until the user quits.
func (t *TUI) ShowScores(ctx context.Context, source m.Path, scored []m.ScoredVariant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newScoreTableModel(source, scored)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// scoreTableModel is the Bubble Tea model behind the interactive view.
type scoreTableModel struct {
	source   m.Path
	table    table.Model
	quitting bool
}

func newScoreTableModel(source m.Path, scored []m.ScoredVariant) scoreTableModel {
	idWidth := len("ID")
	for _, sv := range scored {
		if len(sv.ID) > idWidth {
			idWidth = len(sv.ID)
		}
	}

	columns := []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Score", Width: scoreColumnWidth},
	}

	rows := make([]table.Row, 0, len(scored))
	for _, sv := range scored {
		rows = append(rows, table.Row{sv.ID, strconv.Itoa(sv.Score)})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tbl.SetStyles(styles)

	return scoreTableModel{source: source, table: tbl}
}

func (sm scoreTableModel) Init() tea.Cmd {
	return nil
}

func (sm scoreTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chromeLines
		if height < minTableHeight {
			height = minTableHeight
		}

		sm.table.SetHeight(height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			sm.quitting = true
			return sm, tea.Quit
		}
	}

	var cmd tea.Cmd
	sm.table, cmd = sm.table.Update(msg)

	return sm, cmd
}

func (sm scoreTableModel) View() string {
	if sm.quitting {
		return ""
	}

	title := tuiTitleStyle.Render(fmt.Sprintf("%s (%d variants)", sm.source, len(sm.table.Rows())))
	help := tuiHelpStyle.Render("up/down scroll, q to quit")

	return title + "\n" + tuiBaseStyle.Render(sm.table.View()) + "\n" + help + "\n"
}
