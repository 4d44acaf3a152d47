package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/floorplan/pkg/editor"
	"github.com/matzehuels/floorplan/pkg/floor"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// TableListModel - Interactive table management
// =============================================================================

// TableListModel is the bubbletea model for the tables command.
type TableListModel struct {
	Editor *editor.Editor
	Path   string
	Cursor int
	Offset int
	Height int

	// Dirty is set once the plan differs from the file on disk.
	Dirty bool

	status string
	failed bool
	write  func(p *floor.Plan, path string) error
}

// NewTableListModel creates a table list over the editor's plan. Path is
// where 'w' writes the plan.
func NewTableListModel(ed *editor.Editor, path string) TableListModel {
	return TableListModel{
		Editor: ed,
		Path:   path,
		Height: 15,
		write:  pkgio.ExportFile,
	}
}

func (m TableListModel) Init() tea.Cmd {
	return nil
}

func (m TableListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	tables := m.Editor.Plan().Tables

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(tables)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "x":
			if len(tables) == 0 {
				return m, nil
			}
			t := tables[m.Cursor]
			if !t.Active() {
				return m.report(fmt.Sprintf("%s is already excluded", t.Name), false), nil
			}
			if err := m.Editor.ExcludeTable(t.ID); err != nil {
				return m.report(err.Error(), true), nil
			}
			m.Dirty = true
			return m.report(fmt.Sprintf("Excluded %s", t.Name), false), nil
		case "r":
			if len(tables) == 0 {
				return m, nil
			}
			t := tables[m.Cursor]
			if t.Active() {
				return m.report(fmt.Sprintf("%s is already on the floor", t.Name), false), nil
			}
			restored, err := m.Editor.RestoreTable(t.ID)
			if err != nil {
				return m.report(err.Error(), true), nil
			}
			m.Dirty = true
			return m.report(fmt.Sprintf("Restored %s at (%g, %g)", restored.Name, restored.X, restored.Y), false), nil
		case "s":
			snap, err := m.Editor.Save()
			if err != nil {
				return m.report(fmt.Sprintf("Save failed: %v", err), true), nil
			}
			return m.report(fmt.Sprintf("Saved snapshot with %s", plural(len(snap.Tables), "table")), false), nil
		case "w":
			if err := m.write(m.Editor.Plan(), m.Path); err != nil {
				return m.report(fmt.Sprintf("Write failed: %v", err), true), nil
			}
			m.Dirty = false
			return m.report(fmt.Sprintf("Wrote %s", m.Path), false), nil
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TableListModel) report(msg string, failed bool) TableListModel {
	m.status = msg
	m.failed = failed
	return m
}

func (m TableListModel) View() string {
	var b strings.Builder
	plan := m.Editor.Plan()

	title := "Tables"
	if plan.Name != "" {
		title = plan.Name
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  x exclude  r restore  s save  w write  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderTableList(plan.Tables, m.Cursor, m.Offset, m.Height))
	b.WriteString("\n\n")

	st := m.Editor.Status()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d active · %d excluded · %d seats",
		min(m.Cursor+1, len(plan.Tables)), len(plan.Tables), st.ActiveTables, st.ExcludedTables, st.TotalCapacity)))
	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(styleIconError.Render(iconError) + " " + m.status)
		} else {
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + m.status)
		}
	}

	return b.String()
}

// renderTableList draws rows [offset, offset+height) of tables. A cursor of
// -1 draws no cursor column highlight.
func renderTableList(tables []floor.Table, cursor, offset, height int) string {
	end := min(offset+height, len(tables))

	rows := [][]string{}
	for i := offset; i < end; i++ {
		t := tables[i]
		mark := "  "
		if i == cursor {
			mark = "▸ "
		}
		area := t.DiningArea
		if area == "" {
			area = "—"
		}
		rows = append(rows, []string{
			mark,
			t.Name,
			string(t.Shape),
			t.Capacity.String(),
			area,
			fmt.Sprintf("%g, %g", t.X, t.Y),
			string(t.Status),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Table", "Shape", "Seats", "Area", "Position", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := offset + row
			if idx >= len(tables) {
				return lipgloss.NewStyle()
			}
			t := tables[idx]
			base := lipgloss.NewStyle()
			if col == 6 {
				if t.Active() {
					base = base.Foreground(colorGreen)
				} else {
					base = base.Foreground(colorYellow)
				}
			} else if !t.Active() {
				base = base.Foreground(colorDim)
			}
			if idx == cursor {
				return base.Bold(true)
			}
			return base
		})

	return tbl.Render()
}
