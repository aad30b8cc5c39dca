package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/document"
	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/graph"
	"github.com/matzehuels/nodeedit/pkg/modal"
	"github.com/matzehuels/nodeedit/pkg/node"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	dialogStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan).Padding(0, 1)
)

// previewLength is the number of runes of node text shown in lists.
const previewLength = 48

// =============================================================================
// EditorModel - node list with the node content dialog
// =============================================================================

// refreshedMsg carries the document text re-read after a save.
type refreshedMsg struct {
	contents string
	err      error
}

// EditorModel is the bubbletea model for browsing nodes and editing them in
// the node content dialog.
type EditorModel struct {
	ctx       context.Context
	name      string
	store     document.Store
	selection *graph.Selection
	dialog    *modal.Modal
	editor    textarea.Model
	cfg       config.EditorConfig

	Nodes  []*node.Node
	Cursor int
	Height int
	Offset int
	Status string
}

// NewEditorModel creates the editor for the opened document.
func NewEditorModel(ctx context.Context, name string, store document.Store, sel *graph.Selection, cfg config.EditorConfig, logger *log.Logger) EditorModel {
	ta := textarea.New()
	ta.ShowLineNumbers = cfg.LineNumbers
	ta.CharLimit = 0
	ta.SetWidth(cfg.Width)
	ta.SetHeight(cfg.Height)

	dialog := modal.New(sel, store, modal.Options{
		CloseOnError: cfg.CloseOnError,
		OnClose:      sel.Clear,
		Logger:       logger,
	})

	return EditorModel{
		ctx:       ctx,
		name:      name,
		store:     store,
		selection: sel,
		dialog:    dialog,
		editor:    ta,
		cfg:       cfg,
		Nodes:     sel.Graph().Nodes(),
		Height:    15,
	}
}

// Dialog returns the node content dialog.
func (m EditorModel) Dialog() *modal.Modal { return m.dialog }

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		return m, nil
	case refreshedMsg:
		return m.applyRefresh(msg), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.dialog.Opened() {
			return m.updateDialog(msg)
		}
		return m.updateList(msg)
	}

	if m.dialog.State() == modal.Editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m EditorModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Nodes)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "r":
		return m, m.refresh()
	case "enter":
		if len(m.Nodes) == 0 {
			return m, nil
		}
		m.selection.SelectNode(m.Nodes[m.Cursor])
		m.dialog.Open()
		m.Status = ""
	}
	return m, nil
}

func (m EditorModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog.State() == modal.Editing {
		switch msg.String() {
		case "ctrl+s":
			if err := m.dialog.Save(m.ctx); err != nil {
				if m.dialog.State() == modal.Viewing {
					m.editor.Blur()
					m.Status = errors.UserMessage(err)
				}
				return m, nil
			}
			m.editor.Blur()
			m.Status = "saved " + m.dialog.PathString()
			return m, m.refresh()
		case "esc":
			m.dialog.Cancel(m.ctx)
			m.editor.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.dialog.SetDraft(m.editor.Value())
		return m, cmd
	}

	switch msg.String() {
	case "e", "enter":
		m.dialog.Edit(m.ctx)
		m.editor.SetValue(m.dialog.Draft())
		return m, m.editor.Focus()
	case "esc", "q":
		m.dialog.Close()
	}
	return m, nil
}

// refresh re-reads the document so the node list reflects the last save.
func (m EditorModel) refresh() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		contents, err := store.Contents(ctx)
		return refreshedMsg{contents: contents, err: err}
	}
}

func (m EditorModel) applyRefresh(msg refreshedMsg) EditorModel {
	hadSelection := m.selection.Selected() != nil
	path := m.dialog.PathString()
	if msg.err == nil {
		msg.err = m.selection.Load([]byte(msg.contents))
	}
	if msg.err != nil {
		m.Status = errors.UserMessage(msg.err)
		return m
	}

	// The saved value may no longer derive a node, e.g. an object replaced
	// by a scalar.
	if hadSelection && m.selection.Selected() == nil {
		m.dialog.Close()
		m.editor.Blur()
		m.Status = "saved " + path + "; it is no longer a node"
	}

	m.Nodes = m.selection.Graph().Nodes()
	if selected := m.selection.Selected(); selected != nil {
		for i, n := range m.Nodes {
			if n == selected {
				m.Cursor = i
			}
		}
	}
	if m.Cursor >= len(m.Nodes) {
		m.Cursor = max(len(m.Nodes)-1, 0)
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
	return m
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName) + StyleDim.Render(" · "+m.name))
	b.WriteString("\n")

	if m.dialog.Opened() {
		b.WriteString(m.dialogView())
	} else {
		b.WriteString(m.listView())
	}

	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(m.Status))
	}
	return b.String()
}

func (m EditorModel) listView() string {
	var b strings.Builder
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  r reload  q quit"))
	b.WriteString("\n\n")

	if len(m.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  no nodes"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Nodes))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, n.Path.String(), rowSummary(n), preview(n)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Path", "Rows", "Content").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 2 || col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))
	return b.String()
}

func (m EditorModel) dialogView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Node content"))
	b.WriteString("\n")
	b.WriteString(StyleHighlight.Render(m.dialog.PathString()))
	b.WriteString("\n\n")

	if m.dialog.State() == modal.Editing {
		b.WriteString(m.editor.View())
	} else {
		code := highlight(m.dialog.Code(), m.cfg.Theme)
		if m.cfg.LineNumbers {
			code = numberLines(code)
		}
		b.WriteString(code)
	}
	b.WriteString("\n")

	if err := m.dialog.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(StyleError.Render(iconError + " " + errors.UserMessage(err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.dialog.State() == modal.Editing {
		b.WriteString(listDimStyle.Render("ctrl+s save  esc cancel"))
	} else {
		b.WriteString(listDimStyle.Render("e edit  esc close"))
	}

	return dialogStyle.Width(m.cfg.Width + 4).Render(b.String())
}

// =============================================================================
// Helpers
// =============================================================================

// rowSummary describes a node's rows, e.g. "3 rows" or "number".
func rowSummary(n *node.Node) string {
	if len(n.Rows) == 1 && !n.Rows[0].Keyed {
		return string(n.Rows[0].Type)
	}
	if len(n.Rows) == 1 {
		return "1 row"
	}
	return fmt.Sprintf("%d rows", len(n.Rows))
}

// preview returns the node's text collapsed to one line.
func preview(n *node.Node) string {
	s := strings.Join(strings.Fields(n.Text()), " ")
	if r := []rune(s); len(r) > previewLength {
		return string(r[:previewLength-1]) + "…"
	}
	return s
}
