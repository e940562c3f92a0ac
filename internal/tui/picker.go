// Package tui provides terminal user interface components for claude-builder
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quinnoshea/claude-builder/internal/render"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionGenerate
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action    Action
	Documents []string
}

// documentItem implements list.Item for document display
type documentItem struct {
	doc      *render.Document
	selected bool
}

func (i documentItem) Title() string {
	marker := "[ ]"
	if i.selected {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s", marker, i.doc.Title)
}

func (i documentItem) Description() string {
	source := "built-in"
	if !i.doc.BuiltIn {
		source = "user template"
	}
	return fmt.Sprintf("%s | %s | %s", i.doc.Domain, source, truncateText(i.doc.Description, 50))
}

func (i documentItem) FilterValue() string {
	return i.doc.Name
}

func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the document picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new document picker over the catalog entries.
func NewPicker(docs []*render.Document) Model {
	items := make([]list.Item, len(docs))
	for i, doc := range docs {
		items[i] = documentItem{doc: doc}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "claude-builder - Select Documents"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case " ":
			if item, ok := m.list.SelectedItem().(documentItem); ok {
				item.selected = !item.selected
				return m, m.list.SetItem(m.list.Index(), item)
			}

		case "a":
			cmds := make([]tea.Cmd, 0, len(m.list.Items()))
			for idx, it := range m.list.Items() {
				if item, ok := it.(documentItem); ok && !item.selected {
					item.selected = true
					cmds = append(cmds, m.list.SetItem(idx, item))
				}
			}
			return m, tea.Batch(cmds...)

		case "enter":
			docs := m.selectedDocuments()
			if len(docs) == 0 {
				// Enter with nothing toggled generates the highlighted one.
				if item, ok := m.list.SelectedItem().(documentItem); ok {
					docs = []string{item.doc.Name}
				}
			}
			if len(docs) > 0 {
				m.result = PickerResult{Action: ActionGenerate, Documents: docs}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selectedDocuments() []string {
	var docs []string
	for _, it := range m.list.Items() {
		if item, ok := it.(documentItem); ok && item.selected {
			docs = append(docs, item.doc.Name)
		}
	}
	return docs
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[space] Toggle  [a] All  [enter] Generate  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive document picker
func RunPicker(docs []*render.Document) (PickerResult, error) {
	if len(docs) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(docs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive fallback that lists the catalog
func SimplePicker(docs []*render.Document) string {
	var sb strings.Builder

	sb.WriteString("claude-builder - Documents\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(docs) == 0 {
		sb.WriteString("No documents found.\n")
		return sb.String()
	}

	for i, doc := range docs {
		source := "built-in"
		if !doc.BuiltIn {
			source = "user template"
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, doc.Title, source))
		sb.WriteString(fmt.Sprintf("   Name: %s | Domain: %s\n\n", doc.Name, doc.Domain))
	}

	return sb.String()
}
