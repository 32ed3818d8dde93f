package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/layout-codec/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeLines is the number of lines View uses around the leaf list.
const chromeLines = 6

type viewModel struct {
	err      error
	codec    *transcoder.Codec
	value    any
	inPath   string
	outPath  string
	status   string
	leaves   []leaf
	input    textinput.Model
	selected int
	height   int
	editing  bool
	dirty    bool
}

func newViewModel(codec *transcoder.Codec, data []byte, inPath, outPath string) (*viewModel, error) {
	v, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	m := &viewModel{
		codec:   codec,
		value:   v,
		inPath:  inPath,
		outPath: outPath,
	}
	m.leaves = collectLeaves(codec.Layout(), &m.value)
	return m, nil
}

func runViewProgram(m *viewModel) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("view needs an interactive terminal")
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.leaves)-1 {
				m.selected++
			}

		case "enter":
			if len(m.leaves) == 0 {
				return m, nil
			}
			lf := m.leaves[m.selected]
			ti := textinput.New()
			ti.Prompt = lf.path + ": "
			ti.Width = 40
			ti.SetValue(formatLeaf(lf.kind, lf.value))
			ti.Focus()
			m.input = ti
			m.editing = true
			m.err = nil
			m.status = ""
			return m, textinput.Blink

		case "w":
			m.write()
		}
	}
	return m, nil
}

func (m *viewModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.editing = false
		m.err = nil
		return m, nil

	case "enter":
		lf := &m.leaves[m.selected]
		v, err := parseLeaf(lf.kind, m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		lf.set(v)
		lf.value = v
		m.editing = false
		m.dirty = true
		m.err = nil
		m.status = lf.path + " updated"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// write re-encodes the edited value and writes it to the output file.
func (m *viewModel) write() {
	data, err := m.codec.Encode(m.value)
	if err != nil {
		m.err = err
		return
	}
	if err := os.WriteFile(m.outPath, data, 0o644); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.dirty = false
	m.status = fmt.Sprintf("wrote %d bytes to %s", len(data), m.outPath)
}

// window returns the range of leaves that fit on screen around the
// selection.
func (m *viewModel) window() (int, int) {
	rows := len(m.leaves)
	if m.height > chromeLines && m.height-chromeLines < rows {
		rows = m.height - chromeLines
	}
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	return start, start + rows
}

func (m *viewModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Viewer"))
	b.WriteString(" ")
	b.WriteString(m.inPath)
	if m.dirty {
		b.WriteString(" [modified]")
	}
	b.WriteString("\n\n")

	if len(m.leaves) == 0 {
		b.WriteString("(no values)\n")
	}
	start, end := m.window()
	for i := start; i < end; i++ {
		lf := m.leaves[i]
		line := pathStyle.Render(lf.path) + " " + kindStyle.Render(lf.kind.String()) + " = " + formatLeaf(lf.kind, lf.value)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.editing:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	default:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		} else if m.status != "" {
			b.WriteString(statusStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • w write • q quit"))
	}

	return b.String()
}
