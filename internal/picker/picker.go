// Package picker provides the interactive arrow-key file selector used
// when no input file is given on the command line.
package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user quits without selecting a file.
var ErrCanceled = errors.New("selection canceled")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type model struct {
	filepicker filepicker.Model
	selected   string
	quitting   bool
	err        error
}

type clearErrorMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func (m model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case clearErrorMsg:
		m.err = nil
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}

	if didSelect, path := m.filepicker.DidSelectDisabledFile(msg); didSelect {
		m.err = fmt.Errorf("%s is not a chat export (.json or .zip)", path)
		return m, tea.Batch(cmd, clearErrorAfter(2*time.Second))
	}

	return m, cmd
}

func (m model) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	s := titleStyle.Render("Pick a chat export to convert") + "\n\n"
	if m.err != nil {
		s += errStyle.Render(m.err.Error()) + "\n"
	}
	s += m.filepicker.View() + "\n"
	return s
}

// Pick opens the file picker rooted at dir and returns the selected
// export file. Only .json and .zip files are selectable.
func Pick(dir string) (string, error) {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".json", ".zip"}
	fp.CurrentDirectory = dir

	p := tea.NewProgram(model{filepicker: fp})
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("file picker: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.selected == "" {
		return "", ErrCanceled
	}
	return m.selected, nil
}
