package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stonkie/stonkie/pkg/chat"
)

// handleKeyMsg processes keyboard input and returns a command if the key was handled.
// Returns nil if the key should be passed to the textarea.
//
//revive:disable:cyclomatic // TUI keyboard handlers naturally have high complexity.
func (m *ChatModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.phase == chat.PhaseAwaiting {
		// Only allow quitting while a question is in flight.
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		// Don't pass keys to the textarea while awaiting an answer.
		return func() tea.Msg { return nil }
	}

	// Handle suggestions view keys.
	if m.currentView == viewModeSuggestions {
		return m.handleSuggestionKeys(msg)
	}

	// Handle statement view keys.
	if m.currentView == viewModeStatement {
		return m.handleStatementKeys(msg)
	}

	// Handle chat view keys.
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+f":
		// Open the suggested questions view.
		m.currentView = viewModeSuggestions
		m.selectedSuggestionIdx = 0
		return nil
	case "ctrl+t":
		// Open the financial statements view on the income statement.
		return m.openStatement(m.defaultReport())
	case "ctrl+s":
		// Export the conversation to the output directory.
		return m.exportTranscript()
	case "shift+enter", "alt+enter":
		// Shift+Enter or Alt+Enter: let textarea handle it (adds newline).
		return nil
	case "enter":
		// Plain Enter: submit the question exactly as typed.
		if strings.TrimSpace(m.textarea.Value()) != "" {
			return m.submit(m.textarea.Value())
		}
		// Don't submit blank questions, but don't pass Enter to textarea either.
		return func() tea.Msg { return nil }
	}

	// Return nil to allow textarea to handle the key.
	return nil
}

// handleSuggestionKeys processes keyboard input for the suggestions view.
func (m *ChatModel) handleSuggestionKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q":
		// Return to chat view.
		m.currentView = viewModeChat
		return nil
	case "up", "k":
		if m.selectedSuggestionIdx > 0 {
			m.selectedSuggestionIdx--
		}
		return nil
	case "down", "j":
		if m.selectedSuggestionIdx < len(m.suggestions)-1 {
			m.selectedSuggestionIdx++
		}
		return nil
	case "enter":
		// Prefill the input with the selected question; the user still
		// submits it from the chat view.
		if m.selectedSuggestionIdx < len(m.suggestions) {
			m.textarea.SetValue(m.suggestions[m.selectedSuggestionIdx])
		}
		m.currentView = viewModeChat
		return nil
	}

	return func() tea.Msg { return nil }
}

// loadSuggestions fetches suggested questions for the ticker. The client
// falls back to defaults, so this always yields something to show.
func (m *ChatModel) loadSuggestions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, suggestionsTimeout)
		defer cancel()

		return suggestionsMsg(m.client.SuggestedQuestions(ctx, m.ticker))
	}
}

// exportTranscript writes the conversation to the output directory.
func (m *ChatModel) exportTranscript() tea.Cmd {
	return func() tea.Msg {
		path, err := m.transcript.Save(m.outputDir, m.ticker)
		return exportedMsg{path: path, err: err}
	}
}
