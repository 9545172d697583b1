// Package tui implements the interactive Stonkie chat: a conversation
// viewport, a question input, and overlay views for suggested questions and
// financial statements.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"

	errUtils "github.com/stonkie/stonkie/errors"
	"github.com/stonkie/stonkie/pkg/api"
	"github.com/stonkie/stonkie/pkg/chat"
	"github.com/stonkie/stonkie/pkg/ui/markdown"
	"github.com/stonkie/stonkie/pkg/ui/theme"
)

const (
	// DefaultViewportWidth is the default width for the chat viewport before window sizing.
	DefaultViewportWidth = 80
	// DefaultViewportHeight is the default height for the chat viewport before window sizing.
	DefaultViewportHeight = 20

	// Markdown rendering constants.
	minMarkdownWidth = 20
	newlineChar      = "\n"
	doubleNewline    = "\n\n"

	// analysisErrorNotice is the only analysis failure text users ever see.
	// Diagnostic detail goes to the log instead.
	analysisErrorNotice = "Sorry, I encountered an error analyzing the data."

	suggestionsTimeout = 5 * time.Second
	statementTimeout   = 15 * time.Second
)

// viewMode represents the current view mode of the TUI.
type viewMode int

const (
	viewModeChat viewMode = iota
	viewModeSuggestions
	viewModeStatement
)

// ChatModel represents the state of the chat TUI.
type ChatModel struct {
	client     api.Client
	ticker     string
	outputDir  string
	transcript *chat.Transcript
	phase      chat.Phase

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	currentView           viewMode
	suggestions           []string
	selectedSuggestionIdx int

	statement        *api.Statement
	statementReport  api.ReportType
	statementTable   table.Model
	statementLoading bool
	statementErr     string

	healthChecked bool
	healthErr     error
	notice        string

	width  int
	height int
	ready  bool

	// ctx is the component's lifetime: cancelling it aborts any in-flight
	// backend call.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewChatModel creates a chat model for one ticker backed by the provided
// client. The model's backend calls are scoped to ctx: when it is cancelled
// any outstanding analyze call settles as cancelled rather than failed.
func NewChatModel(ctx context.Context, client api.Client, ticker, outputDir string) (*ChatModel, error) {
	if client == nil {
		return nil, errUtils.ErrAPIClientNil
	}
	if strings.TrimSpace(ticker) == "" {
		return nil, errUtils.ErrTickerRequired
	}

	// Initialize viewport.
	vp := viewport.New(DefaultViewportWidth, DefaultViewportHeight)
	vp.SetContent("")

	// Initialize textarea.
	ta := textarea.New()
	ta.Placeholder = fmt.Sprintf("Ask about %s... (Enter to send, Ctrl+C to quit)", strings.ToUpper(ticker))
	ta.Focus()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0 // No character limit

	// Initialize spinner.
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorCyan))

	modelCtx, cancel := context.WithCancel(ctx)

	model := &ChatModel{
		client:      client,
		ticker:      ticker,
		outputDir:   outputDir,
		transcript:  &chat.Transcript{},
		phase:       chat.PhaseIdle,
		viewport:    vp,
		textarea:    ta,
		spinner:     s,
		currentView: viewModeChat,
		ctx:         modelCtx,
		cancel:      cancel,
	}
	model.rebuildRenderer()

	return model, nil
}

// Init initializes the chat model.
func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.checkHealth(),
		m.loadSuggestions(),
	)
}

// handleWindowResize processes window size changes and adjusts UI components.
func (m *ChatModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := lipgloss.Height(m.footerView())
	verticalMarginHeight := headerHeight + footerHeight

	if !m.ready {
		m.viewport = viewport.New(msg.Width, msg.Height-verticalMarginHeight)
		m.viewport.YPosition = headerHeight + 1
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(3)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMarginHeight
		m.textarea.SetWidth(msg.Width - 4)
	}

	m.rebuildRenderer()
	if m.statement != nil {
		m.statementTable = m.buildStatementTable(m.statement)
	}
	m.updateViewportContent()
}

// rebuildRenderer recreates the markdown renderer at the current width. A
// nil renderer falls back to plain text.
func (m *ChatModel) rebuildRenderer() {
	renderer, err := markdown.NewRenderer(markdown.WithWidth(uint(m.botWidth())))
	if err != nil {
		log.Debug("markdown renderer unavailable, falling back to plain text", "error", err)
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

func (m *ChatModel) botWidth() int {
	width := m.viewport.Width - 4
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}
	return width
}

// Update handles messages and updates the model state.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// Handle different message types.
	if handled, returnCmd := m.handleMessage(msg, &cmds); handled {
		if returnCmd != nil {
			return m, returnCmd
		}
	}

	// Update textarea only while idle and in chat mode.
	if m.phase == chat.PhaseIdle && m.currentView == viewModeChat {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update viewport.
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleMessage processes different message types and returns whether it was handled.
//
//revive:disable:cyclomatic // Message handling naturally requires branching for different message types.
func (m *ChatModel) handleMessage(msg tea.Msg, cmds *[]tea.Cmd) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return true, nil

	case tea.KeyMsg:
		return m.handleKeyMessage(msg)

	case submitMsg:
		return m.handleSubmit(msg)

	case answerMsg, answerErrMsg, answerCancelledMsg:
		return m.handleSettlement(msg), nil

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg, cmds), nil

	case suggestionsMsg:
		m.suggestions = msg
		return true, nil

	case healthMsg:
		m.handleHealth(msg)
		return true, nil

	case statementMsg:
		m.handleStatementLoaded(msg)
		return true, nil

	case exportedMsg:
		m.handleExported(msg)
		return true, nil
	}

	return false, nil
}

// handleKeyMessage handles keyboard input.
func (m *ChatModel) handleKeyMessage(msg tea.KeyMsg) (bool, tea.Cmd) {
	if keyCmd := m.handleKeyMsg(msg); keyCmd != nil {
		return true, keyCmd
	}
	// Fall through to update textarea with the key.
	return false, nil
}

// handleSubmit runs the submit contract: a blank question is a no-op, a
// second submission while one is outstanding is rejected, and anything else
// appends the question verbatim and issues exactly one analyze call.
func (m *ChatModel) handleSubmit(msg submitMsg) (bool, tea.Cmd) {
	if m.phase == chat.PhaseAwaiting {
		// The key gate makes this unreachable; reject here as well so the
		// one-in-flight rule never depends on the UI alone.
		return true, nil
	}

	question := string(msg)
	if strings.TrimSpace(question) == "" {
		return true, nil
	}

	m.transcript.Append(chat.RoleUser, question)
	m.phase = chat.PhaseAwaiting
	m.notice = ""
	m.textarea.Blur()
	m.updateViewportContent()

	return true, tea.Batch(
		m.spinner.Tick,
		m.awaitAnswer(question),
	)
}

// handleSettlement settles the outstanding analyze call. An answer appends
// the bot message, a failure appends the fixed error notice, a cancellation
// appends nothing. The cleanup below runs on every path.
func (m *ChatModel) handleSettlement(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case answerMsg:
		m.transcript.Append(chat.RoleBot, string(msg))
	case answerErrMsg:
		log.Error("analysis failed", "ticker", m.ticker, "error", msg.err)
		m.transcript.Append(chat.RoleBot, analysisErrorNotice)
	case answerCancelledMsg:
		log.Debug("analysis cancelled", "ticker", m.ticker)
	}

	m.phase = chat.PhaseIdle
	m.textarea.Reset()
	m.textarea.Focus()
	m.updateViewportContent()
	return true
}

// handleSpinnerTick handles spinner animation updates.
func (m *ChatModel) handleSpinnerTick(msg spinner.TickMsg, cmds *[]tea.Cmd) bool {
	if m.phase == chat.PhaseAwaiting || m.statementLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		*cmds = append(*cmds, cmd)
		if m.phase == chat.PhaseAwaiting {
			// The spinner renders inside the viewport, after the last message.
			m.updateViewportContent()
		}
	}
	return true
}

func (m *ChatModel) handleHealth(msg healthMsg) {
	m.healthChecked = true
	m.healthErr = msg.err
	if msg.err != nil {
		log.Warn("backend health check failed", "error", msg.err)
	}
}

func (m *ChatModel) handleExported(msg exportedMsg) {
	if msg.err != nil {
		log.Error("transcript export failed", "ticker", m.ticker, "error", msg.err)
		m.notice = "Could not save the conversation."
		return
	}
	m.notice = fmt.Sprintf("Saved conversation to %s", msg.path)
}

// View renders the chat interface.
func (m *ChatModel) View() string {
	if !m.ready {
		return "\n  Starting Stonkie chat..."
	}

	switch m.currentView {
	case viewModeSuggestions:
		return m.suggestionsView()
	case viewModeStatement:
		return m.statementView()
	default:
		return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
	}
}

func (m *ChatModel) headerView() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorCyan)).
		Bold(true).
		Padding(0, 1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorDimGray)).
		Padding(0, 1)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Stonkie %s", strings.ToUpper(m.ticker))),
		subtitleStyle.Render("Ask questions about the company's financials"),
	}

	if m.healthChecked {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ColorGreen)).
			Padding(0, 1)
		status := "backend connected"
		if m.healthErr != nil {
			statusStyle = statusStyle.Foreground(lipgloss.Color(theme.ColorRed))
			status = "backend unreachable"
		}
		lines = append(lines, statusStyle.Render(status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *ChatModel) footerView() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorDimGray)).
		Italic(true)

	help := helpStyle.Render("Enter: Ask | Ctrl+F: Questions | Ctrl+T: Financials | Ctrl+S: Save | Ctrl+C: Quit")
	content := fmt.Sprintf("%s\n%s", m.textarea.View(), help)

	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorGold))
		content = fmt.Sprintf("%s\n%s", noticeStyle.Render(m.notice), content)
	}

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBorder)).
		Padding(1, 0)

	return footerStyle.Render(content)
}

func (m *ChatModel) updateViewportContent() {
	var contentParts []string

	for _, msg := range m.transcript.Messages() {
		switch msg.Role {
		case chat.RoleUser:
			contentParts = append(contentParts, m.renderUserMessage(msg))
		case chat.RoleBot:
			contentParts = append(contentParts, m.renderBotMessage(msg))
		}
		contentParts = append(contentParts, "") // Empty line between messages
	}

	if m.phase == chat.PhaseAwaiting {
		contentParts = append(contentParts,
			fmt.Sprintf("%s analyzing %s...", m.spinner.View(), strings.ToUpper(m.ticker)))
	}

	m.viewport.SetContent(strings.Join(contentParts, newlineChar))
	m.viewport.GotoBottom()
}

// renderUserMessage renders a question as plain text in a right-aligned
// bubble. Questions get a narrower maximum width than answers.
func (m *ChatModel) renderUserMessage(msg chat.Message) string {
	maxWidth := (m.viewport.Width * 3) / 5
	if maxWidth < minMarkdownWidth {
		maxWidth = minMarkdownWidth
	}

	width := lipgloss.Width(msg.Content) + 2 // horizontal padding
	if width > maxWidth {
		width = maxWidth
	}

	bubble := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.ColorUserBubbleBg)).
		Foreground(lipgloss.Color(theme.ColorUserBubbleFg)).
		Padding(0, 1).
		Width(width).
		Render(msg.Content)

	return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, bubble)
}

// renderBotMessage renders an answer as markdown, left-aligned at nearly
// the full viewport width so tables fit.
func (m *ChatModel) renderBotMessage(msg chat.Message) string {
	if m.renderer != nil {
		if rendered, err := m.renderer.RenderIndented(msg.Content, 2); err == nil {
			return rendered
		}
	}

	// Fallback to plain text if markdown rendering fails.
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Width(m.botWidth()).
		Render(msg.Content)
}

// Custom message types.
type submitMsg string

type answerMsg string

type answerErrMsg struct {
	err error
}

type answerCancelledMsg struct{}

type suggestionsMsg []string

type healthMsg struct {
	err error
}

type statementMsg struct {
	report    api.ReportType
	statement *api.Statement
	err       error
}

type exportedMsg struct {
	path string
	err  error
}

func (m *ChatModel) submit(question string) tea.Cmd {
	return func() tea.Msg {
		return submitMsg(question)
	}
}

// awaitAnswer issues the analyze call bound to the component's lifetime.
// There is no request timeout here: analysis can legitimately take minutes,
// and the context governs teardown.
func (m *ChatModel) awaitAnswer(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.client.Analyze(m.ctx, m.ticker, question)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return answerCancelledMsg{}
			}
			return answerErrMsg{err: err}
		}
		return answerMsg(answer)
	}
}

func (m *ChatModel) checkHealth() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, suggestionsTimeout)
		defer cancel()

		return healthMsg{err: m.client.Health(ctx)}
	}
}

func welcomeMessage(ticker string) string {
	var b strings.Builder
	b.WriteString("Welcome to Stonkie! 📈\n\n")
	fmt.Fprintf(&b, "I analyze **%s** using its public financial statements. Ask about revenue, margins, cash flow, or anything else you would put to an analyst.\n\n", strings.ToUpper(ticker))
	b.WriteString("Some questions to get going:\n")
	for _, q := range api.DefaultQuestions {
		fmt.Fprintf(&b, "- %s\n", q)
	}
	b.WriteString("\nShortcuts: Ctrl+F suggested questions, Ctrl+T financial statements, Ctrl+S save the conversation.")
	return b.String()
}

// RunChat starts the chat TUI for a ticker. It blocks until the user quits
// or ctx is cancelled.
func RunChat(ctx context.Context, client api.Client, ticker, outputDir string) error {
	model, err := NewChatModel(ctx, client, ticker, outputDir)
	if err != nil {
		return fmt.Errorf("create chat model: %w", err)
	}
	defer model.cancel()

	model.transcript.Append(chat.RoleBot, welcomeMessage(ticker))
	model.updateViewportContent()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
