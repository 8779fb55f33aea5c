package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/log"
	"github.com/ardnew/reldate/zoned"
)

// editPresetsMsg is sent when preset editing completes successfully.
type editPresetsMsg struct{ presets []lang.Preset }

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a
// validation error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-validation
// error.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help     Print this cruft
  presets  List presets with their current values
  zone     Print the zone and the current time
  edit     Edit the session's presets in external $EDITOR
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type an expression (now-1d/d) or an absolute date (2025-12-01)
  The value is recomputed as you type; errors point at the offending character
  Press Tab / Shift-Tab to cycle through matching presets
  Press Enter to print the value and record it in history
  Press Esc to toggle between eval and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// prefix returns the history file prefix of the mode.
func (m inputMode) prefix() string {
	if m == modeCtrl {
		return "C:"
	}

	return "E:"
}

// Styles.
//
//nolint:gochecknoglobals
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the command echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// formatCtrlCommand formats the control command echo line with prompt and input
// styled.
func formatCtrlCommand(input string) string {
	return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
}

// Config configures a REPL session.
type Config struct {
	// Presets are offered as completions.
	Presets []lang.Preset
	// HistoryFile persists history across sessions. Empty keeps it in memory.
	HistoryFile string
	// Layout is the dayjs-style pattern printed beside each ISO value.
	Layout string
	Logger log.Logger
	// Options configure every evaluation.
	Options []lang.Option
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	presets      []lang.Preset
	opts         []lang.Option
	layout       string
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Run starts an interactive session and blocks until the user quits.
func Run(ctx context.Context, cfg Config) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg.Logger.TraceContext(
		ctx,
		"repl start",
		slog.String("history", cfg.HistoryFile),
		slog.Int("preset_count", len(cfg.Presets)),
	)

	history := NewHistory(cfg.HistoryFile)
	if err := history.Load(); err != nil {
		cfg.Logger.WarnContext(ctx, "could not load history",
			slog.String("file", cfg.HistoryFile),
			slog.String("error", err.Error()),
		)
	}

	cfg.Logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, cfg, history)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, cfg Config, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		presets:    cfg.Presets,
		opts:       cfg.Options,
		layout:     cfg.Layout,
		logger:     cfg.Logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editPresetsMsg:
		m.presets = msg.presets
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl edit complete",
			slog.Int("preset_count", len(m.presets)),
		)

		return m, tea.Println(resultStyle.Render("✔ presets updated"))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(
			errorStyle.Render("🗴 error: " + msg.err.Error()),
		)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		pos := m.historyIdx + 1 // 1-based for display
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(pos)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "":
		var hint string
		if m.mode == modeEval {
			hint = "Type an expression or press Esc for commands"
		} else {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case m.mode == modeEval && !m.tabActive:
		b.WriteString(m.preview(input))
	}

	b.WriteString("\n")

	// Completion bar.
	if m.tabActive || (len(m.matches) > 0 && !m.resolves(input)) {
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

// resolves reports whether input currently yields a value.
func (m model) resolves(input string) bool {
	if m.mode != modeEval {
		return false
	}

	_, err := lang.Resolve(m.ctxFunc(), input, m.opts...)

	return err == nil
}

// preview renders the live value of input, or its error with a caret under
// the offending character of the input line.
func (m model) preview(input string) string {
	v, err := lang.Resolve(m.ctxFunc(), input, m.opts...)
	if err == nil {
		return resultStyle.Render(m.formatValue(v.Time))
	}

	var le *lang.Error
	if !errors.As(err, &le) {
		return errorStyle.Render(err.Error())
	}

	// Align the caret under the input, past the prompt.
	indent := lipgloss.Width(m.input.Prompt) + caretColumn(le.Source, le.Position)

	return strings.Repeat(" ", indent) + errorStyle.Render("^ "+le.Message)
}

// caretColumn returns the display width of the first pos runes of src.
// Tabs count as one column; the text input stores them as a space.
func caretColumn(src string, pos int) int {
	runes := []rune(src)
	pos = min(max(pos, 0), len(runes))

	return lipgloss.Width(strings.ReplaceAll(string(runes[:pos]), "\t", " "))
}

// formatValue renders t as ISO 8601 followed by the session layout.
func (m model) formatValue(t zoned.Time) string {
	return t.ISO() + "  " + t.Format(m.layout)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1)

	case tea.KeyShiftTab:
		return m.cycle(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyShiftUp:
		return m.historyPrevInMode()

	case tea.KeyShiftDown:
		return m.historyNextInMode()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m)

			return m, nil
		}

		return m.toggleMode()
	}

	// For any other key (runes, backspace, delete, arrows, etc.),
	// update input and recompute matches.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping around. A single
// candidate is accepted immediately.
func (m model) cycle(step int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	if len(m.matches) == 1 {
		m.accept(m.matches[0])
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	m.accept(m.matches[m.suggIdx])

	return m, nil
}

// accept replaces the input with the completion for match.
func (m *model) accept(match fuzzy.Match) {
	text := m.completion(match)

	m.input.SetValue(text)
	m.input.SetCursor(len(text))
}

// refreshMatches recomputes fuzzy matches for the current input state.
func refreshMatches(m *model) {
	if m.tabActive {
		return
	}

	m.matches = m.computeMatches()
	m.suggIdx = -1
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	// Reset both mode inputs after submission
	m.evalText = ""
	m.evalCursor = 0
	m.ctrlText = ""
	m.ctrlCursor = 0
	m.input.SetValue("")
	m.matches = nil

	if _, err := m.history.WriteWithMode(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not write history",
			slog.String("error", err.Error()))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl command",
			slog.String("input", input),
		)

		return m.executeCommand(input)
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval",
		slog.String("input", input),
	)

	echoCmd := tea.Println(formatCommand(input))

	v, err := lang.Resolve(m.ctxFunc(), input, m.opts...)
	if err != nil {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl eval result",
			slog.String("error", err.Error()),
		)

		return m, tea.Sequence(
			echoCmd,
			tea.Println(errorStyle.Render(diagnostic(err))),
		)
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval result",
		slog.String("value", v.Time.ISO()),
		slog.Bool("relative", v.Relative),
	)

	return m, tea.Sequence(
		echoCmd,
		tea.Println(resultStyle.Render(m.formatValue(v.Time))),
	)
}

// diagnostic renders err with the source and a caret when it carries a
// position.
func diagnostic(err error) string {
	var le *lang.Error
	if errors.As(err, &le) {
		return "error: " + le.Message + "\n" + le.Caret()
	}

	return "error: " + err.Error()
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echoCmd := tea.Println(formatCtrlCommand(input))

	cmd := parts[0]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl exec command",
		slog.String("command", cmd),
		slog.Any("args", parts[1:]),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "p", "presets":
		return m, tea.Sequence(echoCmd, tea.Println(m.listPresets()))

	case "z", "zone":
		return m, tea.Sequence(echoCmd, tea.Println(m.zoneInfo()))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echoCmd, m.handleEdit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + cmd + " (try 'help')"),
		)
	}
}

func (m model) handleEdit() tea.Cmd {
	cmd := &editPresetsCommand{
		presets: m.presets,
		opts:    m.opts,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		if errors.Is(err, ErrEditDeclined) {
			return editDeclinedMsg{}
		}

		if err != nil {
			return editErrorMsg{err: err}
		}

		if cmd.newPresets == nil {
			return editCancelledMsg{}
		}

		return editPresetsMsg{presets: cmd.newPresets}
	})
}

func (m model) listPresets() string {
	var b strings.Builder

	for _, p := range m.presets {
		value := errorStyle.Render("invalid")

		if t, err := lang.Evaluate(m.ctxFunc(), p.Value, m.opts...); err == nil {
			value = t.ISO()
		}

		fmt.Fprintf(&b, "  %-10s %s %s\n", p.Value, value, hintStyle.Render(p.Title))
	}

	return b.String()
}

func (m model) zoneInfo() string {
	now, err := lang.Evaluate(m.ctxFunc(), "now", m.opts...)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	return fmt.Sprintf("  zone %s (week starts %s)\n  now  %s",
		now.Zone(), now.WeekStart(), m.formatValue(now))
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m.historyIdx--

		if entry, err := m.history.GetEntry(m.historyIdx); err == nil {
			if m.mode != entry.Mode {
				m, _ = m.switchToMode(entry.Mode)
			}

			m.input.SetValue(entry.Line)
			m.input.SetCursor(len(entry.Line))
			refreshMatches(&m)
		}
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < m.history.Len()-1 {
		m.historyIdx++

		if entry, err := m.history.GetEntry(m.historyIdx); err == nil {
			if m.mode != entry.Mode {
				m, _ = m.switchToMode(entry.Mode)
			}

			m.input.SetValue(entry.Line)
			m.input.SetCursor(len(entry.Line))
			refreshMatches(&m)
		}
	} else {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m)
	}

	return m, nil
}

func (m model) historyPrevInMode() (model, tea.Cmd) {
	for i := m.historyIdx - 1; i >= 0; i-- {
		if entry, err := m.history.GetEntry(i); err == nil && entry.Mode == m.mode {
			m.historyIdx = i
			m.input.SetValue(entry.Line)
			m.input.SetCursor(len(entry.Line))
			refreshMatches(&m)

			return m, nil
		}
	}

	return m, nil
}

func (m model) historyNextInMode() (model, tea.Cmd) {
	for i := m.historyIdx + 1; i < m.history.Len(); i++ {
		if entry, err := m.history.GetEntry(i); err == nil && entry.Mode == m.mode {
			m.historyIdx = i
			m.input.SetValue(entry.Line)
			m.input.SetCursor(len(entry.Line))
			refreshMatches(&m)

			return m, nil
		}
	}

	// Reached end of mode-specific history, clear input
	if m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m)
	}

	return m, nil
}

// toggleMode switches between eval and control modes, preserving input state.
func (m model) toggleMode() (model, tea.Cmd) {
	if m.mode == modeEval {
		return m.switchToMode(modeCtrl)
	}

	return m.switchToMode(modeEval)
}

// switchToMode switches to the specified mode, preserving input state.
func (m model) switchToMode(mode inputMode) (model, tea.Cmd) {
	if m.mode == modeEval {
		m.evalText = m.input.Value()
		m.evalCursor = m.input.Position()
	} else {
		m.ctrlText = m.input.Value()
		m.ctrlCursor = m.input.Position()
	}

	m.mode = mode
	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m)

	return m, nil
}
