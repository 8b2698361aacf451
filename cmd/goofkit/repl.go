package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/goofscript/goof"
	"golang.org/x/term"
)

type replTheme struct {
	prompt  lipgloss.Style
	title   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	dim     lipgloss.Style
	name    lipgloss.Style
	heading lipgloss.Style
	panel   lipgloss.Style
}

func newREPLTheme() replTheme {
	var (
		blue  = lipgloss.Color("#3B82F6")
		green = lipgloss.Color("#10B981")
		red   = lipgloss.Color("#EF4444")
		gray  = lipgloss.Color("#6B7280")
		amber = lipgloss.Color("#F59E0B")
	)
	base := lipgloss.NewStyle()
	return replTheme{
		prompt:  base.Foreground(blue).Bold(true),
		title:   base.Foreground(blue).Bold(true).Padding(0, 1),
		ok:      base.Foreground(green),
		failed:  base.Foreground(red),
		dim:     base.Foreground(gray),
		name:    base.Foreground(amber),
		heading: base.Foreground(blue).Bold(true),
		panel:   base.Border(lipgloss.RoundedBorder()).BorderForeground(blue).Padding(0, 1),
	}
}

var theme = newREPLTheme()

// replKeys implements help.KeyMap for the footer and the help panel.
type replKeys struct {
	prev, next, submit, complete key.Binding
	vars, help, clear, quit      key.Binding
}

func (k replKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.help, k.vars, k.clear, k.quit}
}

func (k replKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prev, k.next, k.complete, k.submit},
		{k.help, k.vars, k.clear, k.quit},
	}
}

var bindings = replKeys{
	prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous entry")),
	next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next entry")),
	submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run the line")),
	complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "autocomplete")),
	vars:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "vars")),
	help:     key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "help")),
	clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
}

var replCommandHelp = [][2]string{
	{":help", "toggle this help"},
	{":vars", "toggle the variables panel"},
	{":list", "show numbered program lines"},
	{":clear", "clear the transcript"},
	{":reset", "forget lines and variables"},
	{":quit", "leave the repl"},
}

// transcriptEntry is one block of the scrolling transcript. Entries without
// input are notices such as completion lists.
type transcriptEntry struct {
	input string
	evalResult
}

// recall walks previously submitted entries. pos is len(items) when the
// user is not browsing.
type recall struct {
	items []string
	pos   int
}

func (r *recall) push(entry string) {
	r.items = append(r.items, entry)
	r.pos = len(r.items)
}

func (r *recall) back() (string, bool) {
	if len(r.items) == 0 {
		return "", false
	}
	if r.pos > 0 {
		r.pos--
	}
	return r.items[r.pos], true
}

func (r *recall) forward() (string, bool) {
	if r.pos >= len(r.items) {
		return "", false
	}
	r.pos++
	if r.pos == len(r.items) {
		return "", true
	}
	return r.items[r.pos], true
}

type replModel struct {
	input      textinput.Model
	footer     help.Model
	session    *replSession
	transcript []transcriptEntry
	recall     recall
	width      int
	height     int
	showHelp   bool
	showVars   bool
	quitting   bool
	sized      bool
}

func newREPLModel() replModel {
	in := textinput.New()
	in.Prompt = "goof> "
	in.PromptStyle = theme.prompt
	in.Placeholder = "type a line..."
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	footer := help.New()
	footer.Styles.ShortKey = theme.name
	footer.Styles.ShortDesc = theme.dim
	footer.Styles.FullKey = theme.name
	footer.Styles.FullDesc = theme.dim

	return replModel{input: in, footer: footer, session: newREPLSession()}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - 10
		m.footer.Width = msg.Width
		m.sized = true
		return m, nil
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) handleKey(msg tea.KeyMsg) (replModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, bindings.quit):
		m.quitting = true
		return m, tea.Quit, true
	case key.Matches(msg, bindings.clear):
		m.transcript = nil
	case key.Matches(msg, bindings.vars):
		m.showVars = !m.showVars
	case key.Matches(msg, bindings.help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, bindings.prev):
		if entry, ok := m.recall.back(); ok {
			m.setInput(entry)
		}
	case key.Matches(msg, bindings.next):
		if entry, ok := m.recall.forward(); ok {
			m.setInput(entry)
		}
	case key.Matches(msg, bindings.complete):
		m = m.handleAutocomplete()
	case key.Matches(msg, bindings.submit):
		entry := strings.TrimSpace(m.input.Value())
		if entry == "" {
			return m, nil, true
		}
		m.setInput("")
		if strings.HasPrefix(entry, ":") {
			next, cmd := m.handleCommand(entry)
			next.recall.pos = len(next.recall.items)
			return next, cmd, true
		}
		m.transcript = append(m.transcript, transcriptEntry{input: entry, evalResult: m.session.eval(entry)})
		m.recall.push(entry)
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *replModel) setInput(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
}

func (m replModel) handleCommand(entry string) (replModel, tea.Cmd) {
	name := strings.Fields(entry)[0]
	note := func(output string, failed bool) {
		m.transcript = append(m.transcript, transcriptEntry{
			input:      entry,
			evalResult: evalResult{output: output, failed: failed},
		})
	}

	switch name {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":clear", ":c":
		m.transcript = nil
	case ":list", ":l":
		note(m.session.listing(), false)
	case ":reset", ":r":
		m.session.reset()
		note("Program and variables reset", false)
	default:
		note("Unknown command: "+name, true)
	}
	return m, nil
}

// handleAutocomplete completes the word under the cursor from the keywords
// and the bound variable names.
func (m replModel) handleAutocomplete() replModel {
	text := m.input.Value()
	if text == "" || strings.HasSuffix(text, " ") {
		return m
	}
	fields := strings.Fields(text)
	partial := fields[len(fields)-1]

	var matches []string
	for _, word := range slices.Concat(goof.Keywords(), m.session.env.Names()) {
		if strings.HasPrefix(word, partial) {
			matches = append(matches, word)
		}
	}
	slices.Sort(matches)
	matches = slices.Compact(matches)

	switch len(matches) {
	case 0:
	case 1:
		m.setInput(strings.TrimSuffix(text, partial) + matches[0])
	default:
		m.transcript = append(m.transcript, transcriptEntry{
			evalResult: evalResult{output: "Completions: " + strings.Join(matches, ", ")},
		})
	}
	return m
}

func (m replModel) View() string {
	switch {
	case !m.sized:
		return "Loading..."
	case m.quitting:
		return theme.dim.Render("Goodbye!\n")
	}

	var panels []string
	if m.showVars {
		panels = append(panels, renderVarsPanel(m.session.env))
	}
	if m.showHelp {
		panels = append(panels, m.renderHelpPanel())
	}

	rule := strings.Repeat("─", max(min(m.width-2, 60), 0))
	sections := []string{
		theme.title.Render("goofscript REPL") + " " + theme.dim.Render(fmt.Sprintf("%d line(s)", len(m.session.lines))),
		theme.dim.Render(rule) + "\n",
	}
	budget := m.height - 8
	for _, p := range panels {
		budget -= lipgloss.Height(p) + 1
	}
	sections = append(sections, m.renderTranscript(budget)...)
	for _, p := range panels {
		sections = append(sections, p+"\n")
	}
	sections = append(sections, m.input.View()+"\n", m.footer.ShortHelpView(bindings.ShortHelp()))
	return strings.Join(sections, "\n")
}

// renderTranscript keeps the most recent entries that fit in budget blocks.
func (m replModel) renderTranscript(budget int) []string {
	entries := m.transcript
	if budget >= 0 && len(entries) > budget {
		entries = entries[len(entries)-budget:]
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		if e.input != "" {
			gutter := "  › "
			if e.line > 0 {
				gutter = fmt.Sprintf("%3d › ", e.line)
			}
			b.WriteString(theme.dim.Render(gutter) + e.input + "\n")
		}
		mark, style := "→ ", theme.ok
		if e.failed {
			mark, style = "✗ ", theme.failed
		}
		for _, text := range strings.Split(e.output, "\n") {
			b.WriteString("  " + style.Render(mark+text) + "\n")
		}
		blocks = append(blocks, b.String())
	}
	return blocks
}

func renderVarsPanel(env *goof.Env) string {
	if env.Len() == 0 {
		return theme.panel.Render(theme.dim.Render("No variables defined"))
	}
	rows := []string{theme.heading.Render("Variables")}
	for _, name := range env.Names() {
		v, _ := env.Get(name)
		rows = append(rows, fmt.Sprintf("  %s = %s (%s)", theme.name.Render(name), v, v.Kind()))
	}
	return theme.panel.Render(strings.Join(rows, "\n"))
}

func (m replModel) renderHelpPanel() string {
	rows := []string{theme.heading.Render("Help"), m.footer.FullHelpView(bindings.FullHelp()), ""}
	for _, c := range replCommandHelp {
		rows = append(rows, "  "+theme.name.Render(fmt.Sprintf("%-8s", c[0]))+" "+theme.dim.Render(c[1]))
	}
	return theme.panel.Render(strings.Join(rows, "\n"))
}

func runREPL() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runPlainREPL(os.Stdin, os.Stdout)
	}
	_, err := tea.NewProgram(newREPLModel(), tea.WithAltScreen()).Run()
	return err
}
