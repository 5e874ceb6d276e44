package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/studyshelf/internal/adapters/driving/render"
	"github.com/custodia-labs/studyshelf/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/studyshelf/internal/core/domain"
)

// viewState identifies the active reader view.
type viewState int

const (
	searchView viewState = iota
	resultsView
	readView
	dailyView
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// libraryLoadedMsg carries the result of a background library load.
type libraryLoadedMsg struct {
	snap *domain.Snapshot
	err  error
}

// dailyEntryMsg carries the result of a daily navigation step.
type dailyEntryMsg struct {
	section *domain.Section
	err     error
}

// App is the bubbletea model for the reader.
type App struct {
	ports    *Ports
	keys     *keymap.KeyMap
	renderer *render.Renderer

	state    viewState
	input    textinput.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	term       string
	results    []domain.SearchResult
	total      int
	cursor     int
	definition *domain.GlossaryEntry
	daily      *domain.Section
	status     string
}

// NewApp creates the reader model. Ports must validate.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "Search the library..."
	input.Prompt = "> "
	input.Focus()

	return &App{
		ports:    ports,
		keys:     keymap.DefaultKeyMap(),
		renderer: render.New(nil),
		input:    input,
		state:    searchView,
	}, nil
}

// Init loads the library in the background.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadCmd(false))
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport = viewport.New(msg.Width, max(msg.Height-4, 1))
		a.ready = true
		return a, nil

	case libraryLoadedMsg:
		if msg.err != nil {
			a.status = errorStyle.Render(msg.err.Error())
			return a, nil
		}
		a.status = fmt.Sprintf("%d documents, %d paragraphs", len(msg.snap.Documents), len(msg.snap.Paragraphs))
		return a, nil

	case dailyEntryMsg:
		if msg.err != nil {
			a.status = errorStyle.Render(msg.err.Error())
			return a, nil
		}
		a.daily = msg.section
		a.state = dailyView
		a.syncViewport()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	switch a.state {
	case searchView:
		return a.handleSearchKey(msg)
	case resultsView:
		return a.handleResultsKey(msg)
	case readView, dailyView:
		return a.handleReadingKey(msg)
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Search):
		term := strings.TrimSpace(a.input.Value())
		if term == "" {
			return a, nil
		}
		resp := a.ports.Search.Search(term)
		a.term = term
		a.results = resp.Results
		a.total = resp.TotalHits
		a.cursor = 0
		// A searched term that is itself defined gets its definition shown
		// above the results.
		if entry, err := a.ports.Glossary.Define(term); err == nil {
			a.definition = entry
		} else {
			a.definition = nil
		}
		a.state = resultsView
		return a, nil
	case key.Matches(msg, a.keys.Daily):
		return a, a.dailyCmd(func() (*domain.Section, error) { return a.ports.Daily.Today() })
	case key.Matches(msg, a.keys.Refresh):
		a.status = "refreshing..."
		return a, a.loadCmd(true)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.state = searchView
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Select):
		if len(a.results) > 0 {
			a.state = readView
			a.syncViewport()
		}
	}
	return a, nil
}

func (a *App) handleReadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		if a.state == readView && len(a.results) > 0 {
			a.state = resultsView
		} else {
			a.state = searchView
		}
		return a, nil
	case a.state == dailyView && key.Matches(msg, a.keys.NextDay):
		return a, a.dailyCmd(func() (*domain.Section, error) { return a.ports.Daily.Shift(a.daily, 1) })
	case a.state == dailyView && key.Matches(msg, a.keys.PrevDay):
		return a, a.dailyCmd(func() (*domain.Section, error) { return a.ports.Daily.Shift(a.daily, -1) })
	case a.state == dailyView && key.Matches(msg, a.keys.RandomDay):
		return a, a.dailyCmd(func() (*domain.Section, error) { return a.ports.Daily.Random() })
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// View renders the active view.
func (a *App) View() string {
	if !a.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("StudyShelf"))
	b.WriteString("\n\n")

	switch a.state {
	case searchView:
		b.WriteString(a.input.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(a.status))
		b.WriteString("\n")
		b.WriteString(a.helpLine(a.keys.SearchHelp()))
	case resultsView:
		b.WriteString(a.resultsBody())
		b.WriteString("\n")
		b.WriteString(a.helpLine(a.keys.ResultsHelp()))
	case readView:
		b.WriteString(a.viewport.View())
		b.WriteString("\n")
		b.WriteString(a.helpLine(a.keys.ResultsHelp()))
	case dailyView:
		b.WriteString(a.viewport.View())
		b.WriteString("\n")
		b.WriteString(a.helpLine(a.keys.DailyHelp()))
	}
	return b.String()
}

func (a *App) resultsBody() string {
	if len(a.results) == 0 {
		return mutedStyle.Render(fmt.Sprintf("No results for %q.", a.term))
	}

	var b strings.Builder
	if a.definition != nil {
		b.WriteString(titleStyle.Render(a.definition.Term))
		b.WriteString("  " + mutedStyle.Render(a.definition.Definition))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%d hits for %q\n\n", a.total, a.term)
	start, end := pageBounds(a.cursor, len(a.results), max(a.height-8, 1))
	for i := start; i < end; i++ {
		r := a.results[i]
		marker := "  "
		line := fmt.Sprintf("%s — %s", r.SourceTitle, r.Heading)
		if i == a.cursor {
			marker = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
		b.WriteString("    " + mutedStyle.Render(r.Snippet) + "\n")
	}
	return b.String()
}

// syncViewport fills the reading pane for the current state.
func (a *App) syncViewport() {
	var content string
	switch a.state {
	case readView:
		content = a.paragraphContent()
	case dailyView:
		content = a.dailyContent()
	}
	a.viewport.SetContent(content)
	a.viewport.GotoTop()
}

func (a *App) paragraphContent() string {
	if a.cursor >= len(a.results) {
		return ""
	}
	r := a.results[a.cursor]
	opts := domain.AnnotateOptions{IncludeQuotes: r.SourceID != domain.DailyDocumentID}
	matches := a.ports.Annotate.Resolve(r.Text, a.term, opts)

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.SourceTitle))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(r.Heading))
	b.WriteString("\n\n")
	b.WriteString(a.renderer.Annotate(r.Text, matches))
	b.WriteString("\n")
	return b.String()
}

func (a *App) dailyContent() string {
	if a.daily == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.daily.Heading))
	b.WriteString("\n\n")
	for _, text := range a.daily.Paragraphs {
		// Quote detection is suppressed inside the daily document.
		matches := a.ports.Annotate.Resolve(text, "", domain.AnnotateOptions{})
		b.WriteString(a.renderer.Annotate(text, matches))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (a *App) helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return mutedStyle.Render(strings.Join(parts, " • "))
}

func (a *App) loadCmd(force bool) tea.Cmd {
	return func() tea.Msg {
		snap, err := a.ports.Library.Load(context.Background(), force)
		return libraryLoadedMsg{snap: snap, err: err}
	}
}

func (a *App) dailyCmd(fn func() (*domain.Section, error)) tea.Cmd {
	return func() tea.Msg {
		section, err := fn()
		return dailyEntryMsg{section: section, err: err}
	}
}

func pageBounds(cursor, total, window int) (int, int) {
	if total <= window {
		return 0, total
	}
	start := cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > total {
		end = total
		start = end - window
	}
	return start, end
}
