package viz

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortlab/internal/compare"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	defaultWidth    = 100
	defaultHeight   = 30
	statsWidth      = 40
	historyCapacity = 600
	noticeTTL       = 3 * time.Second
)

type tab int

const (
	tabVisualizer tab = iota
	tabCompare
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

type notice struct {
	id   int
	kind noticeKind
	text string
}

// tickMsg asks for the next step of the run that was current at epoch.
type tickMsg struct{ epoch uint64 }

type startMsg struct{}

type noticeExpiredMsg struct{ id int }

type Options struct {
	Theme     string
	AutoStart bool
	// Compare preselects algorithms on the compare tab; empty selects all.
	Compare []sorting.Algorithm
	Logger  *slog.Logger
}

// Model is the interactive sorting visualizer. Steps are pulled from the
// session one per tick, so the tick interval is the animation speed.
type Model struct {
	ctx     context.Context
	session *experiment.Session
	logger  *slog.Logger

	keys     keyMap
	help     help.Model
	progress progress.Model
	theme    int
	tab      tab
	width    int
	height   int
	showHelp bool

	next    func() (sorting.Step, bool)
	stop    func()
	last    sorting.Step
	history []float64

	algs     []sorting.Algorithm
	selected []bool
	cursor   int
	results  []compare.Result

	notice    notice
	noticeSeq int
	autoStart bool
}

func NewModel(ctx context.Context, session *experiment.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	algs := session.Registry().List()
	selected := make([]bool, len(algs))
	for i, a := range algs {
		selected[i] = len(opts.Compare) == 0
		for _, want := range opts.Compare {
			if want == a {
				selected[i] = true
			}
		}
	}

	m := Model{
		ctx:       ctx,
		session:   session,
		logger:    logger,
		keys:      newKeyMap(),
		help:      help.New(),
		theme:     themeIndex(opts.Theme),
		width:     defaultWidth,
		height:    defaultHeight,
		history:   make([]float64, 0, historyCapacity),
		algs:      algs,
		selected:  selected,
		autoStart: opts.AutoStart,
	}
	m.progress = m.newProgress()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.autoStart {
		return func() tea.Msg { return startMsg{} }
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.progress = m.newProgress()
		return m, nil
	case startMsg:
		cmd := m.start()
		return m, cmd
	case tickMsg:
		cmd := m.advance(msg)
		return m, cmd
	case noticeExpiredMsg:
		if msg.id == m.notice.id {
			m.notice = notice{}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.abandon()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % 2
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.theme = (m.theme + 1) % len(Themes)
		m.progress = m.newProgress()
		cmd := m.notify(noticeInfo, "Theme: "+Themes[m.theme].Name)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.tab == tabCompare {
		cmd = m.handleCompareKey(msg)
	} else {
		cmd = m.handleVisualizerKey(msg)
	}
	return m, cmd
}

func (m *Model) handleVisualizerKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	busy := s.Running()
	settings := s.Settings()

	switch {
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Slower):
		s.SetSpeed(settings.Speed - 1)
		return nil
	case key.Matches(msg, m.keys.Faster):
		s.SetSpeed(settings.Speed + 1)
		return nil
	}

	if busy && m.isLocked(msg) {
		return m.notify(noticeWarning, "Controls are locked while sorting; press r to reset")
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Generate):
		err = s.Generate()
		m.clearRun()
	case key.Matches(msg, m.keys.NextAlgo):
		err = m.shiftAlgorithm(1)
	case key.Matches(msg, m.keys.PrevAlgo):
		err = m.shiftAlgorithm(-1)
	case key.Matches(msg, m.keys.Smaller):
		err = s.SetSize(max(settings.Size-5, experiment.MinSize))
		m.clearRun()
	case key.Matches(msg, m.keys.Larger):
		err = s.SetSize(min(settings.Size+5, experiment.MaxSize))
		m.clearRun()
	case key.Matches(msg, m.keys.Pattern):
		err = s.SetPattern(settings.Pattern.Next())
		m.clearRun()
		if err == nil {
			return m.notify(noticeInfo, "Pattern: "+string(s.Settings().Pattern))
		}
	}
	if err != nil {
		return m.notify(noticeError, err.Error())
	}
	return nil
}

func (m *Model) isLocked(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.keys.Generate, m.keys.NextAlgo, m.keys.PrevAlgo,
		m.keys.Smaller, m.keys.Larger, m.keys.Pattern)
}

func (m *Model) shiftAlgorithm(dir int) error {
	if len(m.algs) == 0 {
		return nil
	}
	cur := 0
	for i, a := range m.algs {
		if a == m.session.Algorithm() {
			cur = i
		}
	}
	next := m.algs[(cur+dir+len(m.algs))%len(m.algs)]
	if err := m.session.SetAlgorithm(next); err != nil {
		return err
	}
	m.clearRun()
	m.session.Array().MarkAll(sorting.Normal)
	return nil
}

func (m *Model) handleCompareKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.algs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.selected) {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(msg, m.keys.RunCompare):
		return m.runCompare()
	}
	return nil
}

func (m *Model) selection() []sorting.Algorithm {
	var out []sorting.Algorithm
	for i, on := range m.selected {
		if on {
			out = append(out, m.algs[i])
		}
	}
	return out
}

func (m *Model) runCompare() tea.Cmd {
	results, err := m.session.Compare(m.selection())
	switch {
	case errors.Is(err, sorting.ErrTooFewAlgorithms):
		return m.notify(noticeWarning, "Please select at least 2 algorithms to compare")
	case err != nil:
		return m.notify(noticeError, err.Error())
	}
	m.results = results
	return m.notify(noticeSuccess, fmt.Sprintf("Compared %d algorithms on %d values", len(results), m.session.Settings().CompareSize))
}

// start begins a run of the selected algorithm and schedules the first tick.
func (m *Model) start() tea.Cmd {
	if m.session.Running() {
		return m.notify(noticeWarning, "A sort is already running")
	}
	seq, err := m.session.Steps(m.ctx)
	if err != nil {
		return m.notify(noticeError, err.Error())
	}
	m.next, m.stop = iter.Pull(seq)
	m.last = sorting.Step{}
	m.history = m.history[:0]

	name := m.session.Algorithm().Info().Name
	return tea.Batch(
		m.notify(noticeInfo, "Sorting with "+name),
		m.tick(experiment.Pace(m.session.Settings().Speed)),
	)
}

func (m *Model) tick(d time.Duration) tea.Cmd {
	epoch := m.session.Epoch()
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{epoch: epoch} })
}

// advance pulls one step. Ticks from before a reset are dropped.
func (m *Model) advance(msg tickMsg) tea.Cmd {
	if msg.epoch != m.session.Epoch() || m.next == nil {
		return nil
	}

	st, ok := m.next()
	if !ok {
		return m.finishRun()
	}
	m.last = st
	m.history = append(m.history, float64(st.Counts.Comparisons))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}

	if st.Kind == sorting.StepDone {
		// resume once more so the sequence returns and the run is closed
		m.next()
		return m.finishRun()
	}
	return m.tick(experiment.Pace(m.session.Settings().Speed))
}

func (m *Model) finishRun() tea.Cmd {
	m.stop()
	m.next, m.stop = nil, nil

	if err := m.session.LastError(); err != nil {
		m.logger.Error("animation failed", "err", err)
		return m.notify(noticeError, "Sort failed: "+err.Error())
	}
	if m.last.Kind != sorting.StepDone {
		return nil
	}
	stats := m.session.Stats()
	return m.notify(noticeSuccess, fmt.Sprintf("%s finished: %d comparisons, %d swaps",
		m.session.Algorithm().Info().Name, stats.Comparisons, stats.Swaps))
}

func (m *Model) reset() tea.Cmd {
	m.session.Reset()
	m.clearRun()
	return m.notify(noticeInfo, "Array reset")
}

// clearRun drops the UI side of any run. The session must already be idle
// or reset, so stop only unwinds a discarded sequence.
func (m *Model) clearRun() {
	if m.stop != nil {
		m.stop()
	}
	m.next, m.stop = nil, nil
	m.last = sorting.Step{}
	m.history = m.history[:0]
}

func (m *Model) abandon() {
	if m.stop != nil {
		m.stop()
		m.next, m.stop = nil, nil
	}
}

func (m *Model) notify(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	id := m.noticeSeq
	m.notice = notice{id: id, kind: kind, text: text}
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
}

func (m Model) newProgress() progress.Model {
	t := Themes[m.theme]
	return progress.New(
		progress.WithGradient(string(t.Primary), string(t.Success)),
		progress.WithWidth(statsWidth-6),
	)
}

// View renders the active tab with notices and key help.
func (m Model) View() string {
	st := newStyles(Themes[m.theme])

	var body string
	switch m.tab {
	case tabCompare:
		body = m.viewCompare(st)
	default:
		body = m.viewVisualizer(st)
	}

	helpView := m.help.View(visualizerKeys{m.keys})
	if m.tab == tabCompare {
		helpView = m.help.View(compareKeys{m.keys})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(st),
		body,
		"",
		m.viewNotice(st),
		helpView,
	)
}

func (m Model) viewTabs(st styles) string {
	names := []string{"Visualizer", "Compare"}
	tabs := make([]string, len(names))
	for i, n := range names {
		if tab(i) == m.tab {
			tabs[i] = st.activeTab.Render(n)
		} else {
			tabs[i] = st.tab.Render(n)
		}
	}
	title := st.title.Render(" sortlab ")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, append([]string{title}, tabs...)...)
}

func (m Model) viewNotice(st styles) string {
	if m.notice.text == "" {
		return ""
	}
	var style lipgloss.Style
	icon := "ℹ"
	switch m.notice.kind {
	case noticeSuccess:
		style, icon = st.success, "✔"
	case noticeWarning:
		style, icon = st.warning, "!"
	case noticeError:
		style, icon = st.failure, "✖"
	default:
		style = st.info
	}
	return style.Render(icon + " " + m.notice.text)
}

func (m Model) status() string {
	switch {
	case m.session.Running():
		return "SORTING"
	case m.last.Kind == sorting.StepDone:
		return "SORTED"
	}
	return "IDLE"
}

func (m Model) viewVisualizer(st styles) string {
	arr := m.session.Array()
	barsW := max(m.width-statsWidth-4, 10)
	barsH := max(m.height-8, 8)
	bars := lipgloss.NewStyle().Padding(1, 1).Render(RenderBars(arr, barsW, barsH, st.theme))

	settings := m.session.Settings()
	stats := m.session.Stats()
	info := m.session.Algorithm().Info()

	var s strings.Builder
	s.WriteString(GradientText(info.Name, st.theme.Primary, st.theme.Secondary) + "\n")
	s.WriteString(st.muted.Width(statsWidth-4).Render(info.Description) + "\n")
	s.WriteString(Separator(statsWidth-4, st.theme.Muted) + "\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", info.TimeComplexity)
	row("Space", info.SpaceComplexity)
	row("Comparisons", fmt.Sprint(stats.Comparisons))
	row("Swaps", fmt.Sprint(stats.Swaps))
	row("Elapsed", fmt.Sprintf("%.0fms", compare.Millis(stats.Elapsed(time.Now()))))
	row("Size", fmt.Sprint(settings.Size))
	row("Speed", fmt.Sprintf("%d (%v)", settings.Speed, experiment.Pace(settings.Speed)))
	row("Pattern", string(settings.Pattern))
	row("Status", st.selected.Render(m.status()))

	sorted := 0.0
	if len(arr) > 0 {
		sorted = float64(arr.CountState(sorting.Sorted)) / float64(len(arr))
	}
	s.WriteString("\n" + m.progress.ViewAs(sorted) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(statsWidth-12),
			asciigraph.Caption("comparisons"),
		)
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	panel := st.panel.Width(statsWidth).Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, bars, panel)
}

func (m Model) viewCompare(st styles) string {
	var s strings.Builder
	s.WriteString(st.title.Render("Select algorithms") + "\n\n")
	for i, a := range m.algs {
		box := "[ ]"
		if m.selected[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, a.Info().Name)
		if i == m.cursor {
			s.WriteString(st.selected.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.value.Render(line) + "\n")
		}
	}

	if len(m.results) == 0 {
		s.WriteString("\n" + st.muted.Render(fmt.Sprintf("press enter to benchmark on %d random values", m.session.Settings().CompareSize)))
		return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
	}

	s.WriteString("\n" + st.label.Render("") +
		st.muted.Render(fit("Algorithm", 16)+fit("Time", 11)+fit("Comps", 8)+fit("Swaps", 8)+fit("Score", 7)+"Badge") + "\n")
	for _, r := range m.results {
		line := fit(r.Name, 16) +
			fit(fmt.Sprintf("%.3fms", r.Millis), 11) +
			fit(fmt.Sprint(r.Counts.Comparisons), 8) +
			fit(fmt.Sprint(r.Counts.Swaps), 8) +
			fit(fmt.Sprint(r.Efficiency), 7)
		s.WriteString(st.label.Render(fmt.Sprintf("#%d", r.Rank)) + st.value.Render(line) + st.badge(r.Badge).Render(r.Badge.String()) + "\n")
	}

	s.WriteString("\n" + m.timeChart(st, max(m.width-40, 20)))
	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}

// timeChart draws one horizontal bar per result scaled to the slowest.
func (m Model) timeChart(st styles, width int) string {
	slowest := 0.0
	for _, r := range m.results {
		slowest = max(slowest, r.Millis)
	}
	bar := lipgloss.NewStyle().Foreground(st.theme.Primary)

	var b strings.Builder
	for _, r := range m.results {
		n := 1
		if slowest > 0 {
			n = max(1, int(r.Millis/slowest*float64(width)))
		}
		b.WriteString(st.muted.Render(fit(r.Name, 16)) + bar.Render(strings.Repeat("█", n)) + "\n")
	}
	return b.String()
}

// Run starts the interactive UI on the alternate screen.
func Run(ctx context.Context, session *experiment.Session, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, session, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
