package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/Makepad-fr/shoresquad/internal/catalog"
	"github.com/Makepad-fr/shoresquad/internal/geo"
	"github.com/Makepad-fr/shoresquad/internal/mapview"
	"github.com/Makepad-fr/shoresquad/internal/squad"
	"github.com/Makepad-fr/shoresquad/internal/store/jsonstore"
	"github.com/Makepad-fr/shoresquad/internal/ui"
	"github.com/Makepad-fr/shoresquad/internal/weather"
)

// Options wire the interactive client.
type Options struct {
	Catalog        *catalog.Catalog
	Locator        geo.Locator
	Weather        weather.Provider
	Logger         *slog.Logger
	Clock          clockwork.Clock
	Zoom           int
	MapInitRetries int
	NotifyDuration time.Duration
	SnapshotFile   string
}

// beachItem adapts a squad.BeachRow to bubbles/list.Item
type beachItem struct {
	row squad.BeachRow
}

func (i beachItem) FilterValue() string {
	if i.row.Placeholder {
		return ""
	}
	return i.row.Name
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(beachItem)
	if it.row.Placeholder {
		fmt.Fprintln(w, "  "+mutedStyle.Render(it.row.Name))
		return
	}
	badge := priorityStyle(it.row.Priority).Render("●")
	detail := mutedStyle.Render(fmt.Sprintf("· %s · %s", it.row.Debris, it.row.LastCleanup))
	line := fmt.Sprintf("%s %s %s", badge, it.row.Name, detail)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// screen is the squad.Surface the synchronizer renders into. The model
// drains it after each update.
type screen struct {
	rows      []squad.BeachRow
	rowsDirty bool
	stats     [4]string
	weather   *weather.Report
	notes     []squad.Notification
}

func (s *screen) SetBeaches(rows []squad.BeachRow) {
	s.rows = rows
	s.rowsDirty = true
}
func (s *screen) SetStats(stats [4]string) { s.stats = stats }
func (s *screen) SetWeather(r weather.Report) {
	s.weather = &r
}
func (s *screen) Notify(n squad.Notification) { s.notes = append(s.notes, n) }

type locationMsg struct{ result geo.Result }
type mapPollMsg struct{ attempt int }
type loadWeatherMsg struct{}

// noticeExpiredMsg hides the notice it was scheduled for; a newer notice
// has a higher seq and stays.
type noticeExpiredMsg struct{ seq int }

type modelTUI struct {
	list   list.Model
	grid   *mapview.Grid
	sync   *squad.Synchronizer
	screen *screen
	opt    Options

	// Inline event name prompt
	prompting bool
	ti        textinput.Model
	promptErr string

	// Latest notification, shown on its own line above the list
	notice    *squad.Notification
	noticeSeq int

	width, height int
}

var (
	startBind  = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start cleanup here"))
	newBind    = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new event"))
	clearBind  = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear markers"))
	reloadBind = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload beaches"))
	zoomBind   = key.NewBinding(key.WithKeys("+", "=", "-"), key.WithHelp("+/-", "zoom"))
	exportBind = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export state"))
)

func newModel(opt Options) modelTUI {
	if opt.Catalog == nil {
		opt.Catalog = catalog.Default()
	}
	if opt.Weather == nil {
		opt.Weather = weather.Mock{}
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Zoom == 0 {
		opt.Zoom = mapview.DefaultZoom
	}
	if opt.MapInitRetries <= 0 {
		opt.MapInitRetries = 10
	}
	if opt.NotifyDuration <= 0 {
		opt.NotifyDuration = 4 * time.Second
	}

	scr := &screen{}
	grid := mapview.NewGrid(opt.Zoom)
	sync := squad.New(squad.NewAppState(), grid, opt.Catalog, scr, squad.Options{
		Clock:  opt.Clock,
		Logger: opt.Logger,
		Zoom:   opt.Zoom,
	})

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Beaches"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("beach", "beaches")

	binds := []key.Binding{startBind, newBind, clearBind, reloadBind, zoomBind, exportBind}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds[:3] }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	m := modelTUI{
		list:   l,
		grid:   grid,
		sync:   sync,
		screen: scr,
		opt:    opt,
	}
	// text input for the event name prompt
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "Name your cleanup event..."
	m.ti.CharLimit = 80

	sync.Refresh()
	m.flush()
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits. It
// returns the state as it was on exit.
func Run(opt Options) (squad.Snapshot, error) {
	applyTheme(ui.Current(), ui.ColorEnabled())
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return squad.Snapshot{}, err
	}
	fm, ok := finalModel.(modelTUI)
	if !ok {
		return m.sync.Snapshot(), nil
	}
	return fm.sync.Snapshot(), nil
}

func (m modelTUI) Init() tea.Cmd {
	locator := m.opt.Locator
	return tea.Batch(
		func() tea.Msg { return locationMsg{result: geo.Request(context.Background(), locator)} },
		func() tea.Msg { return loadWeatherMsg{} },
		func() tea.Msg { return mapPollMsg{attempt: 1} },
	)
}

func pollMap(attempt int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return mapPollMsg{attempt: attempt} })
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	m, cmd := m.handle(msg)
	cmds = append(cmds, cmd, m.flush())
	return m, tea.Batch(cmds...)
}

func (m modelTUI) handle(msg tea.Msg) (modelTUI, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case locationMsg:
		m.sync.ApplyLocation(msg.result)
		return m, nil
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	case loadWeatherMsg:
		_ = m.sync.LoadWeather(context.Background(), m.opt.Weather)
		return m, nil
	case mapPollMsg:
		if m.sync.InitMap() {
			return m, nil
		}
		if msg.attempt >= m.opt.MapInitRetries {
			m.opt.Logger.Warn("map did not become ready", "attempts", msg.attempt)
			m.sync.Notify(squad.KindWarning, "Map unavailable")
			return m, nil
		}
		return m, pollMap(msg.attempt + 1)
	}

	// prompt mode
	if m.prompting {
		x, ok := msg.(tea.KeyMsg)
		if ok {
			switch x.String() {
			case "enter":
				name := strings.TrimSpace(m.ti.Value())
				if name == "" {
					m.promptErr = "Event name cannot be empty"
					return m, nil
				}
				m.sync.HandleStartCleanup("", squad.Answer(name))
				m.closePrompt()
				return m, nil
			case "esc":
				m.sync.HandleStartCleanup("", squad.Cancel)
				m.closePrompt()
				return m, nil
			}
		}
		var tiCmd, listCmd tea.Cmd
		m.ti, tiCmd = m.ti.Update(msg)
		if !ok {
			// keys belong to the prompt, everything else still drives the list
			m.list, listCmd = m.list.Update(msg)
		}
		return m, tea.Batch(tiCmd, listCmd)
	}

	if x, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch x.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if row, ok := m.selected(); ok {
				m.sync.FocusBeach(row.Name)
			}
			return m, nil
		case "s":
			if row, ok := m.selected(); ok {
				m.sync.HandleStartCleanup(row.Name, nil)
			}
			return m, nil
		case "n":
			m.prompting = true
			m.promptErr = ""
			m.ti.SetValue("")
			m.layout()
			return m, m.ti.Focus()
		case "c":
			m.sync.ClearAllMarkers()
			return m, nil
		case "r":
			m.sync.AddBeachMarkers()
			return m, nil
		case "+", "=":
			m.sync.Zoom(1)
			return m, nil
		case "-":
			m.sync.Zoom(-1)
			return m, nil
		case "x":
			m.export()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *modelTUI) closePrompt() {
	m.prompting = false
	m.promptErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.layout()
}

func (m *modelTUI) export() {
	p, err := jsonstore.Save(m.opt.SnapshotFile, m.sync.Snapshot())
	if err != nil {
		m.opt.Logger.Warn("export state failed", "error", err)
		m.sync.Notify(squad.KindError, "Export failed: "+err.Error())
		return
	}
	m.opt.Logger.Info("state exported", "path", p)
	m.sync.Notify(squad.KindSuccess, "State exported to "+p)
}

func (m modelTUI) selected() (squad.BeachRow, bool) {
	it, ok := m.list.SelectedItem().(beachItem)
	if !ok || it.row.Placeholder {
		return squad.BeachRow{}, false
	}
	return it.row, true
}

// flush moves what the synchronizer rendered into the list widget.
func (m *modelTUI) flush() tea.Cmd {
	var cmds []tea.Cmd
	if m.screen.rowsDirty {
		items := make([]list.Item, 0, len(m.screen.rows))
		for _, r := range m.screen.rows {
			items = append(items, beachItem{row: r})
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.screen.rowsDirty = false
	}
	if n := len(m.screen.notes); n > 0 {
		last := m.screen.notes[n-1]
		m.notice = &last
		m.noticeSeq++
		seq := m.noticeSeq
		cmds = append(cmds, tea.Tick(m.opt.NotifyDuration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		}))
		m.screen.notes = nil
	}

	st := m.sync.State()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d",
		titleStyle.Render("Beaches"),
		highStyle.Render("●"), len(st.Beaches),
		accentStyle.Render("Events"), len(st.UpcomingEvents),
	)
	return tea.Batch(cmds...)
}

const (
	statsHeight   = 4
	weatherHeight = 5
	chromeHeight  = 4
	noticeHeight  = 1
)

func (m *modelTUI) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	listW := m.width * 2 / 5
	listH := m.height - chromeHeight - noticeHeight
	if m.prompting {
		listH -= 4
	}
	m.list.SetSize(listW, max(listH, 3))

	mapW := m.width - listW - 8
	mapH := m.height - statsHeight - weatherHeight - chromeHeight - 2
	m.grid.Resize(max(mapW, 0), max(mapH, 0))
}

func (m modelTUI) View() string {
	left := m.noticeView() + "\n" + m.list.View()
	if m.prompting {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "New cleanup event"
		if m.promptErr != "" {
			title += " — " + errorStyle.Render(m.promptErr)
		}
		left = left + "\n" + bar.Render(title+"\n"+m.ti.View())
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		panelString(m.grid.View()),
		m.statsView(),
		panelString(m.weatherView()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, panelString(left), right)
}

func (m modelTUI) noticeView() string {
	if m.notice == nil {
		return ""
	}
	return notificationStyle(m.notice.Kind).Render(m.notice.Message)
}

func (m modelTUI) statsView() string {
	cards := make([]string, 0, len(statLabels))
	for i, label := range statLabels {
		v := m.screen.stats[i]
		if v == "" {
			v = "0"
		}
		cards = append(cards, cardStyle.Width(12).Render(statNumberStyle.Render(v)+"\n"+mutedStyle.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m modelTUI) weatherView() string {
	w := m.screen.weather
	if w == nil {
		return mutedStyle.Render("Loading weather…")
	}
	now := fmt.Sprintf("%s %d°F %s", weather.Icon(w.Condition), w.Temperature, w.Condition)
	details := mutedStyle.Render(fmt.Sprintf("wind %d mph · humidity %d%% · UV %d", w.WindSpeed, w.Humidity, w.UVIndex))
	days := make([]string, 0, len(w.Forecast))
	for _, f := range w.Forecast {
		days = append(days, fmt.Sprintf("%s %s %d°", f.Day, weather.Icon(f.Condition), f.Temp))
	}
	return titleStyle.Render(now) + "\n" + details + "\n" + strings.Join(days, "  |  ")
}
