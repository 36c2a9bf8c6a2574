package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/shoresquad/internal/catalog"
	"github.com/Makepad-fr/shoresquad/internal/geo"
	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/squad"
	"github.com/Makepad-fr/shoresquad/internal/store/jsonstore"
	"github.com/Makepad-fr/shoresquad/internal/ui"
)

func keys(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(m modelTUI, msgs ...tea.Msg) modelTUI {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(modelTUI)
	}
	return m
}

// run executes cmd and flattens batches into the messages they produce.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, run(c)...)
	}
	return out
}

func testModel(t *testing.T) modelTUI {
	t.Helper()
	return newModel(Options{
		Clock:          clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)),
		Locator:        geo.Unavailable{},
		SnapshotFile:   filepath.Join(t.TempDir(), "state.json"),
		NotifyDuration: 10 * time.Millisecond,
	})
}

func readyModel(t *testing.T) modelTUI {
	t.Helper()
	return send(testModel(t), tea.WindowSizeMsg{Width: 120, Height: 40}, mapPollMsg{attempt: 1})
}

func TestStartup_PlaceholderUntilMapReady(t *testing.T) {
	m := testModel(t)
	require.Len(t, m.list.Items(), 1)
	assert.True(t, m.list.Items()[0].(beachItem).row.Placeholder)
	assert.Equal(t, [4]string{"0", "0 lbs", "0", "0"}, m.screen.stats)
}

func TestMapPoll_RetriesUntilSized(t *testing.T) {
	m := testModel(t)
	next, cmd := m.Update(mapPollMsg{attempt: 1})
	m = next.(modelTUI)
	assert.NotNil(t, cmd)
	assert.False(t, m.sync.MapReady())

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40}, mapPollMsg{attempt: 2})
	assert.True(t, m.sync.MapReady())
	assert.Len(t, m.list.Items(), catalog.Default().Len())
}

func TestMapPoll_GivesUp(t *testing.T) {
	m := testModel(t)
	m = send(m, mapPollMsg{attempt: m.opt.MapInitRetries})
	assert.False(t, m.sync.MapReady())
	assert.Empty(t, m.screen.notes, "notes are drained into the notice line")
	require.NotNil(t, m.notice)
	assert.Equal(t, "Map unavailable", m.notice.Message)
}

func TestLocationFailure_CentersOnFallback(t *testing.T) {
	m := readyModel(t)
	m = send(m, locationMsg{result: geo.Request(testContext(t), geo.Unavailable{})})
	assert.Equal(t, geo.Fallback, m.grid.Center())
	assert.Nil(t, m.sync.State().UserLocation)
}

func TestLocationSuccess_MovesMap(t *testing.T) {
	m := readyModel(t)
	here := model.Location{Coordinate: model.Coordinate{Lat: 27.8, Lng: -82.7}}
	m = send(m, locationMsg{result: geo.Result{Location: here}})
	assert.Equal(t, here.Coordinate, m.grid.Center())
}

func TestStartCleanupAtSelectedBeach(t *testing.T) {
	m := readyModel(t)
	m = send(m, keys("s"), keys("s"))

	st := m.sync.State()
	require.Len(t, st.UpcomingEvents, 2)
	first := catalog.Default().Beaches()[0].Name
	assert.Equal(t, first+" Cleanup", st.UpcomingEvents[0].Name)
	assert.Equal(t, []string{first}, st.Crew.Beaches)
	assert.Equal(t, [4]string{"2", "0 lbs", "0", "1"}, m.screen.stats)
}

func TestPrompt_SubmitAndCancel(t *testing.T) {
	m := readyModel(t)

	m = send(m, keys("n"))
	require.True(t, m.prompting)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.prompting, "blank name keeps the prompt open")
	assert.NotEmpty(t, m.promptErr)
	assert.Empty(t, m.sync.State().UpcomingEvents)

	m = send(m, keys("Dawn Patrol"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.prompting)
	require.Len(t, m.sync.State().UpcomingEvents, 1)
	assert.Equal(t, "Dawn Patrol", m.sync.State().UpcomingEvents[0].Name)

	m = send(m, keys("n"), keys("Never"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.prompting)
	assert.Len(t, m.sync.State().UpcomingEvents, 1)
	assert.Equal(t, 1, m.sync.State().Crew.Cleanups)
}

func TestClearAndReload(t *testing.T) {
	m := readyModel(t)

	m = send(m, keys("c"))
	require.Len(t, m.list.Items(), 1)
	assert.Equal(t, squad.NoBeachesMessage, m.list.Items()[0].(beachItem).row.Name)

	m = send(m, keys("s"))
	assert.Empty(t, m.sync.State().UpcomingEvents, "placeholder row cannot start a cleanup")

	m = send(m, keys("r"))
	assert.Len(t, m.list.Items(), catalog.Default().Len())
	assert.Len(t, m.grid.Markers(), catalog.Default().Len()+1)
}

func TestEnterFocusesBeach(t *testing.T) {
	m := readyModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	b := catalog.Default().Beaches()[0]
	assert.Equal(t, b.Coordinate, m.grid.Center())
	require.NotNil(t, m.grid.OpenMarker())
	assert.Equal(t, b.Popup(), m.grid.OpenMarker().Popup())
}

func TestZoomKeys(t *testing.T) {
	m := readyModel(t)
	z := m.grid.Zoom()
	m = send(m, keys("+"), keys("+"), keys("-"))
	assert.Equal(t, z+1, m.grid.Zoom())
}

func TestExport(t *testing.T) {
	m := readyModel(t)
	m = send(m, keys("s"), keys("x"))

	snap, err := jsonstore.Load(m.opt.SnapshotFile)
	require.NoError(t, err)
	assert.Len(t, snap.UpcomingEvents, 1)
	assert.Len(t, snap.Beaches, catalog.Default().Len())
}

func TestView_Renders(t *testing.T) {
	m := readyModel(t)
	m = send(m, loadWeatherMsg{})
	out := m.View()
	assert.Contains(t, out, "Cleanups")
	assert.Contains(t, out, "72°F Partly Cloudy")
	assert.Contains(t, out, "Coral Cove")

	m = send(m, keys("n"))
	assert.Contains(t, m.View(), "New cleanup event")
}

func TestQuit(t *testing.T) {
	m := readyModel(t)
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
}

func TestNotice_ShowsWholeConfirmation(t *testing.T) {
	m := readyModel(t)
	m = send(m, keys("s"))

	first := catalog.Default().Beaches()[0].Name
	assert.Contains(t, m.View(), `🎉 "`+first+` Cleanup" created! Invite your crew!`)

	m = send(m, locationMsg{result: geo.Request(testContext(t), geo.Unavailable{})})
	assert.Contains(t, m.View(), "Enable location for better beach recommendations")
	assert.NotContains(t, m.View(), "created!", "newest notice replaces the previous one")
}

func TestNotice_ExpiresWhilePrompting(t *testing.T) {
	m := readyModel(t)
	next, cmd := m.Update(keys("s"))
	m = next.(modelTUI)
	require.NotNil(t, m.notice)

	m = send(m, keys("n"))
	require.True(t, m.prompting)
	m = send(m, run(cmd)...)

	assert.Nil(t, m.notice)
	assert.NotContains(t, m.View(), "created!")
	assert.True(t, m.prompting)
}

func TestNotice_StaleTimeoutKeepsNewerNotice(t *testing.T) {
	m := readyModel(t)
	next, cmd := m.Update(keys("s"))
	m = next.(modelTUI)
	m = send(m, keys("x"))
	require.NotNil(t, m.notice)

	m = send(m, run(cmd)...)
	require.NotNil(t, m.notice)
	assert.Contains(t, m.notice.Message, "State exported to")
}

func TestApplyTheme(t *testing.T) {
	prev := lipgloss.ColorProfile()
	defer func() {
		lipgloss.SetColorProfile(prev)
		applyTheme(ui.Theme{Name: "classic"}, true)
	}()

	applyTheme(ui.Theme{Name: "neon"}, true)
	assert.Equal(t, lipgloss.Color("14"), accentStyle.GetForeground())

	lipgloss.SetColorProfile(termenv.TrueColor)
	applyTheme(ui.Theme{Name: "mono"}, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	lipgloss.SetColorProfile(termenv.TrueColor)
	applyTheme(ui.Theme{Name: "classic"}, false)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
