package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Makepad-fr/shoresquad/internal/catalog"
	"github.com/Makepad-fr/shoresquad/internal/config"
	"github.com/Makepad-fr/shoresquad/internal/geo"
	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/observability"
	"github.com/Makepad-fr/shoresquad/internal/squad"
	"github.com/Makepad-fr/shoresquad/internal/store/jsonstore"
	"github.com/Makepad-fr/shoresquad/internal/tui"
	"github.com/Makepad-fr/shoresquad/internal/ui"
	"github.com/Makepad-fr/shoresquad/internal/weather"
)

// Options tune output behavior from root flags.
type Options struct {
	Out io.Writer // defaults to stdout
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	cmd := "run"
	if len(args) > 0 {
		cmd = args[0]
	}
	if len(args) > 1 {
		ui.Fail(cmd + ": unexpected arguments")
		return 2
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0
	case "run", "beaches", "weather", "state":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp(os.Stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}

	switch cmd {
	case "beaches":
		return doBeaches(cfg, opt)
	case "weather":
		return doWeather(opt)
	case "state":
		return doState(cfg, opt)
	}
	return doRun(cfg)
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `shoresquad - beach cleanup crews from your terminal

Usage:
  shoresquad [flags] [subcommand]

Subcommands:
  run        Open the interactive map (default)
  beaches    List the sample beaches
  weather    Show beach weather
  state      Show the last exported state (press x in the map to export)

Flags:
  -theme classic|neon|mono   panels and the interactive map
  -no-color                  plain output everywhere

Examples:
  shoresquad
  GEO_PROVIDER=fixed SHORESQUAD_LOCATION=27.77,-82.64 shoresquad
  shoresquad beaches
`)
}

// -------------- subcommand impls ----------------

func doRun(cfg *config.Config) int {
	logger, f, err := observability.OpenLogFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer f.Close()

	beaches, err := catalog.Load(cfg.BeachesFile)
	if err != nil {
		ui.Fail("beaches: " + err.Error())
		return 1
	}
	logger.Info("shoresquad starting", "beaches", beaches.Len(), "geo", cfg.GeoProvider)

	final, err := tui.Run(tui.Options{
		Catalog:        beaches,
		Locator:        newLocator(cfg),
		Weather:        weather.Mock{},
		Logger:         logger,
		Zoom:           cfg.MapZoom,
		MapInitRetries: cfg.MapInitRetries,
		NotifyDuration: cfg.NotifyDuration,
		SnapshotFile:   cfg.SnapshotFile,
	})
	if err != nil {
		logger.Error("tui exited", "error", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}
	logger.Info("shoresquad stopped", "events", len(final.UpcomingEvents))
	if n := len(final.UpcomingEvents); n > 0 {
		ui.OK(fmt.Sprintf("%d cleanup event(s) planned (press x in the map to export them)", n))
	}
	return 0
}

func newLocator(cfg *config.Config) geo.Locator {
	switch cfg.GeoProvider {
	case config.GeoFixed:
		return geo.Fixed(model.Location{Coordinate: *cfg.Location})
	case config.GeoNone:
		return geo.Unavailable{}
	}
	return geo.NewIPAPI(cfg.GeoURL, cfg.GeoTimeout)
}

func doBeaches(cfg *config.Config, opt Options) int {
	beaches, err := catalog.Load(cfg.BeachesFile)
	if err != nil {
		ui.Fail("beaches: " + err.Error())
		return 1
	}
	ui.Panel(opt.Out, beachLines(beaches.Beaches()))
	return 0
}

func doWeather(opt Options) int {
	r, err := weather.Mock{}.Current(context.Background())
	if err != nil {
		ui.Fail("weather: " + err.Error())
		return 1
	}
	ui.Panel(opt.Out, weatherLines(r))
	return 0
}

func doState(cfg *config.Config, opt Options) int {
	snap, err := jsonstore.Load(cfg.SnapshotFile)
	if errors.Is(err, jsonstore.ErrNoSnapshot) {
		ui.Hint(opt.Out, "no state exported yet")
		ui.Hint(opt.Out, "Tip: press x in `shoresquad` to export")
		return 0
	}
	if err != nil {
		ui.Fail("state: " + err.Error())
		return 1
	}
	ui.Panel(opt.Out, stateLines(snap))
	return 0
}

// -------------- rendering helpers --------------

func beachLines(beaches []model.Beach) []string {
	t := ui.Current()
	high := 0
	for _, b := range beaches {
		if b.Priority() == model.PriorityHigh {
			high++
		}
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			ui.C(t.Title, "Beaches"),
			ui.C(t.Accent, t.SymBeach), len(beaches),
			ui.C(t.DebrisHigh, "high debris"), high),
		"",
	}
	if len(beaches) == 0 {
		return append(lines, ui.C(t.Muted, "no beaches"))
	}
	for i, b := range beaches {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)),
			ui.C(t.DebrisColor(b.Debris), t.SymBeach),
			b.Name,
			ui.C(t.Muted, fmt.Sprintf("· %s · %s · %s", b.Debris, b.LastCleanup, b.Coordinate))))
	}
	return lines
}

func weatherLines(r weather.Report) []string {
	t := ui.Current()
	lines := []string{
		ui.C(t.Title, fmt.Sprintf("%s %d°F %s", weather.Icon(r.Condition), r.Temperature, r.Condition)),
		fmt.Sprintf("wind     %d mph", r.WindSpeed),
		fmt.Sprintf("humidity %s", ui.ProgressBar(r.Humidity, 100, 20)),
		fmt.Sprintf("uv index %d", r.UVIndex),
		"",
	}
	for _, f := range r.Forecast {
		lines = append(lines, fmt.Sprintf("%-9s %s %d°", f.Day, weather.Icon(f.Condition), f.Temp))
	}
	return lines
}

func stateLines(s squad.Snapshot) []string {
	t := ui.Current()
	loc := "unknown (default map center)"
	if s.UserLocation != nil {
		loc = s.UserLocation.Coordinate.String()
	}
	lines := []string{
		ui.C(t.Title, "ShoreSquad state"),
		ui.C(t.Muted, "exported "+s.TakenAt.Local().Format(time.RFC1123)),
		"",
		fmt.Sprintf("%s location  %s", ui.C(t.Accent, t.SymUser), loc),
		fmt.Sprintf("%s on map    %d beaches, %d markers", ui.C(t.Accent, t.SymBeach), len(s.Beaches), s.MarkerCount),
		fmt.Sprintf("cleanups %d · impact %d lbs · members %d · beaches %d",
			s.Crew.Cleanups, s.Crew.Impact, s.Crew.Members, len(s.Crew.Beaches)),
		"",
		ui.C(t.Accent, "Upcoming events"),
	}
	if len(s.UpcomingEvents) == 0 {
		return append(lines, ui.C(t.Muted, "(none)"))
	}
	for i, ev := range s.UpcomingEvents {
		where := ""
		if ev.Beach != "" {
			where = " @ " + ev.Beach
		}
		lines = append(lines, fmt.Sprintf("%s %s%s %s",
			ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)),
			ev.Name, where,
			ui.C(t.Warning, "["+string(ev.Status)+"]")))
	}
	return lines
}
