package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"asset-tracker/internal/api"
	"asset-tracker/internal/client"
	"asset-tracker/internal/navigator"
	"asset-tracker/internal/push"

	tea "github.com/charmbracelet/bubbletea"
)

// rangeLayout is the input format of both ends of a time range.
const rangeLayout = "2006-01-02 15:04"

const requestTimeout = 30 * time.Second

var ErrInvalidRange = errors.New("invalid time range")

// backend is the server API the dashboard needs.
type backend interface {
	Statuses(ctx context.Context, q navigator.Query) (navigator.Page, error)
	Detail(ctx context.Context, statusID int64) (navigator.Detail, error)
	Trackers(ctx context.Context, q client.TableQuery) (client.TrackerPage, error)
	Settings(ctx context.Context, imei string) (api.DeviceSettings, error)
	SaveSettings(ctx context.Context, s api.DeviceSettings) error
	ExportURL(imei string, span navigator.TimeRange) string
	Export(ctx context.Context, imei string, span navigator.TimeRange, w io.Writer) (int64, error)
}

type trackersLoadedMsg struct {
	page client.TrackerPage
	err  error
}

type navResultMsg struct {
	res navigator.Result
}

type notificationMsg struct {
	notification push.Notification
	ok           bool
}

type settingsLoadedMsg struct {
	settings api.DeviceSettings
	err      error
}

type settingsSavedMsg struct {
	settings api.DeviceSettings
	err      error
}

type exportDoneMsg struct {
	url   string
	path  string
	bytes int64
	err   error
}

func loadTrackersCmd(b backend, q client.TableQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		page, err := b.Trackers(ctx, q)
		return trackersLoadedMsg{page: page, err: err}
	}
}

// fetchCmd runs a navigator request off the event loop. The result is
// applied back on the loop through navResultMsg.
func fetchCmd(nav *navigator.Navigator, req *navigator.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return navResultMsg{res: nav.Fetch(req)}
	}
}

func waitForNotificationCmd(ch <-chan push.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		return notificationMsg{notification: n, ok: ok}
	}
}

func loadSettingsCmd(b backend, imei string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		s, err := b.Settings(ctx, imei)
		return settingsLoadedMsg{settings: s, err: err}
	}
}

func saveSettingsCmd(b backend, s api.DeviceSettings) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return settingsSavedMsg{settings: s, err: b.SaveSettings(ctx, s)}
	}
}

func exportCmd(b backend, dir, imei string, span navigator.TimeRange) tea.Cmd {
	return func() tea.Msg {
		url := b.ExportURL(imei, span)
		path := filepath.Join(dir, exportFileName(imei, span))
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{url: url, path: path, err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		n, err := b.Export(ctx, imei, span, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
		return exportDoneMsg{url: url, path: path, bytes: n, err: err}
	}
}

func exportFileName(imei string, span navigator.TimeRange) string {
	return fmt.Sprintf("%s_%d_%d.csv", imei, span.Start, span.End)
}

// parseRange reads "start..end" where both ends use rangeLayout in loc.
// Either end may be left empty to keep that side open.
func parseRange(input string, loc *time.Location) (navigator.TimeRange, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return navigator.TimeRange{}, nil
	}
	start, end, found := strings.Cut(input, "..")
	if !found {
		return navigator.TimeRange{}, fmt.Errorf("%w: expected start..end", ErrInvalidRange)
	}

	var span navigator.TimeRange
	for _, side := range []struct {
		raw string
		out *int64
	}{{start, &span.Start}, {end, &span.End}} {
		raw := strings.TrimSpace(side.raw)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation(rangeLayout, raw, loc)
		if err != nil {
			return navigator.TimeRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
		*side.out = t.Unix()
	}
	if span.Start != 0 && span.End != 0 && span.Start >= span.End {
		return navigator.TimeRange{}, fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}
	return span, nil
}

func formatRange(span navigator.TimeRange, loc *time.Location) string {
	if span == (navigator.TimeRange{}) {
		return ""
	}
	side := func(ts int64) string {
		if ts == 0 {
			return ""
		}
		return time.Unix(ts, 0).In(loc).Format(rangeLayout)
	}
	return side(span.Start) + ".." + side(span.End)
}
