package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"asset-tracker/internal/api"
	"asset-tracker/internal/client"
	"asset-tracker/internal/navigator"
	"asset-tracker/internal/push"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	imeiA = "350000000000001"
	imeiB = "350000000000002"
)

var (
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyPgDown = tea.KeyMsg{Type: tea.KeyPgDown}
	keyEsc    = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive feeds msg into the model and runs every resulting command
// synchronously until none are left.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "command loop does not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd != nil {
					queue = append(queue, cmd())
				}
			}
			continue
		}
		updated, cmd := m.Update(next)
		m = updated.(Model)
		if cmd != nil {
			queue = append(queue, cmd())
		}
	}
	return m
}

func records(ids ...int64) []navigator.Record {
	rows := make([]navigator.Record, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, navigator.Record{
			ID:        id,
			Timestamp: time.Unix(1700000000-id*60, 0),
			Display:   time.Unix(1700000000-id*60, 0).UTC().Format("02.01.2006 15:04:05"),
			City:      "Bochum",
			Country:   "Germany",
			Battery:   "7.9V 81%",
		})
	}
	return rows
}

func statusQuery(device string, page int) navigator.Query {
	return navigator.Query{Device: device, Page: page, PageSize: 3}
}

func expectTrackers(b *Mockbackend) {
	b.EXPECT().Trackers(mock.Anything, client.TableQuery{PageSize: trackerPageSize}).Return(client.TrackerPage{
		Rows: []api.TrackerRow{
			{IMEI: imeiA, Alias: "Van", Battery: api.Battery{Display: "7.9V 81%"}},
			{IMEI: imeiB, Battery: api.Battery{Display: "???"}},
		},
		Total:    2,
		Filtered: 2,
	}, nil).Maybe()
}

func expectDetail(b *Mockbackend, id int64) {
	b.EXPECT().Detail(mock.Anything, id).Return(navigator.Detail{Lat: 51.48, Lon: 7.21, Radius: float64(id * 100)}, nil).Once()
}

func newModel(t *testing.T) (Model, *Mockbackend) {
	b := NewMockbackend(t)
	expectTrackers(b)
	m := New(Config{Backend: b, PageSize: 3, ExportDir: t.TempDir(), Location: time.UTC})
	m = drive(t, m, m.Init()())
	require.Len(t, m.trackerRows, 2)
	return m, b
}

// openTracker selects the first tracker and loads a page holding ids 1..3
// out of five statuses.
func openTracker(t *testing.T, m Model, b *Mockbackend) Model {
	b.EXPECT().Statuses(mock.Anything, statusQuery(imeiA, 0)).Return(navigator.Page{
		Rows: records(1, 2, 3), Total: 5, Filtered: 5,
	}, nil).Once()
	expectDetail(b, 1)
	return drive(t, m, keyEnter)
}

func Test_OpenTracker(t *testing.T) {
	m, b := newModel(t)
	m = openTracker(t, m, b)

	assert.Equal(t, imeiA, m.nav.Device())
	assert.Equal(t, paneStatuses, m.focus)
	assert.Equal(t, 0, m.nav.SelectedIndex())
	assert.Equal(t, 0, m.statuses.Cursor())
	assert.Len(t, m.statuses.Rows(), 3)
	require.Len(t, m.markers.Markers(), 1)
	assert.Equal(t, float64(100), m.markers.Markers()[0].Radius)
}

func Test_StatusNavigation(t *testing.T) {
	m, b := newModel(t)
	m = openTracker(t, m, b)

	expectDetail(b, 2)
	expectDetail(b, 3)
	m = drive(t, m, keyDown)
	m = drive(t, m, keyDown)
	assert.Equal(t, 2, m.statuses.Cursor())
	assert.Equal(t, float64(300), m.markers.Markers()[0].Radius)

	b.EXPECT().Statuses(mock.Anything, statusQuery(imeiA, 1)).Return(navigator.Page{
		Rows: records(4, 5), Total: 5, Filtered: 5,
	}, nil).Once()
	expectDetail(b, 4)
	m = drive(t, m, keyDown)
	assert.Equal(t, 1, m.nav.Page().Index)
	assert.Equal(t, 0, m.nav.SelectedIndex())
	require.Len(t, m.markers.Markers(), 1)
	assert.Equal(t, float64(400), m.markers.Markers()[0].Radius)

	// last page: moving past its end keeps the selection
	expectDetail(b, 5)
	m = drive(t, m, keyDown)
	m = drive(t, m, keyDown)
	assert.Equal(t, 1, m.nav.SelectedIndex())

	expectDetail(b, 4)
	m = drive(t, m, keyUp)
	b.EXPECT().Statuses(mock.Anything, statusQuery(imeiA, 0)).Return(navigator.Page{
		Rows: records(1, 2, 3), Total: 5, Filtered: 5,
	}, nil).Once()
	expectDetail(b, 3)
	m = drive(t, m, keyUp)
	assert.Equal(t, 0, m.nav.Page().Index)
	assert.Equal(t, 2, m.nav.SelectedIndex())
	assert.Equal(t, 2, m.statuses.Cursor())
}

func Test_PageDown(t *testing.T) {
	m, b := newModel(t)
	m = openTracker(t, m, b)

	b.EXPECT().Statuses(mock.Anything, statusQuery(imeiA, 1)).Return(navigator.Page{
		Rows: records(4, 5), Total: 5, Filtered: 5,
	}, nil).Once()
	expectDetail(b, 4)
	m = drive(t, m, keyPgDown)
	assert.Equal(t, 1, m.nav.Page().Index)

	// no page after the last one
	m = drive(t, m, keyPgDown)
	assert.Equal(t, 1, m.nav.Page().Index)
}

func Test_PlaceholderRow(t *testing.T) {
	m, b := newModel(t)
	b.EXPECT().Statuses(mock.Anything, statusQuery(imeiA, 0)).Return(navigator.Page{
		Rows: records(0, 1, 2), Total: 2, Filtered: 2,
	}, nil).Once()
	expectDetail(b, 1)
	m = drive(t, m, keyEnter)

	assert.Equal(t, 1, m.nav.SelectedIndex())
	assert.Equal(t, "-", m.statuses.Rows()[0][3])
	assert.Equal(t, "0", m.statuses.Rows()[1][3])

	// the placeholder cannot be selected
	m = drive(t, m, keyUp)
	assert.Equal(t, 1, m.nav.SelectedIndex())
	assert.Equal(t, "≈ ", m.statuses.Rows()[0][0][:len("≈ ")])
}

func Test_Notifications(t *testing.T) {
	m, b := newModel(t)
	b.EXPECT().ExportURL(imeiA, navigator.TimeRange{}).Return("http://server/device/" + imeiA + "/export/csv").Maybe()
	m = openTracker(t, m, b)
	m = drive(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	view := m.View()
	assert.Contains(t, view, "Statuses of "+imeiA+"  page 1/2")
	assert.Contains(t, view, "r=100m")

	m = drive(t, m, notificationMsg{notification: push.Notification{Device: imeiB}, ok: true})
	assert.Equal(t, 0, m.nav.Pending())
	assert.NotContains(t, m.filterLine(), "new")

	m = drive(t, m, notificationMsg{notification: push.Notification{Device: imeiA}, ok: true})
	m = drive(t, m, notificationMsg{notification: push.Notification{Device: imeiA}, ok: true})
	assert.Equal(t, 2, m.nav.Pending())
	assert.Contains(t, m.filterLine(), "2 new")

	b.EXPECT().Statuses(mock.Anything, statusQuery(imeiA, 0)).Return(navigator.Page{
		Rows: records(1, 2, 3), Total: 6, Filtered: 6,
	}, nil).Once()
	expectDetail(b, 1)
	m = drive(t, m, runes("r"))
	assert.Equal(t, 0, m.nav.Pending())
	assert.False(t, m.nav.RefreshAvailable())

	m = drive(t, m, notificationMsg{ok: false})
	assert.Equal(t, "Live updates stopped.", m.errorText)
}

func Test_RangeAndSearch(t *testing.T) {
	m, b := newModel(t)
	m = openTracker(t, m, b)

	m = drive(t, m, runes("t"))
	require.Equal(t, modeRange, m.mode)
	m.input.SetValue("2023-11-14 00:00..2023-11-15 00:00")

	span := navigator.TimeRange{Start: 1699920000, End: 1700006400}
	b.EXPECT().Statuses(mock.Anything, navigator.Query{Device: imeiA, Range: span, PageSize: 3}).Return(navigator.Page{
		Rows: records(2), Total: 5, Filtered: 1,
	}, nil).Once()
	expectDetail(b, 2)
	m = drive(t, m, keyEnter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, span, m.nav.Range())

	m = drive(t, m, runes("/"))
	require.Equal(t, modeSearch, m.mode)
	m.input.SetValue(" essen ")
	b.EXPECT().Statuses(mock.Anything, navigator.Query{Device: imeiA, Range: span, Search: "essen", PageSize: 3}).Return(navigator.Page{
		Total: 5,
	}, nil).Once()
	m = drive(t, m, keyEnter)
	assert.Equal(t, "essen", m.nav.Search())
	assert.Empty(t, m.markers.Markers())

	m = drive(t, m, runes("t"))
	m.input.SetValue("yesterday")
	m = drive(t, m, keyEnter)
	assert.Contains(t, m.errorText, ErrInvalidRange.Error())
	assert.Equal(t, span, m.nav.Range())

	m = drive(t, m, runes("/"))
	m = drive(t, m, keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "essen", m.nav.Search())
}

func Test_Settings(t *testing.T) {
	m, b := newModel(t)

	b.EXPECT().Settings(mock.Anything, imeiA).Return(api.DeviceSettings{
		IMEI: imeiA, Alias: "Van", Sleeptime: 2, SleeptimeUnit: 3600,
	}, nil).Once()
	m = drive(t, m, runes("s"))
	require.Equal(t, modeSettings, m.mode)
	assert.Equal(t, "Van", m.form.alias.Value())
	assert.Equal(t, "hours", sleepUnits[m.form.unit].name)

	m.form.alias.SetValue("Trailer")
	m.form.sleeptime.SetValue("30")
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "minutes", sleepUnits[m.form.unit].name)

	b.EXPECT().SaveSettings(mock.Anything, api.DeviceSettings{
		IMEI: imeiA, Alias: "Trailer", Sleeptime: 30, SleeptimeUnit: 60,
	}).Return(nil).Once()
	m = drive(t, m, keyEnter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Trailer", m.trackerRows[0].Alias)
	assert.Equal(t, "Trailer", m.trackers.Rows()[0][0])
}

func Test_SettingsRejected(t *testing.T) {
	m, b := newModel(t)

	b.EXPECT().Settings(mock.Anything, imeiA).Return(api.DeviceSettings{
		IMEI: imeiA, Sleeptime: 2, SleeptimeUnit: 3600,
	}, nil).Once()
	m = drive(t, m, runes("s"))

	m.form.sleeptime.SetValue("0")
	m = drive(t, m, keyEnter)
	assert.Equal(t, modeSettings, m.mode)
	assert.Equal(t, ErrInvalidSleeptime.Error(), m.errorText)

	m.form.sleeptime.SetValue("1")
	b.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(client.ErrForbidden).Once()
	m = drive(t, m, keyEnter)
	assert.Equal(t, modeSettings, m.mode)
	assert.Contains(t, m.errorText, client.ErrForbidden.Error())

	m = drive(t, m, keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
}

func Test_Export(t *testing.T) {
	m, b := newModel(t)

	m = drive(t, m, runes("e"))
	assert.Equal(t, "Open a tracker before exporting.", m.errorText)

	m = openTracker(t, m, b)
	b.EXPECT().ExportURL(imeiA, navigator.TimeRange{}).Return("http://server/device/" + imeiA + "/export/csv").Maybe()
	b.EXPECT().Export(mock.Anything, imeiA, navigator.TimeRange{}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ navigator.TimeRange, w io.Writer) (int64, error) {
			n, err := io.WriteString(w, "timestamp;lat;lon\n")
			return int64(n), err
		}).Once()
	m = drive(t, m, runes("e"))

	path := filepath.Join(m.exportDir, imeiA+"_0_0.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timestamp;lat;lon\n", string(data))
	assert.Contains(t, m.statusText, path)

	b.EXPECT().Export(mock.Anything, imeiA, navigator.TimeRange{}, mock.Anything).Return(0, errors.New("failed")).Once()
	m = drive(t, m, runes("e"))
	assert.Contains(t, m.errorText, "Export failed")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func Test_ExportNotServed(t *testing.T) {
	m, b := newModel(t)
	m = openTracker(t, m, b)
	url := "http://server/device/" + imeiA + "/export/csv"
	b.EXPECT().ExportURL(imeiA, navigator.TimeRange{}).Return(url).Maybe()
	b.EXPECT().Export(mock.Anything, imeiA, navigator.TimeRange{}, mock.Anything).
		Return(0, fmt.Errorf("Client:Export:%w: status 404", client.ErrNotFound)).Once()

	m = drive(t, m, runes("e"))
	assert.Equal(t, "Export is not served by "+url+", set export_url.", m.errorText)
	_, err := os.Stat(filepath.Join(m.exportDir, imeiA+"_0_0.csv"))
	assert.True(t, os.IsNotExist(err))
}

func Test_Quit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = drive(t, m, runes("/"))
	updated, _ := m.Update(runes("q"))
	assert.Equal(t, modeSearch, updated.(Model).mode)
	assert.Equal(t, "q", updated.(Model).input.Value())
}

func Test_parseRange(t *testing.T) {
	cases := []struct {
		name        string
		input       string
		expected    navigator.TimeRange
		expectedErr error
	}{
		{name: "empty", input: ""},
		{
			name:     "both ends",
			input:    "2023-11-14 00:00..2023-11-15 00:00",
			expected: navigator.TimeRange{Start: 1699920000, End: 1700006400},
		},
		{
			name:     "open end",
			input:    "2023-11-14 00:00..",
			expected: navigator.TimeRange{Start: 1699920000},
		},
		{
			name:     "open start",
			input:    " ..2023-11-15 00:00 ",
			expected: navigator.TimeRange{End: 1700006400},
		},
		{name: "missing separator", input: "2023-11-14 00:00", expectedErr: ErrInvalidRange},
		{name: "bad time", input: "14.11.2023..", expectedErr: ErrInvalidRange},
		{name: "reversed", input: "2023-11-15 00:00..2023-11-14 00:00", expectedErr: ErrInvalidRange},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			span, err := parseRange(tt.input, time.UTC)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, span)
		})
	}
}

func Test_formatRange(t *testing.T) {
	assert.Equal(t, "", formatRange(navigator.TimeRange{}, time.UTC))
	assert.Equal(t, "2023-11-14 00:00..", formatRange(navigator.TimeRange{Start: 1699920000}, time.UTC))
	assert.Equal(t, "2023-11-14 00:00..2023-11-15 00:00", formatRange(navigator.TimeRange{Start: 1699920000, End: 1700006400}, time.UTC))
}

func Test_markerLayer(t *testing.T) {
	l := &markerLayer{}
	assert.Contains(t, l.View(), "No status selected")

	l.Add(navigator.Marker{Kind: navigator.MarkerPosition, Lat: 51.48, Lon: 7.21, Radius: 500})
	l.Add(navigator.Marker{Kind: navigator.MarkerCell, Lat: 51.5, Lon: 7.2, Radius: 1200})
	view := l.View()
	assert.Contains(t, view, "position")
	assert.Contains(t, view, "r=1200m")

	l.Clear()
	assert.Empty(t, l.Markers())
}
