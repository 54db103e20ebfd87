// Package dashboard is the terminal tracker dashboard. It hosts the tracker
// table, the status table driven by a navigator, the marker list and the
// settings, range, search and export actions.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"asset-tracker/internal/api"
	"asset-tracker/internal/client"
	"asset-tracker/internal/navigator"
	"asset-tracker/internal/push"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const trackerPageSize = 100

type focusPane int

const (
	paneTrackers focusPane = iota
	paneStatuses
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeRange
	modeSearch
	modeSettings
)

type Config struct {
	Backend       backend
	Notifications <-chan push.Notification
	PageSize      int
	ExportDir     string
	Location      *time.Location
}

type Model struct {
	backend       backend
	notifications <-chan push.Notification
	nav           *navigator.Navigator
	markers       *markerLayer
	keys          keyMap
	location      *time.Location
	exportDir     string

	trackers    table.Model
	trackerRows []api.TrackerRow
	statuses    table.Model

	focus focusPane
	mode  inputMode
	input textinput.Model
	form  settingsForm

	width  int
	height int

	statusText string
	errorText  string
}

func New(cfg Config) Model {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	markers := &markerLayer{}
	nav := navigator.New(navigator.Config{
		Source:   cfg.Backend,
		Layer:    markers,
		PageSize: cfg.PageSize,
	})

	trackers := table.New(
		table.WithColumns([]table.Column{
			{Title: "Tracker", Width: 18},
			{Title: "IMEI", Width: 16},
			{Title: "Battery", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	trackers.SetStyles(tableStyles())

	statuses := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 20},
			{Title: "City", Width: 14},
			{Title: "Country", Width: 10},
			{Title: "Cells", Width: 5},
			{Title: "Temp", Width: 6},
			{Title: "Battery", Width: 12},
		}),
		table.WithHeight(nav.PageSize()+1),
	)
	statuses.SetStyles(tableStyles())

	input := textinput.New()
	input.CharLimit = 64

	return Model{
		backend:       cfg.Backend,
		notifications: cfg.Notifications,
		nav:           nav,
		markers:       markers,
		keys:          defaultKeys(),
		location:      cfg.Location,
		exportDir:     cfg.ExportDir,
		trackers:      trackers,
		statuses:      statuses,
		input:         input,
		statusText:    "Loading trackers...",
	}
}

func trackerQuery() client.TableQuery {
	return client.TableQuery{PageSize: trackerPageSize}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadTrackersCmd(m.backend, trackerQuery()),
		waitForNotificationCmd(m.notifications),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case trackersLoadedMsg:
		if msg.err != nil {
			slog.Error("Loading trackers failed", "error", msg.err)
			m.errorText = "Failed to load trackers: " + msg.err.Error()
			return m, nil
		}
		m.trackerRows = msg.page.Rows
		m.syncTrackers()
		if m.nav.Device() == "" {
			m.statusText = fmt.Sprintf("%d trackers. Press enter to open one.", msg.page.Total)
		}
		return m, nil

	case navResultMsg:
		next := m.nav.Apply(msg.res)
		return m, m.fetch(next)

	case notificationMsg:
		if !msg.ok {
			m.errorText = "Live updates stopped."
			return m, nil
		}
		if m.nav.Notify(msg.notification.Device) {
			slog.Debug("Status update for active tracker", "device", msg.notification.Device, "pending", m.nav.Pending())
		}
		return m, tea.Batch(
			waitForNotificationCmd(m.notifications),
			loadTrackersCmd(m.backend, trackerQuery()),
		)

	case settingsLoadedMsg:
		if msg.err != nil {
			m.errorText = "Failed to load settings: " + msg.err.Error()
			return m, nil
		}
		m.form = newSettingsForm(msg.settings)
		m.mode = modeSettings
		m.errorText = ""
		m.statusText = "Editing settings of " + msg.settings.IMEI
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			slog.Error("Saving settings failed", "imei", msg.settings.IMEI, "error", msg.err)
			m.errorText = "Failed to save settings: " + msg.err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.errorText = ""
		m.statusText = "Settings of " + msg.settings.IMEI + " saved."
		for i := range m.trackerRows {
			if m.trackerRows[i].IMEI == msg.settings.IMEI {
				m.trackerRows[i].Alias = msg.settings.Alias
			}
		}
		m.syncTrackers()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			slog.Error("Export failed", "url", msg.url, "path", msg.path, "error", msg.err)
			m.errorText = "Export failed: " + msg.err.Error()
			if errors.Is(msg.err, client.ErrNotFound) {
				m.errorText = "Export is not served by " + msg.url + ", set export_url."
			}
			return m, nil
		}
		m.errorText = ""
		m.statusText = fmt.Sprintf("Exported %d bytes to %s", msg.bytes, msg.path)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeRange, modeSearch:
			return m.updateInput(msg)
		case modeSettings:
			return m.updateSettings(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		if m.focus == paneTrackers {
			m.setFocus(paneStatuses)
		} else {
			m.setFocus(paneTrackers)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetch(m.nav.Refresh())

	case key.Matches(msg, m.keys.PageUp):
		return m, m.fetch(m.nav.GoToPage(m.nav.Page().Index - 1))

	case key.Matches(msg, m.keys.PageDown):
		return m, m.fetch(m.nav.GoToPage(m.nav.Page().Index + 1))

	case key.Matches(msg, m.keys.Range):
		m.openInput(modeRange, formatRange(m.nav.Range(), m.location), "YYYY-MM-DD HH:MM..YYYY-MM-DD HH:MM")
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.openInput(modeSearch, m.nav.Search(), "city or country")
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		imei := m.cursorTracker()
		if imei == "" {
			m.errorText = "No tracker to edit."
			return m, nil
		}
		return m, loadSettingsCmd(m.backend, imei)

	case key.Matches(msg, m.keys.Export):
		device := m.nav.Device()
		if device == "" {
			m.errorText = "Open a tracker before exporting."
			return m, nil
		}
		m.errorText = ""
		m.statusText = "Downloading " + m.backend.ExportURL(device, m.nav.Range())
		return m, exportCmd(m.backend, m.exportDir, device, m.nav.Range())
	}

	if m.focus == paneTrackers {
		if key.Matches(msg, m.keys.Select) {
			imei := m.cursorTracker()
			if imei == "" {
				return m, nil
			}
			m.errorText = ""
			m.statusText = "Tracker " + imei
			m.setFocus(paneStatuses)
			return m, m.fetch(m.nav.SelectDevice(imei))
		}
		var cmd tea.Cmd
		m.trackers, cmd = m.trackers.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m, m.fetch(m.nav.SelectPrevious())
	case key.Matches(msg, m.keys.Down):
		return m, m.fetch(m.nav.SelectNext())
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		mode := m.mode
		m.closeInput()
		if mode == modeSearch {
			return m, m.fetch(m.nav.SetSearch(strings.TrimSpace(value)))
		}
		span, err := parseRange(value, m.location)
		if err != nil {
			m.errorText = err.Error()
			return m, nil
		}
		m.errorText = ""
		return m, m.fetch(m.nav.SetRange(span))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.statusText = ""
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		s, err := m.form.settings()
		if err != nil {
			m.errorText = err.Error()
			return m, nil
		}
		m.errorText = ""
		m.statusText = "Saving settings..."
		return m, saveSettingsCmd(m.backend, s)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg, m.keys)
	return m, cmd
}

// fetch mirrors the navigator selection into the status table and runs req.
func (m *Model) fetch(req *navigator.Request) tea.Cmd {
	m.syncStatuses()
	return fetchCmd(m.nav, req)
}

func (m *Model) openInput(mode inputMode, value, placeholder string) {
	m.mode = mode
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) setFocus(pane focusPane) {
	m.focus = pane
	if pane == paneTrackers {
		m.trackers.Focus()
		return
	}
	m.trackers.Blur()
}

func (m Model) cursorTracker() string {
	i := m.trackers.Cursor()
	if i < 0 || i >= len(m.trackerRows) {
		return ""
	}
	return m.trackerRows[i].IMEI
}

func (m *Model) syncTrackers() {
	rows := make([]table.Row, 0, len(m.trackerRows))
	for _, t := range m.trackerRows {
		name := t.Alias
		if name == "" {
			name = t.IMEI
		}
		rows = append(rows, table.Row{name, t.IMEI, t.Battery.Display})
	}
	m.trackers.SetRows(rows)
}

func (m *Model) syncStatuses() {
	page := m.nav.Page()
	rows := make([]table.Row, 0, len(page.Rows))
	for i, r := range page.Rows {
		cells := strconv.Itoa(r.Celltowers)
		display := r.Display
		if i < m.nav.FirstRow() {
			cells = "-"
			display = "≈ " + display
		}
		rows = append(rows, table.Row{display, r.City, r.Country, cells, r.Temp, r.Battery})
	}
	m.statuses.SetRows(rows)
	if i := m.nav.SelectedIndex(); i >= 0 {
		m.statuses.SetCursor(i)
	}
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	left := max(40, m.width*2/5) - 4
	right := max(60, m.width-left-8) - 4
	m.trackers.SetWidth(left)
	m.trackers.SetHeight(max(5, m.height-10))
	m.statuses.SetWidth(right)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading asset tracker..."
	}

	header := headerStyle.Render("Asset Tracker")
	statusLine := statusStyle.Render(m.statusText)
	if m.errorText != "" {
		statusLine = errorStyle.Render(m.errorText)
	}

	leftW := max(40, m.width*2/5)
	rightW := max(60, m.width-leftW-4)

	statusTitle := "Statuses"
	if device := m.nav.Device(); device != "" {
		statusTitle = fmt.Sprintf("Statuses of %s  page %d/%d", device, m.nav.Page().Index+1, max(1, m.nav.PageCount()))
		if m.nav.Loading() {
			statusTitle += "  loading..."
		}
	}

	lower := renderPanel("Markers", m.markers.View(), rightW, false)
	if m.mode == modeSettings {
		lower = renderPanel("Settings", m.form.View(), rightW, true)
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderPanel(statusTitle, m.statuses.View(), rightW, m.focus == paneStatuses),
		lower,
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel("Trackers", m.trackers.View(), leftW, m.focus == paneTrackers),
		right,
	)

	parts := []string{header, statusLine, body, m.filterLine()}
	switch m.mode {
	case modeRange:
		parts = append(parts, labelStyle.Render("Time range ")+m.input.View(), helpLine(m.keys.formHelp()))
	case modeSearch:
		parts = append(parts, labelStyle.Render("Search ")+m.input.View(), helpLine(m.keys.formHelp()))
	case modeSettings:
		parts = append(parts, helpLine(m.keys.formHelp()))
	default:
		parts = append(parts, helpLine(m.keys.browseHelp()))
	}
	return strings.Join(parts, "\n")
}

func (m Model) filterLine() string {
	var parts []string
	if m.nav.RefreshAvailable() {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf("%d new - press r", m.nav.Pending())))
	}
	if span := formatRange(m.nav.Range(), m.location); span != "" {
		parts = append(parts, labelStyle.Render("range ")+span)
	}
	if search := m.nav.Search(); search != "" {
		parts = append(parts, labelStyle.Render("search ")+search)
	}
	if device := m.nav.Device(); device != "" {
		parts = append(parts, labelStyle.Render("export ")+m.backend.ExportURL(device, m.nav.Range()))
	}
	return strings.Join(parts, "  ")
}
