package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"asset-tracker/internal/api"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrInvalidSleeptime = errors.New("sleeptime must be a positive number")

type sleepUnit struct {
	seconds int
	name    string
}

var sleepUnits = []sleepUnit{
	{1, "seconds"},
	{60, "minutes"},
	{3600, "hours"},
	{86400, "days"},
}

type settingsField int

const (
	fieldAlias settingsField = iota
	fieldSleeptime
	fieldUnit
)

// settingsForm edits the settings of one device. The unit is picked with
// left/right from the fixed set of sleep units.
type settingsForm struct {
	imei      string
	alias     textinput.Model
	sleeptime textinput.Model
	unit      int
	field     settingsField
}

func newSettingsForm(s api.DeviceSettings) settingsForm {
	alias := textinput.New()
	alias.Prompt = ""
	alias.CharLimit = 64
	alias.Placeholder = s.IMEI
	alias.SetValue(s.Alias)
	alias.Focus()

	sleeptime := textinput.New()
	sleeptime.Prompt = ""
	sleeptime.CharLimit = 12
	sleeptime.SetValue(strconv.FormatFloat(s.Sleeptime, 'f', -1, 64))

	return settingsForm{
		imei:      s.IMEI,
		alias:     alias,
		sleeptime: sleeptime,
		unit:      unitIndex(s.SleeptimeUnit),
	}
}

func unitIndex(seconds int) int {
	for i, u := range sleepUnits {
		if u.seconds == seconds {
			return i
		}
	}
	return len(sleepUnits) - 2
}

func (f *settingsForm) next() {
	f.field = (f.field + 1) % 3
	f.alias.Blur()
	f.sleeptime.Blur()
	switch f.field {
	case fieldAlias:
		f.alias.Focus()
	case fieldSleeptime:
		f.sleeptime.Focus()
	}
}

func (f settingsForm) update(msg tea.KeyMsg, keys keyMap) (settingsForm, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Next):
		f.next()
		return f, nil
	case f.field == fieldUnit && key.Matches(msg, keys.Left):
		f.unit = (f.unit + len(sleepUnits) - 1) % len(sleepUnits)
		return f, nil
	case f.field == fieldUnit && key.Matches(msg, keys.Right):
		f.unit = (f.unit + 1) % len(sleepUnits)
		return f, nil
	}

	var cmd tea.Cmd
	switch f.field {
	case fieldAlias:
		f.alias, cmd = f.alias.Update(msg)
	case fieldSleeptime:
		f.sleeptime, cmd = f.sleeptime.Update(msg)
	}
	return f, cmd
}

// settings validates the form into the settings to save.
func (f settingsForm) settings() (api.DeviceSettings, error) {
	sleeptime, err := strconv.ParseFloat(strings.TrimSpace(f.sleeptime.Value()), 64)
	if err != nil || sleeptime <= 0 {
		return api.DeviceSettings{}, ErrInvalidSleeptime
	}
	return api.DeviceSettings{
		IMEI:          f.imei,
		Alias:         strings.TrimSpace(f.alias.Value()),
		Sleeptime:     sleeptime,
		SleeptimeUnit: sleepUnits[f.unit].seconds,
	}, nil
}

func (f settingsForm) View() string {
	marker := func(field settingsField) string {
		if f.field == field {
			return statusStyle.Render("> ")
		}
		return "  "
	}
	unit := fmt.Sprintf("◀ %s ▶", sleepUnits[f.unit].name)
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("IMEI        ")+f.imei,
		marker(fieldAlias)+labelStyle.Render("Alias     ")+f.alias.View(),
		marker(fieldSleeptime)+labelStyle.Render("Sleeptime ")+f.sleeptime.View(),
		marker(fieldUnit)+labelStyle.Render("Unit      ")+unit,
	)
}
