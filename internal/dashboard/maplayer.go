package dashboard

import (
	"fmt"
	"strings"

	"asset-tracker/internal/navigator"
)

// markerLayer is the navigator's map layer. Markers are listed as circles
// rather than drawn on a map.
type markerLayer struct {
	markers []navigator.Marker
}

func (l *markerLayer) Clear() { l.markers = nil }

func (l *markerLayer) Add(m navigator.Marker) { l.markers = append(l.markers, m) }

func (l *markerLayer) Markers() []navigator.Marker { return l.markers }

func (l *markerLayer) View() string {
	if len(l.markers) == 0 {
		return labelStyle.Render("No status selected.")
	}
	lines := make([]string, 0, len(l.markers))
	for _, m := range l.markers {
		symbol, name := "●", "position"
		if m.Kind == navigator.MarkerCell {
			symbol, name = "○", "cell"
		}
		lines = append(lines, fmt.Sprintf("%s %-8s %9.5f, %9.5f  r=%.0fm", symbol, name, m.Lat, m.Lon, m.Radius))
	}
	return strings.Join(lines, "\n")
}
