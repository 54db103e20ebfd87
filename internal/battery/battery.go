package battery

import "fmt"

type point struct {
	discharged int
	voltage    float64
}

// Discharge curve of the tracker pack, sampled over a full discharge of
// curveLength steps.
const curveLength = 3708

var curve = []point{
	{0, 8.35221210479736},
	{115, 8.23313919067382},
	{483, 7.98308769226074},
	{966, 7.69731489181518},
	{1817, 7.28056255340576},
	{2760, 7.10195461273193},
	{3427, 6.81618181228637},
	{3542, 6.66138807296752},
	{3634, 6.25654283523559},
	{3680, 5.80406871795654},
	{curveLength, 5.35},
}

// Percentage maps a pack voltage onto the discharge curve.
func Percentage(voltage float64) float64 {
	var lastU, lastBase float64
	for i, p := range curve {
		base := float64(curveLength-p.discharged) / curveLength
		if voltage >= p.voltage {
			if i == 0 {
				return 100
			}
			return (base + (lastBase-base)*((voltage-p.voltage)/(lastU-p.voltage))) * 100
		}
		lastU, lastBase = p.voltage, base
	}
	pct := float64(int64((voltage-6.5)/1.9*100 + 0.5))
	return min(max(pct, 0), 100)
}

type Level string

const (
	LevelFull          Level = "full"
	LevelThreeQuarters Level = "three-quarters"
	LevelHalf          Level = "half"
	LevelQuarter       Level = "quarter"
	LevelEmpty         Level = "empty"
	LevelUnknown       Level = "unknown"
)

func LevelOf(percentage float64) Level {
	switch {
	case percentage > 85:
		return LevelFull
	case percentage > 65:
		return LevelThreeQuarters
	case percentage > 35:
		return LevelHalf
	case percentage > 10:
		return LevelQuarter
	default:
		return LevelEmpty
	}
}

// Display renders the battery column text. A nil voltage means the device
// has not reported yet.
func Display(voltage *float64) (string, Level) {
	if voltage == nil {
		return "???", LevelUnknown
	}
	pct := Percentage(*voltage)
	return fmt.Sprintf("%.1fV %.0f%%", *voltage, pct), LevelOf(pct)
}
