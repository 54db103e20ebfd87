// Package locate turns the cell towers a tracker heard into a position.
//
// Every heard tower gets a distance from its received signal level using
// the Okumura-Hata model for a small city. With two or more towers the
// position is the point whose distances to the towers fit those ranges
// best. The radius is the remaining mean error plus a fixed margin.
package locate

import (
	"errors"
	"math"
	"sort"
)

var ErrNoFixes = errors.New("no located towers")

const (
	earthRadius = 6371000.0

	// Transmit power of a base station, 20 W.
	txPowerDBm = 43.0103
	// Antenna heights of base station and tracker in meters.
	baseHeight   = 80.0
	mobileHeight = 3.0

	// Added to the fit error so a perfect fit is not reported as exact.
	radiusMargin = 100.0
)

// CellID identifies a GSM cell.
type CellID struct {
	MCC int
	MNC int
	LAC int
	CID int
}

// Valid reports whether the cell carries a network. Trackers report
// neighbours they could not decode with MCC or MNC 0.
func (c CellID) Valid() bool {
	return c.MCC != 0 && c.MNC != 0
}

// Observation is a cell heard by the tracker. Rxl is the GSM RXLEV
// (0..63), Arfcn the channel or 0 when unknown.
type Observation struct {
	Cell  CellID
	Rxl   int
	Arfcn int
}

// Dedupe drops undecoded cells and merges repeated ones, keeping the
// strongest level. The result is ordered strongest first.
func Dedupe(obs []Observation) []Observation {
	out := make([]Observation, 0, len(obs))
	index := make(map[CellID]int, len(obs))
	for _, o := range obs {
		if !o.Cell.Valid() {
			continue
		}
		if i, ok := index[o.Cell]; ok {
			if o.Rxl > out[i].Rxl {
				out[i] = o
			}
			continue
		}
		index[o.Cell] = len(out)
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rxl > out[j].Rxl })
	return out
}

// DownlinkMHz is the downlink frequency of a GSM channel. Unknown
// channels are taken as channel 0 of GSM 900.
func DownlinkMHz(arfcn int) float64 {
	switch {
	case arfcn >= 128 && arfcn <= 251:
		return 824.2 + 0.2*float64(arfcn-128) + 45
	case arfcn >= 259 && arfcn <= 293:
		return 450.6 + 0.2*float64(arfcn-259) + 10
	case arfcn >= 306 && arfcn <= 340:
		return 479.0 + 0.2*float64(arfcn-306) + 10
	case arfcn >= 438 && arfcn <= 511:
		return 747.2 + 0.2*float64(arfcn-438) + 30
	case arfcn >= 512 && arfcn <= 885:
		return 1710.2 + 0.2*float64(arfcn-512) + 95
	case arfcn >= 955 && arfcn <= 1023:
		return 890.0 + 0.2*float64(arfcn-1024) + 45
	case arfcn >= 0 && arfcn <= 124:
		return 890.0 + 0.2*float64(arfcn) + 45
	}
	return 935.0
}

// Distance estimates how far away a tower heard at rxl on arfcn is, in
// meters.
func Distance(rxl, arfcn int) float64 {
	dbm := float64(rxl - 113)
	pathLoss := txPowerDBm - dbm
	logF := math.Log10(DownlinkMHz(arfcn))
	logHB := math.Log10(baseHeight)
	correction := 0.8 + (1.1*logF-0.7)*mobileHeight - 1.56*logF
	exp := (pathLoss - 69.55 - 26.16*logF + 13.82*logHB + correction) / (44.9 - 6.55*logHB)
	return math.Pow(10, exp) * 1000
}

// Haversine is the great circle distance between two points in meters.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := lat1*math.Pi/180, lat2*math.Pi/180
	dPhi, dLambda := (lat2-lat1)*math.Pi/180, (lon2-lon1)*math.Pi/180
	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Fix is a located tower and the estimated distance to it in meters.
type Fix struct {
	Lat  float64
	Lon  float64
	Dist float64
}

type Estimate struct {
	Lat    float64
	Lon    float64
	Radius float64
}

// meanError is how badly the point lat/lon matches the fixes' ranges.
func meanError(lat, lon float64, fixes []Fix) float64 {
	var e float64
	for _, f := range fixes {
		e += math.Abs(Haversine(lat, lon, f.Lat, f.Lon) - f.Dist)
	}
	return e / float64(len(fixes))
}

// Laterate estimates the tracker position from the fixes. A single fix
// yields the tower itself with its range as radius. Otherwise a compass
// search starting at the centroid minimises the mean range error.
func Laterate(fixes []Fix) (Estimate, error) {
	if len(fixes) == 0 {
		return Estimate{}, ErrNoFixes
	}
	if len(fixes) == 1 {
		return Estimate{Lat: fixes[0].Lat, Lon: fixes[0].Lon, Radius: fixes[0].Dist}, nil
	}

	var lat, lon float64
	for _, f := range fixes {
		lat += f.Lat
		lon += f.Lon
	}
	lat /= float64(len(fixes))
	lon /= float64(len(fixes))
	best := meanError(lat, lon, fixes)

	// 0.05 degrees is a few km, well above typical GSM ranges.
	for step := 0.05; step > 1e-6; {
		moved := false
		for _, d := range [][2]float64{{step, 0}, {-step, 0}, {0, step}, {0, -step}} {
			cLat := math.Max(-90, math.Min(90, lat+d[0]))
			cLon := lon + d[1]
			if e := meanError(cLat, cLon, fixes); e < best {
				lat, lon, best = cLat, cLon, e
				moved = true
			}
		}
		if !moved {
			step /= 2
		}
	}
	return Estimate{Lat: lat, Lon: lon, Radius: best + radiusMargin}, nil
}
