// Package wake computes when a sleeping tracker reports next.
package wake

import "time"

// Units a sleeptime may be expressed in, in seconds.
const (
	Seconds = 1
	Minutes = 60
	Hours   = 60 * 60
	Days    = 60 * 60 * 24
)

// ValidUnit reports whether unit is one of the supported sleeptime units.
func ValidUnit(unit int) bool {
	switch unit {
	case Seconds, Minutes, Hours, Days:
		return true
	}
	return false
}

// Period is the sleep interval of a device.
func Period(sleeptime float64, unit int) time.Duration {
	return time.Duration(sleeptime * float64(unit) * float64(time.Second))
}

// Next aligns the wake time to the device's sleep period, leads it by
// offset and returns the first such time after now.
func Next(now time.Time, sleeptime float64, unit int, offset time.Duration) time.Time {
	period := Period(sleeptime, unit)
	secs := int64(period / time.Second)
	if secs <= 0 {
		return now
	}
	next := now.Add(-time.Duration(now.Unix()%secs) * time.Second).Add(-offset)
	for next.Before(now) {
		next = next.Add(period)
	}
	return next
}

// Expected is when the next update should arrive given the last scheduled
// wake. Once overdue it keeps moving forward in five minute steps.
func Expected(nextWake time.Time, offset time.Duration, now time.Time) time.Time {
	next := nextWake.Add(offset)
	step := 5*time.Minute + offset/2
	for next.Before(now) {
		next = next.Add(step)
	}
	return next
}
