// Package card implements the weather-card composition pipeline: day-phase
// classification, weather-tag derivation, layer computation and rendering.
package card

import "time"

// DayPhase is the coarse lighting category driving backdrop selection
type DayPhase string

const (
	DayPhaseDay       DayPhase = "day"
	DayPhaseAfternoon DayPhase = "afternoon"
	DayPhaseNight     DayPhase = "night"
)

// BackdropID returns the backdrop asset id for this phase
func (p DayPhase) BackdropID() string {
	return "element_" + string(p)
}

// transitionWindowSeconds is how long after sunrise / before sunset the card
// shows the sunset/sunrise transition look.
const transitionWindowSeconds = 900

// ClassifyDayPhase derives the day phase from the local time at the observed
// location. When sunrise/sunset data is available it supersedes the
// hour-table default: inside [sunrise, sunset] is day, outside is night,
// with a 900-second afternoon window after sunrise and before sunset.
func ClassifyDayPhase(local time.Time, sunriseEpoch, sunsetEpoch int64) DayPhase {
	phase := hourPhase(local.Hour())

	if sunriseEpoch <= 0 || sunsetEpoch <= 0 {
		return phase
	}

	ts := local.Unix()
	if ts >= sunriseEpoch && ts <= sunsetEpoch {
		phase = DayPhaseDay
	} else {
		phase = DayPhaseNight
	}

	switch {
	case ts >= sunriseEpoch && ts <= sunriseEpoch+transitionWindowSeconds:
		phase = DayPhaseAfternoon
	case ts <= sunsetEpoch && ts >= sunsetEpoch-transitionWindowSeconds:
		phase = DayPhaseAfternoon
	}

	return phase
}

func hourPhase(hour int) DayPhase {
	switch {
	case hour <= 6: // 12:00am - 6:59am
		return DayPhaseNight
	case hour < 9: // 7:00am - 8:59am
		return DayPhaseAfternoon
	case hour <= 18: // 9:00am - 6:59pm
		return DayPhaseDay
	case hour < 21: // 7:00pm - 8:59pm
		return DayPhaseAfternoon
	default: // 9:00pm - 11:59pm
		return DayPhaseNight
	}
}
