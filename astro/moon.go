// Package astro derives lunar stages and phase names from SunCalc
// illumination results.
package astro

import (
	"time"

	"github.com/sixdouglas/suncalc"
	"weathercards.app/models"
)

// Stage buckets a lunar cycle position (0..1) into 8 stages. Exact quarter
// boundaries map to the even stages, the open intervals between them to the
// odd ones; 0 is a new moon.
func Stage(phase float64) int {
	switch {
	case phase <= 0:
		return 0
	case phase < 0.25:
		return 1
	case phase == 0.25:
		return 2
	case phase < 0.5:
		return 3
	case phase == 0.5:
		return 4
	case phase < 0.75:
		return 5
	case phase == 0.75:
		return 6
	default:
		return 7
	}
}

var phaseNames = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// PhaseName names the lunar phase for a cycle position (0..1)
func PhaseName(phase float64) string {
	return phaseNames[Stage(phase)]
}

// NorthernHemisphere reports whether a latitude lies in the northern
// hemisphere. The equator counts as northern; only lat < 0 is southern.
func NorthernHemisphere(lat float64) bool {
	return lat >= 0
}

// Illumination computes the moon's illumination at an instant, with the
// derived phase name attached.
func Illumination(t time.Time) *models.MoonInfo {
	ill := suncalc.GetMoonIllumination(t)
	return &models.MoonInfo{
		Fraction:  ill.Fraction,
		Phase:     ill.Phase,
		Angle:     ill.Angle,
		PhaseName: PhaseName(ill.Phase),
	}
}
