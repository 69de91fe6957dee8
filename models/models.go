// Package models defines data structures used throughout the application
package models

// Coordinates holds the geographic position of a weather observation
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherCondition represents one entry of the observation's condition list
type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// MainMetrics holds the numeric measurements of an observation.
// Temperature is in Kelvin, as delivered by the upstream API.
type MainMetrics struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

// Wind holds wind measurements of an observation
type Wind struct {
	Speed float64 `json:"speed"`
}

// SysInfo holds country and sun times of an observation.
// Sunrise and Sunset are epoch seconds in UTC.
type SysInfo struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// WeatherObservation represents a current-weather lookup result.
// The field layout mirrors the OpenWeatherMap current weather payload so
// cached entries stay byte-compatible with responses written by earlier
// deployments sharing the same store.
type WeatherObservation struct {
	Name    string             `json:"name"`
	Coord   Coordinates        `json:"coord"`
	Weather []WeatherCondition `json:"weather"`
	Main    MainMetrics        `json:"main"`
	Wind    Wind               `json:"wind"`
	Sys     SysInfo            `json:"sys"`
}

// Description returns the free-text description of the primary condition
func (o *WeatherObservation) Description() string {
	if len(o.Weather) == 0 {
		return ""
	}
	return o.Weather[0].Description
}

// ConditionMain returns the coarse category of the primary condition
func (o *WeatherObservation) ConditionMain() string {
	if len(o.Weather) == 0 {
		return ""
	}
	return o.Weather[0].Main
}

// TimezoneInfo represents a timezone lookup result. The field layout mirrors
// the Google Maps Time Zone API payload for cache compatibility.
type TimezoneInfo struct {
	Status       string `json:"status"`
	TimeZoneID   string `json:"timeZoneId"`
	TimeZoneName string `json:"timeZoneName"`
	RawOffset    int    `json:"rawOffset"`
	DstOffset    int    `json:"dstOffset"`
}

// TimezoneStatusOK is the provider status of a successful timezone lookup
const TimezoneStatusOK = "OK"

// TimezoneStatusZeroResults is reported when no timezone covers the coordinates
const TimezoneStatusZeroResults = "ZERO_RESULTS"

// MoonInfo represents lunar illumination at an instant. Fraction is the
// illuminated fraction (0..1), Phase the position in the lunar cycle (0..1),
// Angle the midpoint angle in radians.
type MoonInfo struct {
	Fraction  float64 `json:"fraction"`
	Phase     float64 `json:"phase"`
	Angle     float64 `json:"angle"`
	PhaseName string  `json:"phaseName"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
