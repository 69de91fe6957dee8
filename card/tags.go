package card

import "strings"

// WeatherTag is a derived boolean attribute extracted from the free-text
// weather description.
type WeatherTag string

const (
	TagLight WeatherTag = "light"
	TagCloud WeatherTag = "cloud"
	TagMist  WeatherTag = "mist"
	TagClear WeatherTag = "clear"
	TagDust  WeatherTag = "dust"
	TagRain  WeatherTag = "rain"
	TagSnow  WeatherTag = "snow"
)

// TagSet is the set of tags derived from one description
type TagSet map[WeatherTag]bool

func (s TagSet) Has(tag WeatherTag) bool {
	return s[tag]
}

func (s TagSet) HasAny(tags ...WeatherTag) bool {
	for _, tag := range tags {
		if s[tag] {
			return true
		}
	}
	return false
}

// lightWords are the description tokens that all read as "light" weather
var lightWords = map[string]bool{
	"light":     true,
	"few":       true,
	"broken":    true,
	"scattered": true,
}

// DeriveTags tokenizes a weather description ("light rain", "broken clouds",
// see https://openweathermap.org/weather-conditions) into weather tags.
func DeriveTags(description string) TagSet {
	tags := make(TagSet)

	for _, token := range strings.Fields(strings.ToLower(description)) {
		if lightWords[token] {
			tags[TagLight] = true
		}

		switch token {
		case "clouds":
			tags[TagCloud] = true
		case "mist":
			tags[TagMist] = true
		case "clear":
			tags[TagClear] = true
		case "dust":
			tags[TagDust] = true
		case "rain":
			tags[TagRain] = true
		case "snow":
			tags[TagSnow] = true
		}
	}

	return tags
}
