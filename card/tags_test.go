package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		description string
		expected    []WeatherTag
	}{
		{"light rain", []WeatherTag{TagLight, TagRain}},
		{"Light Rain", []WeatherTag{TagLight, TagRain}},
		{"broken clouds", []WeatherTag{TagLight, TagCloud}},
		{"scattered clouds", []WeatherTag{TagLight, TagCloud}},
		{"few clouds", []WeatherTag{TagLight, TagCloud}},
		{"overcast clouds", []WeatherTag{TagCloud}},
		{"clear sky", []WeatherTag{TagClear}},
		{"mist", []WeatherTag{TagMist}},
		{"dust", []WeatherTag{TagDust}},
		{"heavy intensity rain", []WeatherTag{TagRain}},
		{"light snow", []WeatherTag{TagLight, TagSnow}},
		{"thunderstorm", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			tags := DeriveTags(tt.description)

			assert.Len(t, tags, len(tt.expected))
			for _, tag := range tt.expected {
				assert.True(t, tags.Has(tag), "expected tag %s from %q", tag, tt.description)
			}
		})
	}
}

func TestTagSet_HasAny(t *testing.T) {
	tags := DeriveTags("light rain")

	assert.True(t, tags.HasAny(TagRain, TagMist, TagCloud))
	assert.True(t, tags.HasAny(TagSnow, TagLight))
	assert.False(t, tags.HasAny(TagSnow, TagMist))
	assert.False(t, tags.HasAny())
}
