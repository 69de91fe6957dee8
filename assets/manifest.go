package assets

import "path/filepath"

// Card font ids
const (
	FontOpenSansRegular = "open_sans_regular"
	FontOpenSansLight   = "open_sans_light"
	FontWeatherIcons    = "weather_icons"
)

// RegisterAll registers the full card asset manifest relative to dir.
// element_heavy_snow is registered but not yet referenced by the compositor.
func RegisterAll(r *Registry, dir string) error {
	fonts := []struct {
		id   string
		file string
		meta FontMeta
	}{
		{FontOpenSansRegular, "fonts/OpenSans-Regular.ttf", FontMeta{Family: "Open Sans", Weight: 400, Style: "normal"}},
		{FontOpenSansLight, "fonts/OpenSans-Light.ttf", FontMeta{Family: "Open Sans Light", Weight: 300}},
		{FontWeatherIcons, "fonts/weathericons-regular-webfont.ttf", FontMeta{Family: "Weather Icons"}},
	}

	images := []struct {
		id   string
		file string
	}{
		// GUI overlay
		{"overlay", "elements/overlay.png"},

		// Night assets
		{"element_night", "elements/night.png"},
		{"element_moon", "elements/moon.png"},
		{"element_moon_halloween", "elements/moon_halloween.png"},
		{"element_moon_mask", "elements/moon_mask.png"},

		// Day assets
		{"element_day", "elements/day.png"},
		{"element_afternoon", "elements/afternoon.png"},
		{"element_sun_bright", "elements/sun_bright.png"},
		{"element_sun_sunset", "elements/sun_sunset.png"},

		// General assets
		{"element_clouds", "elements/clouds.png"},
		{"element_rain", "elements/rain.png"},
		{"element_bats", "elements/halloween_bats.png"},
		{"element_light_snow", "elements/light_snow.png"},
		{"element_heavy_snow", "elements/heavy_snow.png"},
		{"element_mist", "elements/mist.png"},
		{"element_dust", "elements/dust.png"},
	}

	for _, f := range fonts {
		if err := r.RegisterFont(f.id, filepath.Join(dir, f.file), f.meta); err != nil {
			return err
		}
	}
	for _, img := range images {
		if err := r.RegisterImage(img.id, filepath.Join(dir, img.file)); err != nil {
			return err
		}
	}
	return nil
}
