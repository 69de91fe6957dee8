package card

import "time"

// Card canvas dimensions in pixels
const (
	CanvasWidth  = 450
	CanvasHeight = 100
)

// moonStageWidth is the horizontal distance between two adjacent stage
// windows in the moon mask sprite.
const moonStageWidth = 110

// LayerInstruction describes one sprite placement on the card, in draw order
type LayerInstruction struct {
	AssetID        string
	X              int
	Y              int
	Opacity        float64
	MaskAssetID    string
	MaskOffsetX    int
	FlipHorizontal bool

	// Required marks layers whose absence fails the whole render
	Required bool
}

// SkyConditions carries the non-weather inputs of layer selection
type SkyConditions struct {
	MoonStage  int
	Northern   bool
	LocalMonth time.Month
}

// ComputeLayers decides which sprites appear on the card and in what order:
// backdrop first, then celestial body, atmospherics, precipitation, seasonal
// extras and the frame overlay on top.
func ComputeLayers(phase DayPhase, tags TagSet, sky SkyConditions) []LayerInstruction {
	layers := []LayerInstruction{
		{AssetID: phase.BackdropID(), Opacity: 1, Required: true},
	}

	switch phase {
	case DayPhaseNight:
		moonID := "element_moon"
		if sky.LocalMonth == time.October {
			moonID = "element_moon_halloween"
		}
		layers = append(layers, LayerInstruction{
			AssetID:        moonID,
			X:              340,
			Y:              -15,
			Opacity:        1,
			MaskAssetID:    "element_moon_mask",
			MaskOffsetX:    -(moonStageWidth * sky.MoonStage),
			FlipHorizontal: !sky.Northern,
		})
	case DayPhaseAfternoon:
		sunsetOpacity := 1.0
		if tags.HasAny(TagRain, TagMist, TagCloud) {
			sunsetOpacity = 0.5
		}
		layers = append(layers, LayerInstruction{
			AssetID: "element_sun_sunset",
			X:       243,
			Y:       -112,
			Opacity: sunsetOpacity,
		})
	case DayPhaseDay:
		if !tags.Has(TagMist) {
			layers = append(layers, LayerInstruction{
				AssetID: "element_sun_bright",
				X:       313,
				Y:       -42,
				Opacity: 1,
			})
		}
	}

	if tags.Has(TagMist) {
		layers = append(layers,
			LayerInstruction{AssetID: "element_mist", Opacity: 0.5},
			LayerInstruction{AssetID: "element_dust", Opacity: 0.5},
		)
	}

	if tags.HasAny(TagCloud, TagRain) {
		cloudOpacity := 0.75
		if tags.HasAny(TagRain, TagLight) {
			cloudOpacity = 0.25
		}
		layers = append(layers, LayerInstruction{
			AssetID: "element_clouds",
			Opacity: cloudOpacity,
		})
	}

	if tags.Has(TagRain) {
		layers = append(layers, LayerInstruction{AssetID: "element_rain", Opacity: 1})
	}

	if tags.Has(TagSnow) {
		layers = append(layers, LayerInstruction{AssetID: "element_light_snow", Opacity: 1})
	}

	if phase == DayPhaseNight && sky.LocalMonth == time.October {
		layers = append(layers, LayerInstruction{AssetID: "element_bats", Opacity: 1})
	}

	layers = append(layers, LayerInstruction{AssetID: "overlay", Opacity: 1})
	return layers
}
