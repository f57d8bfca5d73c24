package models

// Icon identifies a routine icon from a closed set. Unrecognised keys
// from the backing store fall back to IconDumbbell.
type Icon string

const (
	IconDumbbell       Icon = "dumbbell"
	IconPersonStanding Icon = "person-standing"
	IconHeartPulse     Icon = "heart-pulse"
	IconBike           Icon = "bike"
)

var iconGlyphs = map[Icon]string{
	IconDumbbell:       "🏋",
	IconPersonStanding: "🏃",
	IconHeartPulse:     "💓",
	IconBike:           "🚴",
}

// ParseIcon maps a stored icon key to a known Icon, defaulting to
// IconDumbbell.
func ParseIcon(s string) Icon {
	icon := Icon(s)

	if _, ok := iconGlyphs[icon]; !ok {
		return IconDumbbell
	}

	return icon
}

// Glyph returns the terminal glyph for the icon. The mapping is total:
// icons that did not come through ParseIcon still render as the
// dumbbell.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}

	return iconGlyphs[IconDumbbell]
}
