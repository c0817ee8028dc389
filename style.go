package gui

// Spacing constants for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
)

// Style defines the visual appearance of widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	BackgroundColor uint32 // Widget background
	HoveredColor    uint32 // Hover highlight
	EnabledColor    uint32 // "On" state (toggles, active catalog items)
	BorderColor     uint32

	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	BorderSize    float32
	Padding       float32
	ScrollbarSize float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		BackgroundColor: RGBA(20, 20, 20, 200),
		HoveredColor:    RGBA(110, 110, 110, 128),
		EnabledColor:    RGBA(0, 128, 255, 128),
		BorderColor:     ColorWhite,

		ScrollbarBgColor:   RGBA(20, 20, 20, 150),
		ScrollbarGrabColor: RGBA(90, 90, 90, 255),

		BorderSize:    1,
		Padding:       SpaceXS,
		ScrollbarSize: 3,
	}
}

// StyleFromSettings overlays the settings palette onto DefaultStyle.
// Colors the settings report as fully transparent keep the default.
func StyleFromSettings(s Settings) Style {
	style := DefaultStyle()
	if s == nil {
		return style
	}
	override := func(dst *uint32, name string) {
		if c := s.Color(name); c != ColorTransparent {
			*dst = c
		}
	}
	override(&style.TextColor, ColorText)
	override(&style.BackgroundColor, ColorBackground)
	override(&style.HoveredColor, ColorForeground)
	override(&style.EnabledColor, ColorEnabled)
	override(&style.BorderColor, ColorBorder)
	return style
}
