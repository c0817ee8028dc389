package gui

// Setting and color names read from the Settings collaborator.
const (
	SettingSound = "gui.sound"

	ColorEnabled    = "gui.color.enabled"
	ColorForeground = "gui.color.foreground"
	ColorBackground = "gui.color.background"
	ColorBorder     = "gui.color.border"
	ColorText       = "gui.color.text"
)

// Settings is the read side of the settings collaborator as seen by widgets.
// Implementations fall back to their own defaults for missing or malformed values.
type Settings interface {
	Bool(name string) bool
	Color(name string) uint32
}

// Sounder plays audio feedback. It is supplied by the host.
type Sounder interface {
	PlayClick()
}

// Feedback plays a click sound when the SettingSound flag is on.
// A nil Feedback, or one missing either collaborator, is silent.
type Feedback struct {
	Settings Settings
	Sounder  Sounder
}

// Click plays the click sound if enabled.
func (f *Feedback) Click() {
	if f == nil || f.Settings == nil || f.Sounder == nil {
		return
	}
	if f.Settings.Bool(SettingSound) {
		f.Sounder.PlayClick()
	}
}
