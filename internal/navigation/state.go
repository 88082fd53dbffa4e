package navigation

// ScrollThreshold is the vertical offset, in logical pixels, past which the
// header switches to its scrolled appearance.
const ScrollThreshold = 20

// State is the header's UI state. It is never persisted.
type State struct {
	DrawerOpen     bool   `mapstructure:"open"`
	Scrolled       bool   `mapstructure:"scrolled"`
	ActiveDropdown string `mapstructure:"dropdown"`
}

func (s State) HasActiveDropdown() bool {
	return s.ActiveDropdown != ""
}

// IsScrolled reports whether offset lies past ScrollThreshold.
func IsScrolled(offset float64) bool {
	return offset > ScrollThreshold
}
