package domain

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode devuelve el modo y si el valor era reconocido.
func ParseThemeMode(value string) (ThemeMode, bool) {
	switch ThemeMode(value) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return ThemeLight, false
	}
}

// Opposite devuelve el otro modo.
func (m ThemeMode) Opposite() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
