package enum

// Toggle flips dark and light. The system theme becomes dark.
func (t Theme) Toggle() Theme {
	switch t {
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeDark
	}
}
