package components

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"None", "Player", "Peep", "Wall"}
}

// String returns the display name for a ScreenID.
func (s ScreenID) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenMenu:
		return "Menu"
	case ScreenGame:
		return "Game"
	}
	return "Unknown"
}
