package models

// Screen identifies the view the rendering layer should show.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenInterests Screen = "interests"
	ScreenDiscovery Screen = "discovery"
	ScreenHome      Screen = "home"
	ScreenClub      Screen = "club"
	ScreenMessages  Screen = "messages"
	ScreenMyClubs   Screen = "clubs"
	ScreenProfile   Screen = "profile"
)

// AllScreens lists every screen in navigation order.
var AllScreens = []Screen{
	ScreenLogin,
	ScreenInterests,
	ScreenDiscovery,
	ScreenHome,
	ScreenClub,
	ScreenMessages,
	ScreenMyClubs,
	ScreenProfile,
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	switch s {
	case ScreenLogin, ScreenInterests, ScreenDiscovery, ScreenHome,
		ScreenClub, ScreenMessages, ScreenMyClubs, ScreenProfile:
		return true
	}
	return false
}

// SignedIn reports whether the screen is part of the main app rather than onboarding.
func (s Screen) SignedIn() bool {
	return s.Valid() && s != ScreenLogin && s != ScreenInterests
}
