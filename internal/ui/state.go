package ui

// state is the screen the TUI is showing.
type state int

const (
	stateMain state = iota
	stateTray
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateMain:
		return "Main"
	case stateTray:
		return "Tray"
	case stateHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
