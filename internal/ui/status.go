package ui

// Status carries the values the HUD displays each frame.
type Status struct {
	Rule       string
	Generation int
	Population int
	Paused     bool
}
