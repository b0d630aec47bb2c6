package rule

// Conway returns John Conway's original rules (B3/S23).
func Conway() *Rule {
	return New("Conway's Life (B3/S23)", []int{3}, []int{2, 3})
}

// HighLife returns Nathan Thompson's HighLife rules (B36/S23), which admit
// self-replicating patterns Conway's rules do not.
func HighLife() *Rule {
	return New("HighLife (B36/S23)", []int{3, 6}, []int{2, 3})
}

// DayNight returns the symmetric Day & Night rules (B3678/S34678), under
// which patterns and their inverses behave alike.
func DayNight() *Rule {
	return New("Day & Night (B3678/S34678)", []int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
}

// Maze returns the maze-generation rules (B3/S12345). The permissive
// survival range grows interconnected corridor structures.
func Maze() *Rule {
	return New("Maze (B3/S12345)", []int{3}, []int{1, 2, 3, 4, 5})
}
