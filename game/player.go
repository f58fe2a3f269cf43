package game

// Player identifies one of the two sides. The zero value None marks unowned
// cells and a drawn game.
type Player int

const (
	None Player = iota
	Red
	Blue
)

// Other returns the opposing player, or None for None.
func (p Player) Other() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	default:
		return "NONE"
	}
}
