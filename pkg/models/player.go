package models

// Player holds the driver's intent for the current tick.
// Both fields are set straight from input each tick; nothing carries over.
type Player struct {
	LateralOffset float64 // Steering position, in track widths
	Speed         float64 // World units per tick, negative reverses
}

// Moving reports whether the player is travelling in either direction.
func (p Player) Moving() bool {
	return p.Speed != 0
}

// Direction returns 1 going forwards, -1 going backwards and 0 when stopped.
func (p Player) Direction() float64 {
	switch {
	case p.Speed > 0:
		return 1
	case p.Speed < 0:
		return -1
	}
	return 0
}
