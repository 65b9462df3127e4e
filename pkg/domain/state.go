package domain

// Move records the direction of a transition.
type Move int8

const (
	MoveNone Move = iota // Initial state, no previous move
	MoveUp
	MoveDown
)

// MoveFrom maps the outcome of an up/down coin flip to a Move.
func MoveFrom(up bool) Move {
	if up {
		return MoveUp
	}
	return MoveDown
}

// Sign returns +1 for up, -1 for down and 0 when there was no move.
func (m Move) Sign() int {
	switch m {
	case MoveUp:
		return 1
	case MoveDown:
		return -1
	default:
		return 0
	}
}

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}

// LevelState is the state of the mean-reverting process.
type LevelState struct {
	Price int `json:"price"`
}

// MomentumState is the state of the momentum/reversal process.
type MomentumState struct {
	Price int `json:"price"`

	// PrevMove is MoveNone only for the initial state.
	PrevMove Move `json:"prev_move"`
}

// FrequencyState is the state of the relative-frequency process.
// The price is derived: start + NumUp - NumDown.
type FrequencyState struct {
	NumUp   int `json:"num_up"`
	NumDown int `json:"num_down"`
}
