package entity

// Player is the identity a move is attributed to. It is never mutated after construction.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		Name: name,
		Mark: mark,
	}
}

func (that *Player) String() string {
	return that.Name + " (" + string(that.Mark) + ")"
}
