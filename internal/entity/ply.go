package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// PlyEvent describes one accepted move and the game state right after it.
type PlyEvent struct {
	GameID string          `json:"game_id"`
	Ply    int             `json:"ply"`
	Row    int             `json:"row"`
	Col    int             `json:"col"`
	Mark   Mark            `json:"mark"`
	Player string          `json:"player"`
	Board  [CellCount]Mark `json:"board"`
	Status string          `json:"status"`
	Winner Mark            `json:"winner,omitempty"`
}

func (that *PlyEvent) IsFinished() bool {
	return that.Status == StatusFinished
}
