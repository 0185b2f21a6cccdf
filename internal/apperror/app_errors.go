package apperror

import "errors"

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrOutOfRangeMove   = errors.New("move is out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInputUnavailable = errors.New("input is unavailable")
)
