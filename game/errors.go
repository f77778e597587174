package game

import "errors"

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrParseMove   = errors.New("unrecognised move")
	ErrBoardSize   = errors.New("unsupported board size")
	ErrStartNumber = errors.New("start number must be non-negative")
	ErrHands       = errors.New("hand values must be in [0, 5)")
	ErrUnknownGame = errors.New("unknown game")
)
