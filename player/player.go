// Package player implements the external collaborators spec.md places
// out of the board/search/eval core: a read-only state snapshot, the
// Player contract, a console-driven human player, an AI player wrapping
// search, and the turn-alternating game driver.
package player

import "github.com/tsukushibito/reversi/board"

// State is the read-only snapshot handed to a Player. The driver never
// exposes the live board, so a player cannot mutate search state.
//
// A C-compatible foreign boundary would encode this with small integer
// encodings (Square Empty=0/Black=1/White=2, Color Black=0/White=1) and
// fixed-size buffers; this module does not build that boundary, but the
// fields below are shaped so such a translation is mechanical.
type State struct {
	Squares    [board.CellCount]board.Square
	Depth      uint32
	BlackCount uint32
	WhiteCount uint32
	IsEnd      bool
	Turn       board.Color
	LastMove   *board.Move
}

// NewState snapshots b, tagging it with the move that produced it (nil
// for the initial position).
func NewState(b board.Board, lastMove *board.Move) State {
	return State{
		Squares:    b.Squares(),
		Depth:      b.Depth(),
		BlackCount: b.BlackCount(),
		WhiteCount: b.WhiteCount(),
		IsEnd:      b.IsGameOver(),
		Turn:       b.Turn(),
		LastMove:   lastMove,
	}
}

// Player is the contract the driver queries for a move each turn.
type Player interface {
	TakeAction(state State) board.Move
}
