package eval

import (
	"testing"

	"github.com/tsukushibito/reversi/board"
)

func TestSimpleEvaluateInitialPositionIsZero(t *testing.T) {
	squares := board.InitialSquares()
	s := NewSimple()
	if v := s.Evaluate(squares, board.ColorBlack); v != 0 {
		t.Errorf("Evaluate(initial, Black) = %d, want 0 (symmetric position)", v)
	}
	if v := s.Evaluate(squares, board.ColorWhite); v != 0 {
		t.Errorf("Evaluate(initial, White) = %d, want 0 (symmetric position)", v)
	}
}

func TestSimpleEvaluateIsSideRelative(t *testing.T) {
	squares := board.InitialSquares()
	squares[board.NewPosition(0, 0).Index()] = board.Black
	s := NewSimple()
	black := s.Evaluate(squares, board.ColorBlack)
	white := s.Evaluate(squares, board.ColorWhite)
	if black != -white {
		t.Errorf("Evaluate(Black) = %d, Evaluate(White) = %d, want negatives of each other", black, white)
	}
	if black <= 0 {
		t.Errorf("Black owns the corner, expected a positive score, got %d", black)
	}
}

func TestSimpleEvaluateCornerWeight(t *testing.T) {
	var squares [board.CellCount]board.Square
	squares[board.NewPosition(0, 0).Index()] = board.Black
	s := NewSimple()
	if v := s.Evaluate(squares, board.ColorBlack); v != 30 {
		t.Errorf("single corner stone scored %d, want 30", v)
	}
}
