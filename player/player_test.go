package player

import (
	"strings"
	"testing"

	"github.com/tsukushibito/reversi/board"
)

// firstMovePlayer always takes the first legal move in generation order,
// or passes. It mirrors the "greedy self-play" scenario from spec.md §8.
type firstMovePlayer struct{ color board.Color }

func (p firstMovePlayer) TakeAction(state State) board.Move {
	if state.Turn != p.color {
		panic("queried out of turn")
	}
	b := board.FromSquares(state.Squares, state.Depth)
	positions := b.GetMovablePositions(state.Turn)
	if len(positions) == 0 {
		return board.NewPass(state.Turn)
	}
	return board.NewPlace(state.Turn, positions[0])
}

func TestGameGreedySelfPlay(t *testing.T) {
	g := NewGame(board.NewBitBoard(), firstMovePlayer{board.ColorBlack}, firstMovePlayer{board.ColorWhite})
	final := g.Run()

	if final.Depth != 64 {
		t.Errorf("depth = %d, want 64", final.Depth)
	}
	if final.BlackCount != 19 {
		t.Errorf("black count = %d, want 19", final.BlackCount)
	}
	if final.WhiteCount != 45 {
		t.Errorf("white count = %d, want 45", final.WhiteCount)
	}
	if len(g.Moves()) != len(g.BoardHistory()) {
		t.Errorf("Moves and BoardHistory length mismatch: %d vs %d", len(g.Moves()), len(g.BoardHistory()))
	}
}

// rejectThenPassPlayer returns one illegal move before passing, to
// exercise the driver's retry-same-ply behavior.
type rejectThenPassPlayer struct {
	color   board.Color
	queried int
}

func (p *rejectThenPassPlayer) TakeAction(state State) board.Move {
	p.queried++
	if p.queried == 1 {
		// (0,0) is never a legal opening move.
		return board.NewPlace(p.color, board.NewPosition(0, 0))
	}
	return board.NewPass(p.color)
}

func TestGameRetriesIllegalMove(t *testing.T) {
	black := &rejectThenPassPlayer{color: board.ColorBlack}
	white := firstMovePlayer{board.ColorWhite}

	// The player's first answer, (0,0), is rejected on the initial
	// position.
	g := NewGame(board.NewBitBoard(), black, white)
	state := NewState(g.board, nil)
	illegal := black.TakeAction(state)
	_, ok := g.board.ApplyMove(illegal)
	if ok {
		t.Fatalf("expected (0,0) to be illegal on the initial position")
	}
	if black.queried != 1 {
		t.Fatalf("expected exactly one query so far, got %d", black.queried)
	}

	// Drive a full game where Black has no legal move but White does:
	// Black's (0,0) is rejected, Black is re-queried for the same ply and
	// passes, then White captures the only black stone and the game ends.
	var squares [board.CellCount]board.Square
	squares[board.NewPosition(0, 0).Index()] = board.White
	squares[board.NewPosition(0, 1).Index()] = board.Black
	black2 := &rejectThenPassPlayer{color: board.ColorBlack}
	g2 := NewGame(board.FromSquares(squares, 0), black2, white)
	final := g2.Run()
	if black2.queried != 2 {
		t.Errorf("Black queried %d times, want 2 (one rejected move, one retry)", black2.queried)
	}
	if final.Depth != 2 {
		t.Errorf("depth = %d, want 2", final.Depth)
	}
	if moves := g2.Moves(); len(moves) != 2 || moves[0] != board.NewPass(board.ColorBlack) {
		t.Errorf("moves = %v, want Black's pass then White's capture", moves)
	}
}

func TestParseMoveToken(t *testing.T) {
	cases := []struct {
		token string
		want  board.Position
		ok    bool
	}{
		{"a1", board.NewPosition(0, 0), true},
		{"h8", board.NewPosition(7, 7), true},
		{"d3", board.NewPosition(2, 3), true},
		{"A1", board.Position{}, false}, // uppercase rejected
		{"i1", board.Position{}, false},
		{"a9", board.Position{}, false},
		{"pass", board.Position{}, false},
		{"", board.Position{}, false},
	}
	for _, c := range cases {
		got, ok := parseMoveToken(c.token)
		if ok != c.ok {
			t.Errorf("parseMoveToken(%q) ok = %v, want %v", c.token, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("parseMoveToken(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}

func TestConsolePlayerAcceptsMoveAndPass(t *testing.T) {
	in := strings.NewReader("d3\n")
	var out strings.Builder
	p := NewConsolePlayer(board.ColorBlack, in, &out)

	state := NewState(board.NewBitBoard(), nil)
	move := p.TakeAction(state)
	want := board.NewPlace(board.ColorBlack, board.NewPosition(2, 3))
	if move != want {
		t.Errorf("move = %v, want %v", move, want)
	}
	if !strings.Contains(out.String(), "to move") {
		t.Errorf("expected a prompt to be written, got %q", out.String())
	}

	in2 := strings.NewReader("pass\n")
	var out2 strings.Builder
	p2 := NewConsolePlayer(board.ColorWhite, in2, &out2)
	move2 := p2.TakeAction(state)
	if move2 != board.NewPass(board.ColorWhite) {
		t.Errorf("move = %v, want Pass", move2)
	}
}

func TestConsolePlayerReprompts(t *testing.T) {
	in := strings.NewReader("zz\nq9\nd3\n")
	var out strings.Builder
	p := NewConsolePlayer(board.ColorBlack, in, &out)

	state := NewState(board.NewBitBoard(), nil)
	move := p.TakeAction(state)
	want := board.NewPlace(board.ColorBlack, board.NewPosition(2, 3))
	if move != want {
		t.Errorf("move = %v, want %v", move, want)
	}
	if strings.Count(out.String(), "invalid input") != 2 {
		t.Errorf("expected two reprompts, got output %q", out.String())
	}
}
