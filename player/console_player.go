package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsukushibito/reversi/board"
)

// ConsolePlayer reads moves typed at an io.Reader (normally os.Stdin)
// and writes prompts and the board to an io.Writer (normally
// os.Stdout). A move token is "<file><rank>" with file in a..h and rank
// in 1..8, lowercase only; the literal word "pass" submits a pass. Any
// other input is rejected and re-prompted — never aborts the game.
type ConsolePlayer struct {
	Color  board.Color
	Reader *bufio.Reader
	Writer io.Writer
}

// NewConsolePlayer builds a ConsolePlayer for color, reading from r and
// writing to w.
func NewConsolePlayer(color board.Color, r io.Reader, w io.Writer) *ConsolePlayer {
	return &ConsolePlayer{Color: color, Reader: bufio.NewReader(r), Writer: w}
}

func (p *ConsolePlayer) TakeAction(state State) board.Move {
	RenderBoard(p.Writer, state.Squares)
	for {
		fmt.Fprintf(p.Writer, "%s to move (e.g. d3, or pass): ", state.Turn)
		line, err := p.Reader.ReadString('\n')
		if err != nil && line == "" {
			return board.NewPass(p.Color)
		}
		line = strings.TrimSpace(line)

		if line == "pass" {
			return board.NewPass(p.Color)
		}

		pos, ok := parseMoveToken(line)
		if !ok {
			fmt.Fprintln(p.Writer, "invalid input, try again")
			continue
		}
		return board.NewPlace(p.Color, pos)
	}
}

// parseMoveToken parses a two-character "<file><rank>" token, file in
// a..h and rank in 1..8.
func parseMoveToken(token string) (board.Position, bool) {
	if len(token) != 2 {
		return board.Position{}, false
	}
	file, rank := token[0], token[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return board.Position{}, false
	}
	col := int(file - 'a')
	row := int(rank - '1')
	return board.NewPosition(row, col), true
}

// RenderBoard writes the console text form: a column header, eight
// rows each preceded by its row number, and two characters per cell
// (Empty=".", Black="b", White="w").
func RenderBoard(w io.Writer, squares [board.CellCount]board.Square) {
	fmt.Fprint(w, "  ")
	for c := 0; c < board.Size; c++ {
		fmt.Fprintf(w, " %c", 'a'+c)
	}
	fmt.Fprintln(w)
	for r := 0; r < board.Size; r++ {
		fmt.Fprintf(w, "%d ", r+1)
		for c := 0; c < board.Size; c++ {
			fmt.Fprintf(w, " %s", squares[board.NewPosition(r, c).Index()])
		}
		fmt.Fprintln(w)
	}
}
