package board

// IndexBoard shares ArrayBoard's flat-cell layout but derives legality
// and flips entirely from the precomputed mobility tables (Indexer):
// construction is zero-copy (a shared reference), and ApplyMove becomes
// a handful of writes with no ray-walking at runtime.
type IndexBoard struct {
	squares [CellCount]Square
	depth   uint32
	idx     *Indexer
}

// NewIndexBoard builds the standard initial position backed by idx.
func NewIndexBoard(idx *Indexer) *IndexBoard {
	return &IndexBoard{squares: InitialSquares(), idx: idx}
}

func (b *IndexBoard) Squares() [CellCount]Square { return b.squares }
func (b *IndexBoard) Depth() uint32              { return b.depth }
func (b *IndexBoard) Turn() Color                { return TurnFromDepth(b.depth) }

func (b *IndexBoard) Count(s Square) uint32 {
	var n uint32
	for _, c := range b.squares {
		if c == s {
			n++
		}
	}
	return n
}

func (b *IndexBoard) BlackCount() uint32 { return b.Count(Black) }
func (b *IndexBoard) WhiteCount() uint32 { return b.Count(White) }
func (b *IndexBoard) EmptyCount() uint32 { return b.Count(Empty) }

func (b *IndexBoard) IsGameOver() bool {
	return !hasAnyMove(b, ColorBlack) && !hasAnyMove(b, ColorWhite)
}

func (b *IndexBoard) Duplicate() Board {
	dup := *b
	return &dup
}

// lineDirection names one of the four lines passing through a cell.
type lineDirection int

const (
	left2Right lineDirection = iota
	top2Bottom
	topLeft2BottomRight
	bottomLeft2TopRight
)

// getLine extracts the 8-cell line through pos in the given canonical
// orientation. For the two diagonals, positions beyond the board are
// left Empty in the encoded pattern (the line array is zero-valued,
// i.e. Empty, at indices the walk never reaches).
func (b *IndexBoard) getLine(pos Position, dir lineDirection) [Size]Square {
	var line [Size]Square
	switch dir {
	case left2Right:
		base := NewPosition(pos.Row, 0).Index()
		copy(line[:], b.squares[base:base+Size])
	case top2Bottom:
		for i := 0; i < Size; i++ {
			line[i] = b.squares[NewPosition(i, pos.Col).Index()]
		}
	case topLeft2BottomRight:
		r, c := pos.Row-pos.Col, pos.Col-pos.Row
		if r < 0 {
			r = 0
		}
		if c < 0 {
			c = 0
		}
		for i := 0; i < Size && r < Size && c < Size; i++ {
			line[i] = b.squares[NewPosition(r, c).Index()]
			r++
			c++
		}
	case bottomLeft2TopRight:
		r, c := pos.Row+pos.Col, 0
		if r > Size-1 {
			c = r - (Size - 1)
			r = Size - 1
		}
		for i := 0; i < Size && r >= 0 && c < Size; i++ {
			line[i] = b.squares[NewPosition(r, c).Index()]
			r--
			c++
		}
	}
	return line
}

// focusIndex returns the offset of pos inside the 8-cell window getLine
// extracted for dir: the point the mobility table lookup focuses on.
func focusIndex(pos Position, dir lineDirection) int {
	switch dir {
	case left2Right:
		return pos.Col
	case top2Bottom:
		return pos.Row
	case topLeft2BottomRight:
		if pos.Row-pos.Col >= 0 {
			return pos.Col
		}
		return pos.Row
	default: // bottomLeft2TopRight
		if pos.Row+pos.Col-Size+1 < 0 {
			return pos.Col
		}
		return Size - 1 - pos.Row
	}
}

// flipInfos returns the four FlipInfos (one per line through pos) for
// color.
func (b *IndexBoard) flipInfos(color Color, pos Position) [4]FlipInfo {
	dirs := [4]lineDirection{left2Right, top2Bottom, topLeft2BottomRight, bottomLeft2TopRight}
	var infos [4]FlipInfo
	for i, dir := range dirs {
		line := b.getLine(pos, dir)
		infos[i] = b.idx.FlipInfo(color, line, focusIndex(pos, dir))
	}
	return infos
}

func (b *IndexBoard) GetMovablePositions(color Color) []Position {
	var positions []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := NewPosition(r, c)
			if b.squares[p.Index()] != Empty {
				continue
			}
			infos := b.flipInfos(color, p)
			total := infos[0].FlipCount() + infos[1].FlipCount() + infos[2].FlipCount() + infos[3].FlipCount()
			if total > 0 {
				positions = append(positions, p)
			}
		}
	}
	return positions
}

var lineSteps = [4][2]int{
	{0, 1},  // left2Right
	{1, 0},  // top2Bottom
	{1, 1},  // topLeft2BottomRight
	{-1, 1}, // bottomLeft2TopRight
}

func (b *IndexBoard) ApplyMove(m Move) (Board, bool) {
	if m.Kind == MovePass {
		if hasAnyMove(b, m.Color) {
			return nil, false
		}
		dup := *b
		dup.depth++
		return &dup, true
	}

	if b.squares[m.Pos.Index()] != Empty {
		return nil, false
	}

	infos := b.flipInfos(m.Color, m.Pos)
	total := infos[0].FlipCount() + infos[1].FlipCount() + infos[2].FlipCount() + infos[3].FlipCount()
	if total == 0 {
		return nil, false
	}

	self := m.Color.Square()
	dup := *b
	dup.squares[m.Pos.Index()] = self

	dirs := [4]lineDirection{left2Right, top2Bottom, topLeft2BottomRight, bottomLeft2TopRight}
	for i, dir := range dirs {
		dr, dc := lineSteps[i][0], lineSteps[i][1]
		info := infos[i]
		r, c := m.Pos.Row, m.Pos.Col
		for p := 0; p < int(info.Higher); p++ {
			r, c = r+dr, c+dc
			dup.squares[NewPosition(r, c).Index()] = self
		}
		r, c = m.Pos.Row, m.Pos.Col
		for p := 0; p < int(info.Lower); p++ {
			r, c = r-dr, c-dc
			dup.squares[NewPosition(r, c).Index()] = self
		}
		_ = dir
	}

	dup.depth++
	return &dup, true
}
