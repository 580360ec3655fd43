package board

// FlipInfo is, for one color, one 8-cell line, and one focus position
// within that line, the number of opponent stones that would be
// captured toward the lower-index end (Lower) and the higher-index end
// (Higher) if the player placed a stone at the focus. A position is
// legal for that color on that line iff FlipCount() > 0.
type FlipInfo struct {
	Lower, Higher uint8
}

// FlipCount is the total number of stones FlipInfo would capture.
func (f FlipInfo) FlipCount() uint8 {
	return f.Lower + f.Higher
}

// lineCount is the number of distinct 8-cell line patterns: each cell is
// one of 3 states, so 3^Size patterns.
const lineCount = 6561 // 3^8

// lineInfo holds the 8 FlipInfos (one per focus position) for a single
// encoded line pattern.
type lineInfo [Size]FlipInfo

// Indexer precomputes, for each color and each of the 6561 possible
// 8-cell line patterns, the FlipInfo at every position in the line. Once
// built it is immutable and safe to share by reference across any
// number of IndexBoards.
type Indexer struct {
	tables [2][lineCount]lineInfo // indexed by Color
}

// NewIndexer builds both mobility tables. This is the one-time,
// startup-only cost IndexBoard trades for allocation-free ApplyMove.
func NewIndexer() *Indexer {
	idx := &Indexer{}
	idx.tables[ColorBlack] = buildMobilityTable(ColorBlack)
	idx.tables[ColorWhite] = buildMobilityTable(ColorWhite)
	return idx
}

// FlipInfo returns the precomputed FlipInfo for color on the given
// 8-cell line at the focus position pos. Requesting this for a color
// with no corresponding Square (there is none — Color only spans Black
// and White) cannot occur; passing a malformed line or out-of-range pos
// is a programming error, matching the "requesting a table for Empty is
// a programming error" rule for the related FlipInfo construction.
func (idx *Indexer) FlipInfo(color Color, line [Size]Square, pos int) FlipInfo {
	return idx.tables[color][encodeLine(line)][pos]
}

// encodeLine maps an 8-cell line to its base-3 index: Empty=0, Black=1,
// White=2, least-significant trit at position 0. Swapping this ordering
// silently breaks every table lookup built against it.
func encodeLine(line [Size]Square) int {
	index := 0
	mul := 1
	for i := 0; i < Size; i++ {
		index += int(line[i]) * mul
		mul *= 3
	}
	return index
}

// decodeLine is the inverse of encodeLine, used only to build the
// tables.
func decodeLine(index int) [Size]Square {
	var line [Size]Square
	for i := 0; i < Size; i++ {
		line[i] = Square(index % 3)
		index /= 3
	}
	return line
}

// buildMobilityTable runs the construction algorithm for every line
// pattern and every focus position: scan outward from the focus while
// cells are opponent-colored; if the scan lands on a same-color cell
// having crossed at least one opponent, that many stones are captured
// in that direction.
func buildMobilityTable(color Color) [lineCount]lineInfo {
	self := color.Square()
	opponent := color.Opponent().Square()

	var table [lineCount]lineInfo
	for i := 0; i < lineCount; i++ {
		line := decodeLine(i)
		for pos := 0; pos < Size; pos++ {
			if line[pos] != Empty {
				continue
			}

			var info FlipInfo

			j := pos - 1
			for j >= 0 && line[j] == opponent {
				j--
			}
			if j >= 0 && pos-j > 1 && line[j] == self {
				info.Lower = uint8(pos - j - 1)
			}

			j = pos + 1
			for j < Size && line[j] == opponent {
				j++
			}
			if j < Size && j-pos > 1 && line[j] == self {
				info.Higher = uint8(j - pos - 1)
			}

			table[i][pos] = info
		}
	}
	return table
}
