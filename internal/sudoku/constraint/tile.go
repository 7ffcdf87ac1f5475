package constraint

import "sort"

// Tile is a read-only snapshot of one cell's position and remaining
// candidates: the board (Alternatives) owns the candidate array directly,
// and Tile is just a value returned by Tiles, used for sorting and
// branch-variable selection.
type Tile struct {
	Row, Col int
	Cand     Candidates
}

// Key orders tiles by branch-variable preference: smallest candidate count
// first, then row, then column.
func (t Tile) Key() (int, int, int) {
	return t.Cand.Count(), t.Row, t.Col
}

// Tiles returns a snapshot of all 81 cells, sorted by Key ascending.
func (a *Alternatives) Tiles() []Tile {
	out := make([]Tile, 81)
	for idx := range a.cand {
		out[idx] = Tile{Row: rowOf(idx), Col: colOf(idx), Cand: a.cand[idx]}
	}
	sort.Slice(out, func(i, j int) bool {
		ni, ri, ci := out[i].Key()
		nj, rj, cj := out[j].Key()
		return ni < nj || (ni == nj && (ri < rj || (ri == rj && ci < cj)))
	})
	return out
}
