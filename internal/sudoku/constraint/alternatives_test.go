package constraint

import "testing"

func gridFromString(t *testing.T, s string) [81]int {
	t.Helper()
	if len(s) != 81 {
		t.Fatalf("grid string has %d chars, want 81", len(s))
	}
	var g [81]int
	for i, ch := range s {
		if ch < '0' || ch > '9' {
			t.Fatalf("grid string has non-digit %q at %d", ch, i)
		}
		g[i] = int(ch - '0')
	}
	return g
}

// checkInvariants asserts the live invariants that must hold after every
// propagation round while solvable.
func checkInvariants(t *testing.T, a *Alternatives) {
	t.Helper()
	if !a.solvable {
		return
	}
	for idx, c := range a.cand {
		if c.IsEmpty() {
			t.Fatalf("cell %d has an empty candidate set while solvable", idx)
		}
	}
	for idx, c := range a.cand {
		v, ok := c.Only()
		if !ok {
			continue
		}
		if !a.solvedByN[v][idx] {
			t.Fatalf("cell %d is singleton {%d} but solvedByN[%d] doesn't list it", idx, v, v)
		}
		for _, kind := range a.activeKinds() {
			ridx, ok := a.indexOf(kind, idx)
			if !ok {
				continue
			}
			for _, peer := range a.cellsOf(kind, ridx) {
				if peer == idx {
					continue
				}
				if a.cand[peer].Has(v) {
					t.Fatalf("peer %d of singleton cell %d (value %d, region %v) still lists %d", peer, idx, v, kind, v)
				}
			}
		}
	}
	for n := 1; n <= 9; n++ {
		for idx := range a.solvedByN[n] {
			v, ok := a.cand[idx].Only()
			if !ok || v != n {
				t.Fatalf("solvedByN[%d] lists cell %d whose candidates are %v", n, idx, a.cand[idx])
			}
		}
	}
	if len(a.pending) != 0 {
		t.Fatalf("pending is non-empty after propagation: %v", a.pending)
	}
}

func TestNewAlternativesEmptyBoard(t *testing.T) {
	var grid [81]int
	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	if !a.solvable {
		t.Fatalf("empty board marked unsolvable")
	}
	for idx, c := range a.cand {
		if c != AllCandidates {
			t.Fatalf("cell %d = %v, want AllCandidates on an empty board", idx, c)
		}
	}
	checkInvariants(t, a)
}

func TestNewAlternativesExcludesPeers(t *testing.T) {
	grid := gridFromString(t,
		"500000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000")
	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	checkInvariants(t, a)
	// (0,1) is a row peer of (0,0)=5: 5 must be excluded.
	if a.cand[1].Has(5) {
		t.Fatalf("row peer still has 5 as a candidate")
	}
	// (1,1) is a block peer: 5 must be excluded.
	if a.cand[10].Has(5) {
		t.Fatalf("block peer still has 5 as a candidate")
	}
	// (8,0) is a column peer: 5 must be excluded.
	if a.cand[72].Has(5) {
		t.Fatalf("column peer still has 5 as a candidate")
	}
	// an unrelated cell keeps all 9 candidates.
	if a.cand[40] != AllCandidates {
		t.Fatalf("unrelated cell 40 = %v, want AllCandidates", a.cand[40])
	}
}

func TestNewAlternativesConflictingGivens(t *testing.T) {
	grid := gridFromString(t,
		"550000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000")
	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	if a.solvable {
		t.Fatalf("two givens of 5 in the same row should be unsolvable")
	}
}

func TestNewAlternativesInvalidDigitRejected(t *testing.T) {
	var grid [81]int
	grid[0] = 15
	if _, err := NewAlternatives(grid, Options{}); err == nil {
		t.Fatalf("expected an error for an out-of-range digit")
	}
}

func TestCloneIsolation(t *testing.T) {
	var grid [81]int
	grid[0] = 5
	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	before := a.cand[40]
	clone := a.Clone(a.depth + 1)
	clone.Set(4, 4, 3)
	if a.cand[40] != before {
		t.Fatalf("mutating the clone changed the parent's candidates at 40: %v -> %v", before, a.cand[40])
	}
	if len(a.pending) != 0 || len(a.dirty) != 0 {
		t.Fatalf("parent worklists disturbed by clone mutation")
	}
}

func TestPropagateForcesNakedSingle(t *testing.T) {
	// A row one cell short of complete: propagate alone (not invert) forces
	// the last cell via a naked single once all peers have excluded it.
	grid := gridFromString(t,
		"123456780"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000"+
			"000000000")
	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	checkInvariants(t, a)
	if only, ok := a.cand[8].Only(); !ok || only != 9 {
		t.Fatalf("cell 8 = %v, want forced singleton {9}", a.cand[8])
	}
}

func TestInvertPointingPairAcrossBlockAndRow(t *testing.T) {
	// Within block 0, every cell except (0,0) and (0,1) is given a value
	// other than 3, so 3's only possible block-0 cells are (0,0) and (0,1)
	// -- both in row 0. The pointing-pair rule must then strip 3 from the
	// rest of row 0 without any branching.
	var grid [81]int
	grid[cellIndex(0, 2)] = 7
	grid[cellIndex(1, 0)] = 1
	grid[cellIndex(1, 1)] = 2
	grid[cellIndex(1, 2)] = 4
	grid[cellIndex(2, 0)] = 5
	grid[cellIndex(2, 1)] = 6
	grid[cellIndex(2, 2)] = 8

	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	checkInvariants(t, a)
	if !a.cand[cellIndex(0, 0)].Has(3) || !a.cand[cellIndex(0, 1)].Has(3) {
		t.Fatalf("expected 3 to remain a candidate of (0,0) and (0,1)")
	}
	for col := 3; col < 9; col++ {
		if a.cand[cellIndex(0, col)].Has(3) {
			t.Fatalf("pointing pair failed to strip 3 from row 0, col %d", col)
		}
	}
}

func TestIdempotentPropagateInvert(t *testing.T) {
	var grid [81]int
	grid[0] = 5
	a, err := NewAlternatives(grid, Options{})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	before := a.cand
	a.propagate()
	a.invert()
	if before != a.cand {
		t.Fatalf("propagate/invert on a fixed point changed candidates")
	}
}

func TestDiagonalVariantExcludesAcrossDiagonal(t *testing.T) {
	var grid [81]int
	grid[0] = 7 // (0,0) is on the TLBR diagonal
	a, err := NewAlternatives(grid, Options{Diagonal: true})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	checkInvariants(t, a)
	// (4,4) is on the TLBR diagonal with (0,0).
	if a.cand[40].Has(7) {
		t.Fatalf("diagonal peer (4,4) still has 7 as a candidate")
	}
	// (8,8) likewise.
	if a.cand[80].Has(7) {
		t.Fatalf("diagonal peer (8,8) still has 7 as a candidate")
	}
}

func TestColorConstrainedExcludesQuadrantPosition(t *testing.T) {
	var grid [81]int
	grid[cellIndex(1, 1)] = 4
	a, err := NewAlternatives(grid, Options{ColorConstrained: true})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	checkInvariants(t, a)
	if a.cand[cellIndex(4, 4)].Has(4) {
		t.Fatalf("quadrant-position peer (4,4) still has 4 as a candidate")
	}
	if a.cand[cellIndex(7, 7)].Has(4) {
		t.Fatalf("quadrant-position peer (7,7) still has 4 as a candidate")
	}
}

func TestKikagakuModeDisablesBlockRegions(t *testing.T) {
	colors := simpleKikagakuColors()
	part, err := NewKikagakuPartition(colors)
	if err != nil {
		t.Fatalf("NewKikagakuPartition: %v", err)
	}
	var grid [81]int
	grid[0] = 6
	a, err := NewAlternatives(grid, Options{Kikagaku: part})
	if err != nil {
		t.Fatalf("NewAlternatives: %v", err)
	}
	checkInvariants(t, a)
	kinds := a.activeKinds()
	for _, k := range kinds {
		if k == RegionBlock {
			t.Fatalf("kikagaku mode still lists RegionBlock as active")
		}
	}
}

// simpleKikagakuColors builds a 9-color grid identical to the classical
// 3x3 blocks, just to exercise the partition/region plumbing in tests.
func simpleKikagakuColors() [81]byte {
	var colors [81]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			block := (r/3)*3 + c/3
			colors[cellIndex(r, c)] = byte('a' + block)
		}
	}
	return colors
}
