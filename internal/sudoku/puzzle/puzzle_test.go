package puzzle

import "testing"

func gridFromString(t *testing.T, s string) [81]int {
	t.Helper()
	if len(s) != 81 {
		t.Fatalf("grid string has %d chars, want 81", len(s))
	}
	var g [81]int
	for i, ch := range s {
		g[i] = int(ch - '0')
	}
	return g
}

func TestSolveEmptyBoardClassicalReachesCap(t *testing.T) {
	var grid [81]int
	p, err := New(grid, Config{SolveMax: 50})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if p.SolveCount() != 50 {
		t.Fatalf("SolveCount() = %d, want 50 (cap reached)", p.SolveCount())
	}
}

// A published minimal (17-clue) Sudoku, from Gordon Royle's collection.
const minimal17 = "" +
	"000000010" +
	"400000000" +
	"020000000" +
	"000050407" +
	"008000300" +
	"001090000" +
	"300400200" +
	"050100000" +
	"000806000"

func TestSolveUniquePuzzle(t *testing.T) {
	grid := gridFromString(t, minimal17)
	p, err := New(grid, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if p.SolveCount() != 1 {
		t.Fatalf("SolveCount() = %d, want 1", p.SolveCount())
	}
	sol := p.Solutions()[0]
	for idx, given := range grid {
		if given != 0 && sol[idx] != given {
			t.Fatalf("solution disagrees with given at %d: got %d, want %d", idx, sol[idx], given)
		}
	}
	for region := 0; region < 9; region++ {
		seen := make(map[int]bool)
		for c := 0; c < 9; c++ {
			v := sol[region*9+c]
			if seen[v] {
				t.Fatalf("row %d has a repeated value %d", region, v)
			}
			seen[v] = true
		}
	}
}

func TestSolveConflictingGivensIsZero(t *testing.T) {
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
	p, err := New(grid, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if p.SolveCount() != 0 {
		t.Fatalf("SolveCount() = %d, want 0", p.SolveCount())
	}
}

func TestSolveCountNeverExceedsSolveMax(t *testing.T) {
	var grid [81]int
	p, err := New(grid, Config{SolveMax: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if p.SolveCount() != 3 {
		t.Fatalf("SolveCount() = %d, want 3", p.SolveCount())
	}
}

func TestDiagonalVariantChangesSolvability(t *testing.T) {
	grid := gridFromString(t, minimal17)
	classical, err := New(grid, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := classical.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if classical.SolveCount() < 1 {
		t.Fatalf("classical puzzle should be solvable")
	}

	diag, err := New(grid, Config{Diagonal: true, SolveMax: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := diag.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// The diagonal variant may or may not agree with the classical unique
	// solution; both outcomes are valid, but solvecount must never exceed
	// the classical puzzle's structural constraints being satisfied too.
	if diag.SolveCount() > 2 {
		t.Fatalf("SolveCount() = %d exceeds SolveMax", diag.SolveCount())
	}
}

func TestKikagakuAndColorConstrainedRejected(t *testing.T) {
	var colors [81]byte
	for i := range colors {
		colors[i] = byte('a' + i/9)
	}
	var grid [81]int
	if _, err := New(grid, Config{KikagakuColors: &colors, ColorConstrained: true}); err == nil {
		t.Fatalf("expected an error combining kikagaku with colorconstrained")
	}
}

func TestSetOutOfRangeRejected(t *testing.T) {
	var grid [81]int
	p, err := New(grid, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Set(0, 0, 10); err == nil {
		t.Fatalf("expected an error for out-of-range value")
	}
	if err := p.Set(9, 0, 5); err == nil {
		t.Fatalf("expected an error for out-of-range row")
	}
}
