package constraint

import "sort"

// Options configures a fresh Alternatives at construction time.
type Options struct {
	Diagonal         bool
	ColorConstrained bool
	Kikagaku         *KikagakuPartition
	Stats            *Statistics
	Depth            int
}

// Alternatives is the live board state during solving: one candidate
// bitmask per cell (the arena-of-81 rendering of the source's per-tile
// back-pointer model), the solved_by_n index, and the two worklists that
// drive propagate/invert to a fixpoint.
type Alternatives struct {
	cand      [81]Candidates
	solvedByN [10]map[int]bool // value 1..9 -> set of cell indices

	solvable bool

	diagonal         bool
	colorConstrained bool
	kikagaku         bool
	kikagakuRegionOf [81]int
	kikagakuCells    [9][]int

	pending map[int]bool     // cell indices just turned singleton
	dirty   map[regionRef]bool

	depth int
	stats *Statistics
}

// NewAlternatives builds a fresh board state from an 81-cell input grid
// (row-major, 0 = blank). Block and kikagaku regions are mutually
// exclusive; passing a Kikagaku partition implies kikagaku mode and
// disables the 3x3 block regions.
func NewAlternatives(grid [81]int, opts Options) (*Alternatives, error) {
	a := &Alternatives{
		solvable:         true,
		diagonal:         opts.Diagonal,
		colorConstrained: opts.ColorConstrained,
		pending:          make(map[int]bool),
		dirty:            make(map[regionRef]bool),
		depth:            opts.Depth,
		stats:            opts.Stats,
	}
	for i := range a.cand {
		a.cand[i] = AllCandidates
	}
	for n := 1; n <= 9; n++ {
		a.solvedByN[n] = make(map[int]bool)
	}
	for i := range a.kikagakuRegionOf {
		a.kikagakuRegionOf[i] = -1
	}
	if opts.Kikagaku != nil {
		a.kikagaku = true
		a.kikagakuRegionOf = opts.Kikagaku.regionOf
		a.kikagakuCells = opts.Kikagaku.cells
	}

	for idx, v := range grid {
		if v == 0 {
			continue
		}
		if v < 1 || v > 9 {
			return nil, ErrInvalidInput
		}
		a.setAt(idx, v)
	}
	a.propagate()
	a.invert()
	return a, nil
}

// Solvable reports whether this state is still consistent.
func (a *Alternatives) Solvable() bool { return a.solvable }

// Diagonal, ColorConstrained, Kikagaku report the active variant flags.
func (a *Alternatives) Diagonal() bool         { return a.diagonal }
func (a *Alternatives) ColorConstrained() bool { return a.colorConstrained }
func (a *Alternatives) IsKikagaku() bool       { return a.kikagaku }

// CandidatesAt returns the candidate bitmask at cell index idx (0..80).
func (a *Alternatives) CandidatesAt(idx int) Candidates { return a.cand[idx] }

// Depth returns the search-depth tag this state was built or cloned with.
func (a *Alternatives) Depth() int { return a.depth }

// SolvedPositions returns the set of cell indices currently solved to n.
func (a *Alternatives) SolvedPositions(n int) []int {
	out := make([]int, 0, len(a.solvedByN[n]))
	for idx := range a.solvedByN[n] {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Clone deep-copies this state for a new search branch at the given depth.
// The clone owns its own candidate array and worklists; no aliasing with
// the parent remains.
func (a *Alternatives) Clone(depth int) *Alternatives {
	na := &Alternatives{
		cand:             a.cand,
		solvable:         a.solvable,
		diagonal:         a.diagonal,
		colorConstrained: a.colorConstrained,
		kikagaku:         a.kikagaku,
		kikagakuRegionOf: a.kikagakuRegionOf,
		pending:          make(map[int]bool),
		dirty:            make(map[regionRef]bool),
		depth:            depth,
		stats:            a.stats,
	}
	for i, c := range a.kikagakuCells {
		if c != nil {
			cp := make([]int, len(c))
			copy(cp, c)
			na.kikagakuCells[i] = cp
		}
	}
	for n := 1; n <= 9; n++ {
		na.solvedByN[n] = make(map[int]bool, len(a.solvedByN[n]))
		for idx := range a.solvedByN[n] {
			na.solvedByN[n][idx] = true
		}
	}
	return na
}

// Set places value v at cell (row, col), then runs propagate() followed by
// invert() to push the consequences of the assignment through the board.
func (a *Alternatives) Set(row, col, v int) {
	a.setAt(cellIndex(row, col), v)
	a.propagate()
	a.invert()
}

// --- tile-level mutators (Alternatives is the "parent" a bare Tile would
// otherwise hold a back-pointer to) ---

func (a *Alternatives) discardAt(idx, v int) {
	before := a.cand[idx]
	if !before.Has(v) {
		return
	}
	after := before.Clear(v)
	a.cand[idx] = after
	if after.IsEmpty() {
		a.solvable = false
		return
	}
	a.markDirty(idx)
	if after.Count() == 1 && before.Count() != 1 {
		a.markSolved(idx)
	}
}

func (a *Alternatives) setAt(idx, v int) {
	c := a.cand[idx]
	if !c.Has(v) {
		a.cand[idx] = 0
		a.solvable = false
		return
	}
	if c.Count() == 1 {
		// Already the singleton {v}: no-op (must already equal v, since
		// discard would have cleared v from a singleton it could not keep).
		return
	}
	a.cand[idx] = NewCandidates([]int{v})
	a.markDirty(idx)
	a.markSolved(idx)
}

func (a *Alternatives) markDirty(idx int) {
	for _, kind := range a.activeKinds() {
		if ridx, ok := a.indexOf(kind, idx); ok {
			a.dirty[regionRef{kind, ridx}] = true
		}
	}
}

func (a *Alternatives) markSolved(idx int) {
	v, ok := a.cand[idx].Only()
	if !ok {
		return
	}
	a.solvedByN[v][idx] = true
	a.pending[idx] = true
}

// --- propagation ---

// propagate drains pending: every newly-singleton cell excludes its value
// from every peer in every active region. Confluent: each discard strictly
// shrinks a candidate set, so this always terminates.
func (a *Alternatives) propagate() {
	for a.solvable && len(a.pending) > 0 {
		idx := popAnyInt(a.pending)
		v, ok := a.cand[idx].Only()
		if !ok {
			a.solvable = false
			return
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
				a.discardAt(peer, v)
				if !a.solvable {
					return
				}
			}
		}
	}
}

// --- inference ---

type valueCount struct {
	v     int
	cells []int
}

// invert drains dirty: for each region popped, it runs the per-value
// cardinality pass (forced singletons, pointing pair/triple elimination
// across region kinds) and a hidden/naked k-subset sweep, re-running
// propagate after every modification.
func (a *Alternatives) invert() {
	for a.solvable && len(a.dirty) > 0 {
		ref := popAnyRegion(a.dirty)
		a.invertRegion(ref)
		if !a.solvable {
			return
		}
		a.propagate()
	}
}

func (a *Alternatives) invertRegion(ref regionRef) {
	cells := a.cellsOf(ref.kind, ref.idx)
	numbers := make([]valueCount, 9)
	for v := 1; v <= 9; v++ {
		numbers[v-1].v = v
	}
	for _, idx := range cells {
		for v := 1; v <= 9; v++ {
			if a.cand[idx].Has(v) {
				numbers[v-1].cells = append(numbers[v-1].cells, idx)
			}
		}
	}

	ordered := make([]valueCount, len(numbers))
	copy(ordered, numbers)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i].cells) < len(ordered[j].cells) })

valueLoop:
	for _, nc := range ordered {
		l := len(nc.cells)
		switch {
		case l == 0:
			a.solvable = false
			a.stats.AddInvertStop(a.depth, 1)
			return
		case l == 1:
			idx := nc.cells[0]
			wasSingleton := a.cand[idx].Count() == 1
			a.setAt(idx, nc.v)
			if !wasSingleton {
				a.stats.AddInvertMatches(a.depth, 1)
			}
			a.propagate()
			if !a.solvable {
				return
			}
			continue
		case l > 3:
			break valueLoop
		}
		a.pointingElimination(ref.kind, nc)
		a.propagate()
		if !a.solvable {
			return
		}
	}

	a.hiddenNakedSubsets(numbers)
}

// pointingElimination implements the generalized pointing-pair/triple rule:
// if every cell that can hold v within ref is also confined to a single
// region of some other kind, v can be removed from every other cell of that
// region.
func (a *Alternatives) pointingElimination(own RegionKind, nc valueCount) {
	for _, kind2 := range a.activeKinds() {
		if kind2 == own {
			continue
		}
		first, ok := a.indexOf(kind2, nc.cells[0])
		if !ok {
			continue
		}
		allSame := true
		for _, idx := range nc.cells[1:] {
			ridx, ok := a.indexOf(kind2, idx)
			if !ok || ridx != first {
				allSame = false
				break
			}
		}
		if !allSame {
			continue
		}
		inSet := make(map[int]bool, len(nc.cells))
		for _, idx := range nc.cells {
			inSet[idx] = true
		}
		for _, idx := range a.cellsOf(kind2, first) {
			if inSet[idx] {
				continue
			}
			before := a.cand[idx].Count()
			a.discardAt(idx, nc.v)
			if !a.solvable {
				return
			}
			if a.cand[idx].Count() != before {
				a.stats.AddInvertMatches(a.depth, 1)
			}
		}
	}
}

// hiddenNakedSubsets is the cardinality sweep over the values that have
// between 2 and 7 (region size minus 2) candidate cells: for every k-subset
// S of those values, 2 <= k < len(multi), whose combined cell count doesn't
// exceed k, every other candidate is stripped from those cells.
func (a *Alternatives) hiddenNakedSubsets(numbers []valueCount) {
	var multi []valueCount
	for _, nc := range numbers {
		if len(nc.cells) >= 2 && len(nc.cells) <= 9-2 {
			multi = append(multi, nc)
		}
	}
	for k := 2; k < len(multi); k++ {
		for _, combo := range indexSubsets(len(multi), k) {
			values := make(map[int]bool, k)
			union := make(map[int]bool)
			for _, ci := range combo {
				values[multi[ci].v] = true
				for _, cell := range multi[ci].cells {
					union[cell] = true
				}
			}
			if len(union) > k {
				continue
			}
			for cell := range union {
				for v := 1; v <= 9; v++ {
					if a.cand[cell].Has(v) && !values[v] {
						a.discardAt(cell, v)
						a.stats.AddNumberSets(a.depth, 1)
						if !a.solvable {
							return
						}
					}
				}
			}
			a.propagate()
			if !a.solvable {
				return
			}
		}
	}
}

// indexSubsets returns every k-element subset of {0, ..., n-1}, as ascending
// index slices, for the hidden/naked-set sweep in hiddenNakedSubsets to walk
// over multi (the values with 2 to 7 candidate cells in a region).
func indexSubsets(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	current := make([]int, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			out = append(out, combo)
			return
		}
		for i := start; i <= n-(k-len(current)); i++ {
			current = append(current, i)
			walk(i + 1)
			current = current[:len(current)-1]
		}
	}
	walk(0)
	return out
}

func popAnyInt(m map[int]bool) int {
	for k := range m {
		delete(m, k)
		return k
	}
	panic("pop from empty set")
}

func popAnyRegion(m map[regionRef]bool) regionRef {
	for k := range m {
		delete(m, k)
		return k
	}
	panic("pop from empty set")
}
