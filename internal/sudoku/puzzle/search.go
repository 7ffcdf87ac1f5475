package puzzle

import "sudoku-forge/internal/sudoku/constraint"

// search picks the branching tile (the smallest candidate set of size >= 2,
// tie-broken by row then column; Tiles already returns them in that order),
// deep-clones per candidate value, and recurses. If every tile is a
// singleton, the state is a solution.
func (p *Puzzle) search(alt *constraint.Alternatives, depth int) {
	if p.solvecount >= p.solvemax || !alt.Solvable() {
		return
	}

	tiles := alt.Tiles()
	branchAt := -1
	for i, t := range tiles {
		if t.Cand.Count() >= 2 {
			branchAt = i
			break
		}
	}
	if branchAt == -1 {
		p.solvecount++
		p.solutions = append(p.solutions, extractSolution(alt))
		return
	}

	branch := tiles[branchAt]
	values := branch.Cand.ToSlice()
	p.stats.AddBranches(depth, len(values))

	for _, v := range values {
		if p.solvecount >= p.solvemax {
			return
		}
		clone := alt.Clone(depth + 1)
		clone.Set(branch.Row, branch.Col, v)
		p.search(clone, depth+1)
	}
}

func extractSolution(alt *constraint.Alternatives) [81]int {
	var grid [81]int
	for idx := range grid {
		v, ok := alt.CandidatesAt(idx).Only()
		if !ok {
			// Every tile must be a singleton by the time search calls this;
			// surface a visibly wrong value rather than panicking so a test
			// assertion catches the invariant break instead of a crash.
			v = 0
		}
		grid[idx] = v
	}
	return grid
}
