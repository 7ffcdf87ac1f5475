package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// DepthRecord is the set of counters kept for one search depth (or, for
// Depth == CumulativeDepth, the running total across all depths).
type DepthRecord struct {
	Depth         int
	Branches      int
	MaxDepth      int
	InvertMatches int
	InvertStop    int
	NumberSets    int
}

func (d DepthRecord) String() string {
	return fmt.Sprintf(
		"depth: %2d branches: %5d maxdepth: %2d invert_matches: %5d invert_stop: %5d number_sets: %2d",
		d.Depth, d.Branches, d.MaxDepth, d.InvertMatches, d.InvertStop, d.NumberSets,
	)
}

// CumulativeDepth is the depth key used for the running total record,
// mirroring the source's Statistics.cumulated (depth = -1).
const CumulativeDepth = -1

// Statistics accumulates per-depth search and inference counters. It is
// purely observational: nothing in the solver branches on its contents. A
// nil *Statistics is valid and silently discards every update, so callers
// that don't care about diagnostics pay nothing for them.
type Statistics struct {
	byDepth    map[int]*DepthRecord
	cumulative DepthRecord
}

// NewStatistics returns an empty Statistics, ready to accumulate.
func NewStatistics() *Statistics {
	return &Statistics{
		byDepth:    make(map[int]*DepthRecord),
		cumulative: DepthRecord{Depth: CumulativeDepth},
	}
}

func (s *Statistics) record(depth int) *DepthRecord {
	d, ok := s.byDepth[depth]
	if !ok {
		d = &DepthRecord{Depth: depth}
		s.byDepth[depth] = d
	}
	return d
}

func (s *Statistics) addCumulative(field string, n, depth int) {
	switch field {
	case "branches":
		s.cumulative.Branches += n
	case "invert_matches":
		s.cumulative.InvertMatches += n
	case "invert_stop":
		s.cumulative.InvertStop += n
	case "number_sets":
		s.cumulative.NumberSets += n
	}
	if depth > s.cumulative.MaxDepth {
		s.cumulative.MaxDepth = depth
	}
}

// AddBranches records a branch event at depth with the given branch count.
func (s *Statistics) AddBranches(depth, n int) {
	if s == nil {
		return
	}
	r := s.record(depth)
	r.Branches += n
	r.MaxDepth = 1
	s.addCumulative("branches", n, depth)
}

// AddInvertMatches records n productive inference hits at depth.
func (s *Statistics) AddInvertMatches(depth, n int) {
	if s == nil {
		return
	}
	r := s.record(depth)
	r.InvertMatches += n
	r.MaxDepth = 1
	s.addCumulative("invert_matches", n, depth)
}

// AddInvertStop records an unsolvable detection during invert at depth.
func (s *Statistics) AddInvertStop(depth, n int) {
	if s == nil {
		return
	}
	r := s.record(depth)
	r.InvertStop += n
	r.MaxDepth = 1
	s.addCumulative("invert_stop", n, depth)
}

// AddNumberSets records n hidden/naked subset eliminations at depth.
func (s *Statistics) AddNumberSets(depth, n int) {
	if s == nil {
		return
	}
	r := s.record(depth)
	r.NumberSets += n
	r.MaxDepth = 1
	s.addCumulative("number_sets", n, depth)
}

// Cumulative returns the running total record across all depths.
func (s *Statistics) Cumulative() DepthRecord {
	if s == nil {
		return DepthRecord{Depth: CumulativeDepth}
	}
	return s.cumulative
}

// Records returns every per-depth record, sorted by depth ascending.
func (s *Statistics) Records() []DepthRecord {
	if s == nil {
		return nil
	}
	out := make([]DepthRecord, 0, len(s.byDepth))
	for _, r := range s.byDepth {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Display writes one line per depth record, sorted ascending, matching the
// source's Statistics.display.
func (s *Statistics) Display(sb *strings.Builder) {
	if s == nil {
		return
	}
	for _, r := range s.Records() {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
}
