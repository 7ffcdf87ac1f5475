package constraint

import "fmt"

// KikagakuPartition is a validated 9-way partition of the 81 cells into
// colored regions, each covering exactly 9 cells, replacing the 3x3 blocks.
type KikagakuPartition struct {
	regionOf [81]int // cell index -> region index 0..8
	cells    [9][]int
}

// NewKikagakuPartition builds a partition from an 81-byte color grid
// (row-major). Exactly 9 distinct color tags must appear, each covering
// exactly 9 cells; any other shape is rejected as InvalidInput.
func NewKikagakuPartition(colors [81]byte) (*KikagakuPartition, error) {
	colorIndex := make(map[byte]int)
	p := &KikagakuPartition{}
	for i := range p.regionOf {
		p.regionOf[i] = -1
	}
	for idx, color := range colors {
		ridx, ok := colorIndex[color]
		if !ok {
			if len(colorIndex) >= 9 {
				return nil, fmt.Errorf("%w: too many kikagaku colors", ErrInvalidInput)
			}
			ridx = len(colorIndex)
			colorIndex[color] = ridx
		}
		p.regionOf[idx] = ridx
		p.cells[ridx] = append(p.cells[ridx], idx)
	}
	if len(colorIndex) != 9 {
		return nil, fmt.Errorf("%w: not enough kikagaku colors (found %d, need 9)", ErrInvalidInput, len(colorIndex))
	}
	for ridx, cells := range p.cells {
		if len(cells) != 9 {
			return nil, fmt.Errorf("%w: kikagaku region %d has %d cells, want 9", ErrInvalidInput, ridx, len(cells))
		}
	}
	return p, nil
}
