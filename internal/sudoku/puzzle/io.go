package puzzle

import (
	"bufio"
	"fmt"
	"io"
)

// ParseBoard reads the 9-line decimal board format: 9 lines of 9 ASCII
// digits, 0 for blank. It does not open files or parse flags -- callers
// supply the io.Reader, so no command-line path parsing lives here.
func ParseBoard(r io.Reader) ([81]int, error) {
	var grid [81]int
	scanner := bufio.NewScanner(r)
	for row := 0; row < 9; row++ {
		if !scanner.Scan() {
			return grid, fmt.Errorf("%w: expected 9 board lines, got %d", ErrInvalidInput, row)
		}
		line := scanner.Text()
		if len(line) != 9 {
			return grid, fmt.Errorf("%w: board line %d has length %d, want 9", ErrInvalidInput, row, len(line))
		}
		for col := 0; col < 9; col++ {
			ch := line[col]
			if ch < '0' || ch > '9' {
				return grid, fmt.Errorf("%w: board line %d has non-digit %q at column %d", ErrInvalidInput, row, ch, col)
			}
			grid[cellIndex(row, col)] = int(ch - '0')
		}
	}
	if err := scanner.Err(); err != nil {
		return grid, fmt.Errorf("puzzle: reading board: %w", err)
	}
	return grid, nil
}

// ParseKikagaku reads 9 further lines of single-character color tags. It
// performs no region validation itself (an invalid region shape is a
// solver-construction error, not a parse error); that validation happens in
// constraint.NewKikagakuPartition when the puzzle is built.
func ParseKikagaku(r io.Reader) ([81]byte, error) {
	var colors [81]byte
	scanner := bufio.NewScanner(r)
	for row := 0; row < 9; row++ {
		if !scanner.Scan() {
			return colors, fmt.Errorf("%w: expected 9 kikagaku lines, got %d", ErrInvalidInput, row)
		}
		line := scanner.Text()
		if len(line) != 9 {
			return colors, fmt.Errorf("%w: kikagaku line %d has length %d, want 9", ErrInvalidInput, row, len(line))
		}
		for col := 0; col < 9; col++ {
			colors[cellIndex(row, col)] = line[col]
		}
	}
	if err := scanner.Err(); err != nil {
		return colors, fmt.Errorf("puzzle: reading kikagaku colors: %w", err)
	}
	return colors, nil
}

// Display writes the puzzle's last-solved solutions in the 9-line decimal
// format, one blank line between successive solutions. If Solve hasn't run,
// it writes the input grid only.
func (p *Puzzle) Display(w io.Writer) error {
	if len(p.solutions) == 0 {
		return writeGrid(w, p.grid)
	}
	for i, sol := range p.solutions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeGrid(w, sol); err != nil {
			return err
		}
	}
	return nil
}

func writeGrid(w io.Writer, grid [81]int) error {
	buf := make([]byte, 0, 90)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			buf = append(buf, byte('0'+grid[cellIndex(row, col)]))
		}
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
