// Package minesweeper is the board behind the day 3.5 interlude.
package minesweeper

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	DefaultSize  = 8
	DefaultMines = 10
)

var ErrOutOfBounds = errors.New("cell out of bounds")

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

type Cell struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors int
}

// Board is a square minesweeper grid. Mines are laid on the first reveal so
// the opening click is always safe.
type Board struct {
	Size     int
	Mines    int
	Cells    []Cell
	Status   Status
	Exploded int // index of the detonated cell, -1 if none
	Cheating bool

	placed bool
	rng    *rand.Rand
}

// New creates a board. A nil rng uses a randomly seeded source.
func New(size, mines int, rng *rand.Rand) *Board {
	if size <= 0 {
		size = DefaultSize
	}
	if mines <= 0 || mines >= size*size {
		mines = DefaultMines
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Board{
		Size:     size,
		Mines:    mines,
		Cells:    make([]Cell, size*size),
		Exploded: -1,
		rng:      rng,
	}
}

// Reset clears the board for another attempt.
func (b *Board) Reset() {
	b.Cells = make([]Cell, b.Size*b.Size)
	b.Status = Playing
	b.Exploded = -1
	b.placed = false
}

func (b *Board) index(row, col int) (int, error) {
	if row < 0 || row >= b.Size || col < 0 || col >= b.Size {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return row*b.Size + col, nil
}

// Cell returns a copy of the cell at row, col.
func (b *Board) Cell(row, col int) (Cell, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.Cells[i], nil
}

func (b *Board) neighbors(i int) []int {
	row, col := i/b.Size, i%b.Size
	var out []int
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r < 0 || r >= b.Size || c < 0 || c >= b.Size || (r == row && c == col) {
				continue
			}
			out = append(out, r*b.Size+c)
		}
	}
	return out
}

func (b *Board) place(safe int) {
	for laid := 0; laid < b.Mines; {
		i := b.rng.IntN(len(b.Cells))
		if i == safe || b.Cells[i].Mine {
			continue
		}
		b.Cells[i].Mine = true
		laid++
	}
	b.count()
	b.placed = true
}

func (b *Board) count() {
	for i := range b.Cells {
		n := 0
		for _, j := range b.neighbors(i) {
			if b.Cells[j].Mine {
				n++
			}
		}
		b.Cells[i].Neighbors = n
	}
}

// PlaceMines lays mines at fixed positions instead of randomly.
func (b *Board) PlaceMines(positions [][2]int) error {
	b.Reset()
	for _, p := range positions {
		i, err := b.index(p[0], p[1])
		if err != nil {
			return err
		}
		b.Cells[i].Mine = true
	}
	b.Mines = len(positions)
	b.count()
	b.placed = true
	return nil
}

// Reveal opens a cell, flooding outward from cells with no neighbors.
func (b *Board) Reveal(row, col int) (Status, error) {
	i, err := b.index(row, col)
	if err != nil {
		return b.Status, err
	}
	if b.Status != Playing || b.Cells[i].Flagged || b.Cells[i].Revealed {
		return b.Status, nil
	}
	if !b.placed {
		b.place(i)
	}
	if b.Cells[i].Mine {
		b.Exploded = i
		b.Status = Lost
		for j := range b.Cells {
			b.Cells[j].Revealed = true
		}
		return b.Status, nil
	}

	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := &b.Cells[j]
		if c.Revealed || c.Flagged {
			continue
		}
		c.Revealed = true
		if c.Neighbors == 0 {
			stack = append(stack, b.neighbors(j)...)
		}
	}

	if b.cleared() {
		b.Status = Won
	}
	return b.Status, nil
}

// ToggleFlag marks or unmarks a hidden cell.
func (b *Board) ToggleFlag(row, col int) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	if b.Status != Playing || b.Cells[i].Revealed {
		return nil
	}
	b.Cells[i].Flagged = !b.Cells[i].Flagged
	return nil
}

func (b *Board) cleared() bool {
	for _, c := range b.Cells {
		if !c.Mine && !c.Revealed {
			return false
		}
	}
	return true
}

// Flags counts flagged cells.
func (b *Board) Flags() int {
	n := 0
	for _, c := range b.Cells {
		if c.Flagged {
			n++
		}
	}
	return n
}
