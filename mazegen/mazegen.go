// Package mazegen builds random mazes in the gridgraph text format.
//
// Mazes are carved with Wilson's algorithm (loop-erased random walks), which
// samples uniformly among perfect mazes: exactly one simple route joins any two
// rooms. WithBraid knocks out extra walls afterwards to create loops, and with
// them tied best routes.
//
// A maze of rows×cols rooms renders as a (2·rows+1)×(2·cols+1) character grid.
// The start sits in the bottom-left room and the goal in the top-right room.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/assert0/aoc24/gridgraph"
)

// ErrBadSize indicates a maze with fewer than two rooms or a negative dimension.
var ErrBadSize = errors.New("mazegen: maze needs at least two rooms")

// ErrBadBraid indicates a braid probability outside [0,1].
var ErrBadBraid = errors.New("mazegen: braid probability must be within [0,1]")

// Options configures Generate.
type Options struct {
	// Seed feeds the deterministic random source.
	Seed int64
	// Braid is the probability of removing each remaining interior wall between two rooms.
	Braid float64
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithSeed fixes the random source; equal seeds give equal mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBraid removes each leftover interior wall with probability p.
func WithBraid(p float64) Option {
	return func(o *Options) {
		o.Braid = p
	}
}

// room deltas in gridgraph.Facings order.
var roomSteps = [gridgraph.NumFacings][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Generate carves a rows×cols room maze and returns its text rendering.
// Complexity: expected O(R·C·log(R·C)) random-walk steps; O(R·C) memory.
func Generate(rows, cols int, opts ...Option) (string, error) {
	cfg := Options{Seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if rows <= 0 || cols <= 0 || rows*cols < 2 {
		return "", fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	if cfg.Braid < 0 || cfg.Braid > 1 {
		return "", fmt.Errorf("%w: %v", ErrBadBraid, cfg.Braid)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	h, w := 2*rows+1, 2*cols+1
	text := make([][]byte, h)
	for y := range text {
		text[y] = []byte(strings.Repeat("#", w))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			text[2*r+1][2*c+1] = '.'
		}
	}

	inMaze := make([]bool, rows*cols)
	exit := make([]int, rows*cols)
	inMaze[rng.Intn(rows*cols)] = true
	remaining := rows*cols - 1

	neighbour := func(room, dir int) (int, bool) {
		r, c := room/cols+roomSteps[dir][0], room%cols+roomSteps[dir][1]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return 0, false
		}
		return r*cols + c, true
	}
	carve := func(room, dir int) {
		r, c := room/cols, room%cols
		text[2*r+1+roomSteps[dir][0]][2*c+1+roomSteps[dir][1]] = '.'
	}

	for remaining > 0 {
		start := rng.Intn(rows * cols)
		for inMaze[start] {
			start = (start + 1) % (rows * cols)
		}

		// Random walk until the maze is hit. Overwriting exit[] erases loops.
		for cur := start; !inMaze[cur]; {
			dir := rng.Intn(gridgraph.NumFacings)
			next, ok := neighbour(cur, dir)
			if !ok {
				continue
			}
			exit[cur] = dir
			cur = next
		}

		for cur := start; !inMaze[cur]; {
			inMaze[cur] = true
			remaining--
			carve(cur, exit[cur])
			cur, _ = neighbour(cur, exit[cur])
		}
	}

	if cfg.Braid > 0 {
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				// Interior walls between two rooms sit at exactly one even coordinate.
				if (y%2 == 0) == (x%2 == 0) || text[y][x] != '#' {
					continue
				}
				if rng.Float64() < cfg.Braid {
					text[y][x] = '.'
				}
			}
		}
	}

	text[h-2][1] = 'S'
	text[1][w-2] = 'E'

	var b strings.Builder
	b.Grow(h * (w + 1))
	for _, line := range text {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// GenerateGrid is Generate followed by gridgraph.ParseString with the default glyphs.
func GenerateGrid(rows, cols int, opts ...Option) (*gridgraph.Grid, error) {
	text, err := Generate(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	return gridgraph.ParseString(text)
}
