// SPDX-License-Identifier: MIT
// Package: hamcycle/search
//
// searcher.go - the Searcher capability and classical implementations.
//
// Contract:
//   • Search returns an address into the bitmap's address space [0, len).
//   • ErrNoMarkedAddress means "no set bit found" and is a valid negative.
//   • Any other error is a search failure; drivers surface it wrapped with
//     ErrSearchFailed and never retry.

package search

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/katalvlaran/hamcycle/truthmap"
)

var (
	// ErrNoMarkedAddress is returned by a Searcher that found no set bit.
	ErrNoMarkedAddress = errors.New("search: no marked address")

	// ErrSearchFailed wraps any other Searcher failure.
	ErrSearchFailed = errors.New("search: external search failed")

	// ErrBadCommand indicates an empty or unparsable search command line.
	ErrBadCommand = errors.New("search: bad command")
)

// Query is what the core hands to a Searcher.
type Query struct {
	// Bitmap is the padded truth map; len is a power of two.
	Bitmap string
	// VertexCount is |V| of the searched graph.
	VertexCount int
	// Shots is the number of samples a sampling search may take.
	Shots int
}

// Searcher locates a set bit in a truth map.
type Searcher interface {
	Search(ctx context.Context, q Query) (int, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, q Query) (int, error)

// Search implements Searcher.
func (f SearcherFunc) Search(ctx context.Context, q Query) (int, error) { return f(ctx, q) }

// LinearScan returns the lowest set address.
type LinearScan struct{}

// Search implements Searcher.
func (LinearScan) Search(_ context.Context, q Query) (int, error) {
	if err := truthmap.Validate(q.Bitmap); err != nil {
		return 0, err
	}
	if i := strings.IndexByte(q.Bitmap, truthmap.BitSet); i >= 0 {
		return i, nil
	}

	return 0, ErrNoMarkedAddress
}

// RandomProbe samples Shots uniformly random addresses and returns the first
// set one. It is safe for concurrent use.
type RandomProbe struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomProbe returns a RandomProbe seeded with seed.
func NewRandomProbe(seed int64) *RandomProbe {
	return &RandomProbe{rng: rand.New(rand.NewSource(seed))}
}

// Search implements Searcher.
func (p *RandomProbe) Search(ctx context.Context, q Query) (int, error) {
	if err := truthmap.Validate(q.Bitmap); err != nil {
		return 0, err
	}
	shots := max(q.Shots, 1)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(1))
	}
	for s := 0; s < shots; s++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if i := p.rng.Intn(len(q.Bitmap)); q.Bitmap[i] == truthmap.BitSet {
			return i, nil
		}
	}

	return 0, ErrNoMarkedAddress
}

// NoMatchOutput is what a Command prints to report ErrNoMarkedAddress.
const NoMatchOutput = "none"

// Command runs an external program as the Searcher. The program receives
// the bitmap, the vertex count and the shot count as trailing arguments, and
// must print a binary address ("0101") or NoMatchOutput on its first stdout
// line.
type Command struct {
	Argv []string
}

// NewCommand splits a shell-style command line into a Command.
func NewCommand(line string) (*Command, error) {
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("NewCommand: %q: %w", line, errors.Join(ErrBadCommand, err))
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("NewCommand: empty command: %w", ErrBadCommand)
	}

	return &Command{Argv: argv}, nil
}

// Search implements Searcher.
func (c *Command) Search(ctx context.Context, q Query) (int, error) {
	if len(c.Argv) == 0 {
		return 0, ErrBadCommand
	}
	args := append(append([]string(nil), c.Argv[1:]...),
		q.Bitmap, strconv.Itoa(q.VertexCount), strconv.Itoa(q.Shots))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Argv[0], args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %s", c.Argv[0], err, strings.TrimSpace(stderr.String()))
	}

	line, _, _ := bufio.NewReader(bytes.NewReader(out)).ReadLine()
	answer := strings.TrimSpace(string(line))
	if answer == NoMatchOutput {
		return 0, ErrNoMarkedAddress
	}

	return truthmap.ParseAddress(answer)
}
