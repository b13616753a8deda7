// Package generator orchestrates batch identifier generation.
package generator

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jadedmc/nanoid"
)

// Generator produces a batch of identifiers and writes them one per line
type Generator struct {
	out      io.Writer
	random   io.Reader
	logger   *slog.Logger
	count    int
	size     int
	alphabet string
}

// New creates a Generator backed by crypto/rand and a no-op logger
func New(out io.Writer, count, size int, alphabet string) *Generator {
	return &Generator{
		out:      out,
		random:   rand.Reader,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		count:    count,
		size:     size,
		alphabet: alphabet,
	}
}

// NewWithLogger creates a Generator backed by crypto/rand and a logger
func NewWithLogger(out io.Writer, logger *slog.Logger, count, size int, alphabet string) *Generator {
	return &Generator{
		out:      out,
		random:   rand.Reader,
		logger:   logger,
		count:    count,
		size:     size,
		alphabet: alphabet,
	}
}

// NewWithRandom creates a Generator reading randomness from a custom source
func NewWithRandom(out io.Writer, random io.Reader, count, size int, alphabet string) *Generator {
	return &Generator{
		out:      out,
		random:   random,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		count:    count,
		size:     size,
		alphabet: alphabet,
	}
}

// NewWithRandomAndLogger creates a Generator with a custom random source and logger
func NewWithRandomAndLogger(out io.Writer, random io.Reader, logger *slog.Logger, count, size int, alphabet string) *Generator {
	return &Generator{
		out:      out,
		random:   random,
		logger:   logger,
		count:    count,
		size:     size,
		alphabet: alphabet,
	}
}

// Result contains the outcome of a generation run
type Result struct {
	// Generated is the number of identifiers written
	Generated int
}

// Run generates the configured number of identifiers.
// It stops at the first error or when ctx is cancelled, returning the
// partial result alongside the error.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	defer func() {
		g.logger.Debug("generation run finished",
			"duration_ms", time.Since(start).Milliseconds())
	}()

	result := &Result{}

	for range g.count {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("generation interrupted: %w", err)
		}

		id, err := nanoid.NewWithRandom(g.random, g.size, g.alphabet)
		if err != nil {
			return result, fmt.Errorf("failed to generate identifier: %w", err)
		}

		if _, err := fmt.Fprintln(g.out, id); err != nil {
			return result, fmt.Errorf("failed to write identifier: %w", err)
		}

		result.Generated++
	}

	return result, nil
}
