// Package parallel hashes large inputs by splitting them into chunks,
// hashing the chunks concurrently and combining the partial hashes in order.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
)

const (
	// DefaultChunkSize is used when Options.ChunkSize is zero
	DefaultChunkSize = 1 << 20
	// MaxChunkSize bounds the memory held per in-flight chunk
	MaxChunkSize = 1 << 30
)

// Options controls chunking and concurrency.
type Options struct {
	ChunkSize int          // bytes per chunk; 0 means DefaultChunkSize
	Workers   int          // concurrent chunk hashes; 0 means GOMAXPROCS
	Logger    *slog.Logger // nil means slog.Default()
}

func (o *Options) Validate() error {
	if o.ChunkSize < 0 {
		return fmt.Errorf("chunk size cannot be negative, got %d", o.ChunkSize)
	}
	if o.ChunkSize > MaxChunkSize {
		return fmt.Errorf("chunk size cannot exceed %d, got %d", MaxChunkSize, o.ChunkSize)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", o.Workers)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// HashBytes returns sl2hash.Sum(data), computed chunk by chunk.
func HashBytes(ctx context.Context, data []byte, opts Options) (sl2hash.Hash, error) {
	if err := opts.Validate(); err != nil {
		return sl2hash.Hash{}, fmt.Errorf("invalid options: %w", err)
	}
	opts = opts.withDefaults()

	n := (len(data) + opts.ChunkSize - 1) / opts.ChunkSize
	partials := make([]sl2hash.Hash, n)

	opts.Logger.Debug("Hashing in chunks", "bytes", len(data), "chunks", n, "workers", opts.Workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < n; i++ {
		start := i * opts.ChunkSize
		end := min(start+opts.ChunkSize, len(data))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = sl2hash.Sum(data[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return sl2hash.Hash{}, err
	}

	return Reduce(partials), nil
}

// HashReader reads r to EOF and returns the hash of its contents. At most
// Workers chunks are held in memory at once.
func HashReader(ctx context.Context, r io.Reader, opts Options) (sl2hash.Hash, error) {
	if err := opts.Validate(); err != nil {
		return sl2hash.Hash{}, fmt.Errorf("invalid options: %w", err)
	}
	opts = opts.withDefaults()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	var partials []sl2hash.Hash
	results := make(chan indexed, opts.Workers)
	collected := make(chan struct{})

	go func() {
		defer close(collected)
		for res := range results {
			for len(partials) <= res.index {
				partials = append(partials, sl2hash.Identity())
			}
			partials[res.index] = res.hash
		}
	}()

	var total int64
	var readErr error
	for index := 0; ; index++ {
		if err := gctx.Err(); err != nil {
			break
		}

		buf := make([]byte, opts.ChunkSize)
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			chunk := buf[:n]
			total += int64(n)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results <- indexed{index: index, hash: sl2hash.Sum(chunk)}
				return nil
			})
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("failed to read input: %w", err)
			break
		}
	}

	waitErr := g.Wait()
	close(results)
	<-collected

	if readErr != nil {
		return sl2hash.Hash{}, readErr
	}
	if waitErr != nil {
		return sl2hash.Hash{}, waitErr
	}
	if err := ctx.Err(); err != nil {
		return sl2hash.Hash{}, err
	}

	opts.Logger.Debug("Hashed stream", "bytes", total, "chunks", len(partials))

	return Reduce(partials), nil
}

type indexed struct {
	index int
	hash  sl2hash.Hash
}

// Reduce combines hashes pairwise in a balanced tree. The grouping differs
// from sl2hash.CombineAll but the order, and so the result, is the same.
func Reduce(hs []sl2hash.Hash) sl2hash.Hash {
	switch len(hs) {
	case 0:
		return sl2hash.Identity()
	case 1:
		return hs[0]
	}

	level := make([]sl2hash.Hash, len(hs))
	copy(level, hs)

	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, sl2hash.Combine(level[i], level[i+1]))
		}
		level = next
	}

	return level[0]
}
