package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
	"github.com/Davincible/sl2hash/pkg/parallel"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/term"
)

const stdinName = "-"

var errTerminalInput = errors.New("no input given and stdin is a terminal (pass a file, '-' or --string)")

// hashOptions controls how an input is read and hashed.
type hashOptions struct {
	parallel   bool
	chunkSize  int
	workers    int
	decompress string
}

// openInput opens name, or stdin for "-", and applies decompression.
func openInput(name string, stdin io.Reader, mode string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if name == stdinName {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errTerminalInput
		}
		src = io.NopCloser(stdin)
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		src = f
	}

	r, err := decompressReader(src, name, mode)
	if err != nil {
		src.Close()
		return nil, err
	}
	return r, nil
}

// decompressReader wraps src according to mode. "auto" picks a codec from
// the file extension.
func decompressReader(src io.ReadCloser, name, mode string) (io.ReadCloser, error) {
	if mode == "auto" {
		mode = detectCompression(name)
	}

	switch mode {
	case "", "none":
		return src, nil
	case "zstd":
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return &stackedCloser{Reader: dec, closers: []func() error{
			func() error { dec.Close(); return nil },
			src.Close,
		}}, nil
	case "lz4":
		return &stackedCloser{Reader: lz4.NewReader(src), closers: []func() error{src.Close}}, nil
	case "gzip":
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return &stackedCloser{Reader: gz, closers: []func() error{gz.Close, src.Close}}, nil
	default:
		return nil, fmt.Errorf("unknown decompress mode %q", mode)
	}
}

func detectCompression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return "zstd"
	case ".lz4":
		return "lz4"
	case ".gz", ".gzip":
		return "gzip"
	default:
		return "none"
	}
}

// stackedCloser closes a decoder and then the stream beneath it.
type stackedCloser struct {
	io.Reader
	closers []func() error
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// hashInput hashes the named input.
func hashInput(ctx context.Context, name string, stdin io.Reader, opts hashOptions) (sl2hash.Hash, error) {
	r, err := openInput(name, stdin, opts.decompress)
	if err != nil {
		return sl2hash.Hash{}, err
	}
	defer r.Close()

	return hashReader(ctx, r, opts)
}

func hashReader(ctx context.Context, r io.Reader, opts hashOptions) (sl2hash.Hash, error) {
	if opts.parallel {
		return parallel.HashReader(ctx, r, parallel.Options{
			ChunkSize: opts.chunkSize,
			Workers:   opts.workers,
		})
	}

	d := sl2hash.New()
	if _, err := io.Copy(d, r); err != nil {
		return sl2hash.Hash{}, fmt.Errorf("failed to read input: %w", err)
	}
	return d.Hash(), nil
}

// readInput returns the bytes of a literal, a file, or stdin.
func readInput(literal *string, name string, stdin io.Reader, mode string) ([]byte, error) {
	if literal != nil {
		return []byte(*literal), nil
	}

	r, err := openInput(name, stdin, mode)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
