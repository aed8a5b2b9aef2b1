package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
)

func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"dump.tar.zst", "zstd"},
		{"data.ZSTD", "zstd"},
		{"log.lz4", "lz4"},
		{"archive.gz", "gzip"},
		{"archive.gzip", "gzip"},
		{"plain.txt", "none"},
		{"-", "none"},
		{"noext", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectCompression(tt.name))
		})
	}
}

func TestHashInput_Decompress(t *testing.T) {
	data := bytes.Repeat([]byte("compressible payload "), 500)
	want := sl2hash.Sum(data)

	tests := []struct {
		name string
		file string
		mode string
		blob []byte
	}{
		{"zstd explicit", "payload.bin", "zstd", compressZstd(t, data)},
		{"zstd auto", "payload.zst", "auto", compressZstd(t, data)},
		{"gzip explicit", "payload.bin", "gzip", compressGzip(t, data)},
		{"gzip auto", "payload.gz", "auto", compressGzip(t, data)},
		{"lz4 explicit", "payload.bin", "lz4", compressLZ4(t, data)},
		{"lz4 auto", "payload.lz4", "auto", compressLZ4(t, data)},
		{"auto plain", "payload.bin", "auto", data},
		{"none", "payload.bin", "none", data},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.blob)

			for _, parallelMode := range []bool{false, true} {
				got, err := hashInput(context.Background(), path, nil, hashOptions{
					parallel:   parallelMode,
					chunkSize:  777,
					workers:    4,
					decompress: tt.mode,
				})
				require.NoError(t, err)
				assert.Equal(t, want, got, "parallel=%v", parallelMode)
			}
		})
	}
}

func TestHashInput_Stdin(t *testing.T) {
	data := []byte("piped through stdin")

	got, err := hashInput(context.Background(), stdinName, bytes.NewReader(compressGzip(t, data)), hashOptions{decompress: "gzip"})
	require.NoError(t, err)
	assert.Equal(t, sl2hash.Sum(data), got)
}

func TestDecompressReader_Errors(t *testing.T) {
	_, err := decompressReader(io.NopCloser(strings.NewReader("x")), "f", "brotli")
	assert.ErrorContains(t, err, "unknown decompress mode")

	_, err = decompressReader(io.NopCloser(strings.NewReader("not gzip")), "f", "gzip")
	assert.Error(t, err)

	path := writeFile(t, "bad.zst", []byte("not zstd at all"))
	_, err = hashInput(context.Background(), path, nil, hashOptions{decompress: "auto"})
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	literal := "literal"
	data, err := readInput(&literal, "ignored", nil, "zstd")
	require.NoError(t, err)
	assert.Equal(t, []byte("literal"), data)

	data, err = readInput(nil, stdinName, strings.NewReader("stdin bytes"), "none")
	require.NoError(t, err)
	assert.Equal(t, []byte("stdin bytes"), data)

	path := writeFile(t, "in.lz4", compressLZ4(t, []byte("file bytes")))
	data, err = readInput(nil, path, nil, "auto")
	require.NoError(t, err)
	assert.Equal(t, []byte("file bytes"), data)
}
