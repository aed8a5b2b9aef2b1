package parallel

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
)

func testData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*31 + i>>8)
	}
	return data
}

func TestHashBytes(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		chunkSize int
		workers   int
	}{
		{"Empty", 0, 16, 4},
		{"Single chunk", 10, 64, 2},
		{"Exact multiple", 256, 64, 3},
		{"Ragged tail", 1000, 64, 8},
		{"One byte chunks", 33, 1, 4},
		{"Serial", 500, 7, 1},
		{"Defaults", 3000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testData(tt.size)
			got, err := HashBytes(context.Background(), data, Options{
				ChunkSize: tt.chunkSize,
				Workers:   tt.workers,
			})
			require.NoError(t, err)
			assert.Equal(t, sl2hash.Sum(data), got)
		})
	}
}

func TestHashReader(t *testing.T) {
	data := testData(5000)

	tests := []struct {
		name   string
		reader io.Reader
	}{
		{"Plain", bytes.NewReader(data)},
		{"One byte reads", iotest.OneByteReader(bytes.NewReader(data))},
		{"Half reads", iotest.HalfReader(bytes.NewReader(data))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HashReader(context.Background(), tt.reader, Options{ChunkSize: 128, Workers: 4})
			require.NoError(t, err)
			assert.Equal(t, sl2hash.Sum(data), got)
		})
	}

	got, err := HashReader(context.Background(), bytes.NewReader(nil), Options{})
	require.NoError(t, err)
	assert.Equal(t, sl2hash.Identity(), got)
}

func TestHashReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader(testData(300)), iotest.ErrReader(boom))

	_, err := HashReader(context.Background(), r, Options{ChunkSize: 64, Workers: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestHashCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HashReader(ctx, bytes.NewReader(testData(1000)), Options{ChunkSize: 10})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = HashBytes(ctx, testData(1000), Options{ChunkSize: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantError bool
	}{
		{"Zero values", Options{}, false},
		{"Explicit", Options{ChunkSize: 4096, Workers: 8}, false},
		{"Negative chunk", Options{ChunkSize: -1}, true},
		{"Huge chunk", Options{ChunkSize: MaxChunkSize + 1}, true},
		{"Negative workers", Options{Workers: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := HashBytes(context.Background(), nil, Options{Workers: -1})
	assert.Error(t, err)
}

func TestReduce(t *testing.T) {
	parts := [][]byte{[]byte("a"), []byte("bb"), []byte("ccc"), []byte("dddd"), []byte("e")}

	for n := 0; n <= len(parts); n++ {
		hs := make([]sl2hash.Hash, n)
		for i := 0; i < n; i++ {
			hs[i] = sl2hash.Sum(parts[i])
		}
		before := make([]sl2hash.Hash, len(hs))
		copy(before, hs)

		assert.Equal(t, sl2hash.CombineAll(hs...), Reduce(hs), "n=%d", n)
		assert.Equal(t, before, hs, "input must not be modified")
	}
}
