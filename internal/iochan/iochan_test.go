package iochan

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChunks(t *testing.T) {
	chunks := Read(context.Background(), strings.NewReader("abcdefg"), 3)

	var got []string
	var last error
	for chunk := range chunks {
		if chunk.Err != nil {
			last = chunk.Err
			continue
		}
		got = append(got, string(chunk.Data))
	}

	assert.Equal(t, []string{"abc", "def", "g"}, got)
	assert.Equal(t, io.EOF, last)
}

func TestReadDataWithError(t *testing.T) {
	boom := errors.New("boom")
	r := iotest.DataErrReader(io.MultiReader(strings.NewReader("tail"), iotest.ErrReader(boom)))

	var out bytes.Buffer
	total, err := Copy(&out, Read(context.Background(), r, 16), nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(4), total)
	assert.Equal(t, "tail", out.String())
}

type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	chunks := Read(ctx, endless{}, 8)

	chunk := <-chunks
	assert.Equal(t, "xxxxxxxx", string(chunk.Data))

	cancel()
	// The channel closes once the reader gives up on delivery.
	for range chunks {
	}
}

func TestCopyProgress(t *testing.T) {
	var totals []uint64
	var out bytes.Buffer

	total, err := Copy(&out, Read(context.Background(), strings.NewReader("0123456789"), 4), func(n uint64) {
		totals = append(totals, n)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), total)
	assert.Equal(t, []uint64{4, 8, 10}, totals)
	assert.Equal(t, "0123456789", out.String())
}
