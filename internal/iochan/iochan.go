package iochan

import (
	"context"
	"io"
)

// Chunk is one read from the source. Err is set on the final chunk only.
type Chunk struct {
	Data []byte
	Err  error
}

// Read from the reader and yield chunks into the returned channel until the
// reader fails or the context is cancelled. The final chunk carries the error
// (io.EOF on a clean finish) and the channel is closed after it.
func Read(ctx context.Context, reader io.Reader, size int) <-chan Chunk {
	if size <= 0 {
		size = 4096
	}

	ch := make(chan Chunk, 3)
	go read(ctx, reader, size, ch)
	return ch
}

func read(ctx context.Context, reader io.Reader, size int, result chan<- Chunk) {
	defer close(result)

	for {
		buffer := make([]byte, size)
		n, err := reader.Read(buffer)
		if n > 0 {
			select {
			case result <- Chunk{Data: buffer[:n]}:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			select {
			case result <- Chunk{Err: err}:
			case <-ctx.Done():
			}
			return
		}
	}
}

// Copy drains a chunk channel into w, calling progress with the running total
// after every chunk. It returns the total and the first error other than
// io.EOF.
func Copy(w io.Writer, chunks <-chan Chunk, progress func(total uint64)) (uint64, error) {
	var total uint64
	for chunk := range chunks {
		if chunk.Err != nil {
			if chunk.Err == io.EOF {
				return total, nil
			}
			return total, chunk.Err
		}

		if _, err := w.Write(chunk.Data); err != nil {
			return total, err
		}
		total += uint64(len(chunk.Data))
		if progress != nil {
			progress(total)
		}
	}
	return total, nil
}
