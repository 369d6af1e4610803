package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// jsonWriter writes a single indented JSON array. An empty batch is "[]".
func jsonWriter[T any](w io.Writer, rows []T, _ Options) error {
	if rows == nil {
		rows = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// jsonlWriter writes one compact JSON object per line.
func jsonlWriter[T any](w io.Writer, rows []T, _ Options) error {
	in, done := StartJSONL[T](w, len(rows))
	for _, r := range rows {
		in <- r
	}
	close(in)
	return <-done
}

// StartJSONL spins up a JSONL encoder goroutine for values of type T, for
// callers that produce rows incrementally. Close the returned channel, then
// read the final error. Broken pipes are not reported.
func StartJSONL[T any](out io.Writer, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var encErr error
		for v := range in {
			if encErr != nil {
				continue // drain so the producer never blocks
			}
			encErr = enc.Encode(v)
		}
		if encErr != nil {
			done <- encErr
			return
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
