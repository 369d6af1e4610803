// Package fasta reads FASTA records for the command-line front end. The
// molecule constructors take plain strings; this package only extracts them.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ErrNoRecord is returned by First when the input holds no sequence.
var ErrNoRecord = errors.New("fasta: no record")

var errStop = errors.New("stop")

// ReadCtx parses FASTA from r and calls emit once per record. Line breaks
// and surrounding whitespace inside a record are dropped; the sequence
// characters themselves are passed through untouched for the validator.
// Cancellation via ctx is honored between lines.
func ReadCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id     string
		seq    = make([]byte, 0, 1<<16)
		inside bool
	)
	flush := func() error {
		if !inside {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, seq, inside = parseHeaderID(line[1:]), seq[:0], true
			continue
		}
		inside = true
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadPath is ReadCtx over Open(path).
func ReadPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return ReadCtx(ctx, rc, emit)
}

// First returns the first record of path.
func First(ctx context.Context, path string) (Record, error) {
	var rec Record
	found := false
	err := ReadPath(ctx, path, func(r Record) error {
		rec, found = r, true
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return Record{}, err
	}
	if !found {
		return Record{}, ErrNoRecord
	}
	return rec, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
